package notifications

import (
	"bytes"
	"html/template"

	"github.com/artloko1-gif/MastersCatering/internal/content"
)

const inquiryNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>Nová poptávka z webu</h3>
  <p><strong>Typ akce:</strong> {{.EventType}}</p>
  <p><strong>Počet hostů:</strong> {{.Guests}}</p>
  <p><strong>Termín a místo:</strong> {{.DateLocation}}</p>
  <p><strong>E-mail:</strong> {{.Email}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Požadavky:</strong><br/>{{.Requirements}}</p>
</body>
</html>`

const inquiryConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Dobrý den,</p>
  <p>děkujeme za vaši poptávku. Ozveme se vám co nejdříve.</p>
  <ul>
    <li>Typ akce: {{.EventType}}</li>
    <li>Počet hostů: {{.Guests}}</li>
    <li>Termín a místo: {{.DateLocation}}</li>
  </ul>
  <p>Požadavky:</p>
  <p>{{.Requirements}}</p>
  <p>Master's Catering</p>
</body>
</html>`

var inquiryNotificationTmpl = template.Must(template.New("inquiry_notification").Parse(inquiryNotificationTemplate))
var inquiryConfirmationTmpl = template.Must(template.New("inquiry_confirmation").Parse(inquiryConfirmationTemplate))

func buildInquiryNotificationHTML(inq content.Inquiry) (string, error) {
	var buf bytes.Buffer
	if err := inquiryNotificationTmpl.Execute(&buf, inq); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildInquiryConfirmationHTML(inq content.Inquiry) (string, error) {
	var buf bytes.Buffer
	if err := inquiryConfirmationTmpl.Execute(&buf, inq); err != nil {
		return "", err
	}
	return buf.String(), nil
}
