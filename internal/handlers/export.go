package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/artloko1-gif/MastersCatering/internal/transport"
	"github.com/artloko1-gif/MastersCatering/internal/utils"
)

// ExportContent materializes the current working aggregate as a downloadable
// JSON artifact. A fallback for deployments without a live remote store: the
// operator saves the file and ships it with the site bundle.
func (s *Server) ExportContent(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	snap := s.Store.Content()
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Error("content export: marshal error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "export error", nil)
		return
	}

	filename := fmt.Sprintf("%s-content-%s.json",
		utils.Slugify("Master's Catering"),
		time.Now().In(s.Cfg.Timezone).Format("2006-01-02"),
	)

	transport.WriteAttachment(w, filename, payload)
	log.Info("content export: ok", slog.Int("bytes", len(payload)))
}
