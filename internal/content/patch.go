package content

// Patch types mirror the dashboard's partial updates: a nil field means
// "leave unchanged", a present field overwrites, including with an empty
// value. They double as the admin API request bodies.

type Patch struct {
	LogoDark     *string      `json:"logo_dark"`
	LogoLight    *string      `json:"logo_light"`
	Favicon      *string      `json:"favicon"`
	HeroImages   *[]string    `json:"hero_images"`
	AboutImage   *string      `json:"about_image"`
	ContactImage *string      `json:"contact_image"`
	Text         *TextContent `json:"text"`
}

type TeamPatch struct {
	TeamImage    *string `json:"team_image"`
	ManagerImage *string `json:"manager_image"`
	ManagerName  *string `json:"manager_name"`
	ManagerRole  *string `json:"manager_role"`
	ManagerQuote *string `json:"manager_quote"`
	TeamMotto    *string `json:"team_motto"`
}

type LocationPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURLs   *[]string `json:"image_urls"`
}

type ProjectPatch struct {
	Title       *string   `json:"title"`
	Client      *string   `json:"client"`
	Date        *string   `json:"date"`
	Guests      *int      `json:"guests" validate:"omitempty,gte=0"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	ImageURLs   *[]string `json:"image_urls"`
	Tags        *[]string `json:"tags"`
}

type ClientPatch struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
}

// CreateProjectRequest is the admin body for a new portfolio entry. Title is
// the only required field.
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Client      string   `json:"client"`
	Date        string   `json:"date"`
	Guests      int      `json:"guests" validate:"omitempty,gte=0"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
	Tags        []string `json:"tags"`
}

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	LogoURL string `json:"logo_url" validate:"omitempty,imageref"`
}

type ReorderClientsRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

// CreateInquiryRequest is the public contact form body. Email is the only
// required contact field.
type CreateInquiryRequest struct {
	EventType    string `json:"event_type"`
	Guests       int    `json:"guests" validate:"omitempty,gte=0"`
	DateLocation string `json:"date_location"`
	Email        string `json:"email" validate:"required,email"`
	Requirements string `json:"requirements"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new solved irrelevant"`
}
