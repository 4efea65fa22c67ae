package content

import "time"

const (
	StatusNew        = "new"
	StatusSolved     = "solved"
	StatusIrrelevant = "irrelevant"
)

var validStatuses = map[string]struct{}{
	StatusNew:        {},
	StatusSolved:     {},
	StatusIrrelevant: {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

// TextContent carries the editable copy of the hero and about sections.
type TextContent struct {
	HeroTitle    string `bson:"hero_title" json:"hero_title"`
	HeroSubtitle string `bson:"hero_subtitle" json:"hero_subtitle"`
	AboutTitle   string `bson:"about_title" json:"about_title"`
	AboutText    string `bson:"about_text" json:"about_text"`
}

type TeamContent struct {
	TeamImage    string `bson:"team_image" json:"team_image"`
	ManagerImage string `bson:"manager_image" json:"manager_image"`
	ManagerName  string `bson:"manager_name" json:"manager_name"`
	ManagerRole  string `bson:"manager_role" json:"manager_role"`
	ManagerQuote string `bson:"manager_quote" json:"manager_quote"`
	TeamMotto    string `bson:"team_motto" json:"team_motto"`
}

type LocationItem struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	ImageURLs   []string `bson:"image_urls" json:"image_urls"`
}

// CoverImage is the first gallery image. The dashboard renders it as the
// location thumbnail; reordering the gallery changes the cover.
func (l LocationItem) CoverImage() string {
	if len(l.ImageURLs) == 0 {
		return ""
	}
	return l.ImageURLs[0]
}

type PortfolioItem struct {
	ID          string   `bson:"_id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Client      string   `bson:"client,omitempty" json:"client,omitempty"`
	Date        string   `bson:"date,omitempty" json:"date,omitempty"`
	Guests      int      `bson:"guests,omitempty" json:"guests,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	Description string   `bson:"description" json:"description"`
	ImageURLs   []string `bson:"image_urls" json:"image_urls"`
	Tags        []string `bson:"tags" json:"tags"`

	// Position preserves the newest-first list order across a publish/load
	// round trip. Not part of the public payload.
	Position int `bson:"position" json:"-"`
}

// CoverImage is the first image of the project's gallery.
func (p PortfolioItem) CoverImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

type ClientItem struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	LogoURL string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
}

type Inquiry struct {
	ID           string    `bson:"_id" json:"id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	EventType    string    `bson:"event_type" json:"event_type"`
	Guests       int       `bson:"guests" json:"guests"`
	DateLocation string    `bson:"date_location" json:"date_location"`
	Email        string    `bson:"email" json:"email"`
	Requirements string    `bson:"requirements" json:"requirements"`
	Status       string    `bson:"status" json:"status"`
}

// SiteContent is the full aggregate edited by the dashboard. Projects and
// Inquiries are excluded from the bson mapping because they are persisted in
// their own collections; everything else fits inside the settings document.
//
// Image fields hold either a remote URL or an inline data URI. Consumers do
// not distinguish the two, and empty values mean "show nothing".
type SiteContent struct {
	LogoDark     string   `bson:"logo_dark" json:"logo_dark"`
	LogoLight    string   `bson:"logo_light" json:"logo_light"`
	Favicon      string   `bson:"favicon" json:"favicon"`
	HeroImages   []string `bson:"hero_images" json:"hero_images"`
	AboutImage   string   `bson:"about_image" json:"about_image"`
	ContactImage string   `bson:"contact_image" json:"contact_image"`

	Text TextContent `bson:"text" json:"text"`
	Team TeamContent `bson:"team" json:"team"`

	Locations []LocationItem `bson:"locations" json:"locations"`
	Clients   []ClientItem   `bson:"clients" json:"clients"`

	Projects  []PortfolioItem `bson:"-" json:"projects"`
	// Inquiries are admin-only. PublicView nils the slice so the field drops
	// out of the public payload entirely.
	Inquiries []Inquiry `bson:"-" json:"inquiries,omitempty"`
}

// Clone returns a deep copy. Mutation operations work on copies so callers
// holding a previously returned snapshot never observe in-place changes.
func (c SiteContent) Clone() SiteContent {
	out := c
	out.HeroImages = append([]string(nil), c.HeroImages...)

	out.Locations = make([]LocationItem, len(c.Locations))
	for i, loc := range c.Locations {
		loc.ImageURLs = append([]string(nil), loc.ImageURLs...)
		out.Locations[i] = loc
	}

	out.Clients = append([]ClientItem(nil), c.Clients...)

	out.Projects = make([]PortfolioItem, len(c.Projects))
	for i, p := range c.Projects {
		p.ImageURLs = append([]string(nil), p.ImageURLs...)
		p.Tags = append([]string(nil), p.Tags...)
		out.Projects[i] = p
	}

	out.Inquiries = append([]Inquiry(nil), c.Inquiries...)
	return out
}

// PublicView strips the admin-only inquiry records from the aggregate.
func (c SiteContent) PublicView() SiteContent {
	out := c.Clone()
	out.Inquiries = nil
	return out
}

// Normalize fills the defaults for sections absent from an older persisted
// document, so documents written before a field existed stay loadable. It
// also replaces nil entity slices so JSON output is stable, and defaults
// inquiry statuses to "new".
func (c *SiteContent) Normalize() {
	def := Default()

	if c.Text == (TextContent{}) {
		c.Text = def.Text
	}
	if c.Team == (TeamContent{}) {
		c.Team = def.Team
	}
	if c.HeroImages == nil {
		c.HeroImages = append([]string(nil), def.HeroImages...)
	}
	if c.Locations == nil {
		c.Locations = def.Clone().Locations
	}
	if c.Clients == nil {
		c.Clients = []ClientItem{}
	}
	if c.Projects == nil {
		c.Projects = []PortfolioItem{}
	}
	if c.Inquiries == nil {
		c.Inquiries = []Inquiry{}
	}

	for i := range c.Locations {
		if c.Locations[i].ImageURLs == nil {
			c.Locations[i].ImageURLs = []string{}
		}
	}
	for i := range c.Projects {
		if c.Projects[i].ImageURLs == nil {
			c.Projects[i].ImageURLs = []string{}
		}
		if c.Projects[i].Tags == nil {
			c.Projects[i].Tags = []string{}
		}
	}
	for i := range c.Inquiries {
		if c.Inquiries[i].Status == "" {
			c.Inquiries[i].Status = StatusNew
		}
	}
}
