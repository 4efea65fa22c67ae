package content

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidStatus = errors.New("invalid inquiry status")

// Repository persists the aggregate. Load reports ok=false when nothing has
// been published yet, which is not an error.
type Repository interface {
	Load(ctx context.Context) (SiteContent, bool, error)
	Publish(ctx context.Context, content SiteContent) error
	SaveInquiry(ctx context.Context, inq Inquiry) error
	DeleteInquiry(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error
}

// Store is the single source of truth for the site content. The public site
// reads from it; the admin dashboard drives every mutation through it. All
// operations work on the in-memory aggregate. Entity collections persist only
// on an explicit Publish, except inquiries (and remote entity deletes), which
// are written through immediately because they originate from the public
// contact form and must survive without an operator session.
type Store struct {
	mu sync.RWMutex
	// working is the operator's edit state; published is the last snapshot
	// pushed to (or loaded from) the remote store. The public site reads
	// published, so half-finished edits are never visible to visitors.
	working   SiteContent
	published SiteContent
	repo      Repository
	policy    *bluemonday.Policy
	location  *time.Location
	log       *slog.Logger
}

func NewStore(repo Repository, location *time.Location, log *slog.Logger) *Store {
	def := Default()
	def.Normalize()
	return &Store{
		working:   def,
		published: def.Clone(),
		repo:      repo,
		policy:    bluemonday.UGCPolicy(),
		location:  location,
		log:       log,
	}
}

// Init loads the last published aggregate. A failed or empty load falls back
// to the bundled defaults instead of blocking startup.
func (s *Store) Init(ctx context.Context) {
	if s.repo == nil {
		return
	}
	loaded, ok, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("content load failed, using defaults", slog.String("error", err.Error()))
		return
	}
	if !ok {
		s.log.Info("no published content, using defaults")
		return
	}
	loaded.Normalize()
	s.mu.Lock()
	s.working = loaded
	s.published = loaded.Clone()
	s.mu.Unlock()
	s.log.Info("content loaded",
		slog.Int("projects", len(loaded.Projects)),
		slog.Int("inquiries", len(loaded.Inquiries)),
	)
}

// Content returns a snapshot of the working aggregate.
func (s *Store) Content() SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.working.Clone()
}

// Published returns the last published snapshot, the one the public site
// renders.
func (s *Store) Published() SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.published.Clone()
}

// clean strips markup from free-form operator and visitor input. Sanitize
// entity-escapes the text it keeps, so unescape afterwards: a plain title
// like "Master's Gala & Dinner" must round-trip exactly as typed.
func (s *Store) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

// UpdateContent shallow-merges the top-level fields. No validation: any field
// may be cleared, consumers treat empty image fields as "show nothing".
func (s *Store) UpdateContent(p Patch) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.working
	if p.LogoDark != nil {
		c.LogoDark = *p.LogoDark
	}
	if p.LogoLight != nil {
		c.LogoLight = *p.LogoLight
	}
	if p.Favicon != nil {
		c.Favicon = *p.Favicon
	}
	if p.HeroImages != nil {
		c.HeroImages = append([]string(nil), *p.HeroImages...)
	}
	if p.AboutImage != nil {
		c.AboutImage = *p.AboutImage
	}
	if p.ContactImage != nil {
		c.ContactImage = *p.ContactImage
	}
	if p.Text != nil {
		c.Text = TextContent{
			HeroTitle:    s.clean(p.Text.HeroTitle),
			HeroSubtitle: s.clean(p.Text.HeroSubtitle),
			AboutTitle:   s.clean(p.Text.AboutTitle),
			AboutText:    s.clean(p.Text.AboutText),
		}
	}
	return c.Clone()
}

func (s *Store) UpdateTeam(p TeamPatch) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &s.working.Team
	if p.TeamImage != nil {
		t.TeamImage = *p.TeamImage
	}
	if p.ManagerImage != nil {
		t.ManagerImage = *p.ManagerImage
	}
	if p.ManagerName != nil {
		t.ManagerName = s.clean(*p.ManagerName)
	}
	if p.ManagerRole != nil {
		t.ManagerRole = s.clean(*p.ManagerRole)
	}
	if p.ManagerQuote != nil {
		t.ManagerQuote = s.clean(*p.ManagerQuote)
	}
	if p.TeamMotto != nil {
		t.TeamMotto = s.clean(*p.TeamMotto)
	}
	return s.working.Clone()
}

// UpdateLocation merges into the location with the given id. A missing id is
// a silent no-op.
func (s *Store) UpdateLocation(id string, p LocationPatch) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.working.Locations {
		if s.working.Locations[i].ID != id {
			continue
		}
		loc := &s.working.Locations[i]
		if p.Title != nil {
			loc.Title = s.clean(*p.Title)
		}
		if p.Description != nil {
			loc.Description = s.clean(*p.Description)
		}
		if p.ImageURLs != nil {
			loc.ImageURLs = append([]string(nil), *p.ImageURLs...)
		}
		break
	}
	return s.working.Clone()
}

// AddProject prepends so the newest project leads the portfolio. An empty id
// gets a generated one.
func (s *Store) AddProject(p PortfolioItem) SiteContent {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	p.Title = s.clean(p.Title)
	p.Client = s.clean(p.Client)
	p.Description = s.clean(p.Description)
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Projects = append([]PortfolioItem{p}, s.working.Projects...)
	return s.working.Clone()
}

func (s *Store) UpdateProject(id string, p ProjectPatch) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.working.Projects {
		if s.working.Projects[i].ID != id {
			continue
		}
		proj := &s.working.Projects[i]
		if p.Title != nil {
			proj.Title = s.clean(*p.Title)
		}
		if p.Client != nil {
			proj.Client = s.clean(*p.Client)
		}
		if p.Date != nil {
			proj.Date = strings.TrimSpace(*p.Date)
		}
		if p.Guests != nil {
			proj.Guests = *p.Guests
		}
		if p.Location != nil {
			proj.Location = s.clean(*p.Location)
		}
		if p.Description != nil {
			proj.Description = s.clean(*p.Description)
		}
		if p.ImageURLs != nil {
			proj.ImageURLs = append([]string(nil), *p.ImageURLs...)
		}
		if p.Tags != nil {
			proj.Tags = append([]string(nil), *p.Tags...)
		}
		break
	}
	return s.working.Clone()
}

// RemoveProject drops the project locally and requests deletion of its
// persisted document, so removed projects do not pile up remotely until the
// next publish. The remote delete error is returned but the local removal
// stands either way.
func (s *Store) RemoveProject(ctx context.Context, id string) (SiteContent, error) {
	s.mu.Lock()
	kept := s.working.Projects[:0:0]
	removed := false
	for _, p := range s.working.Projects {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.working.Projects = kept
	snap := s.working.Clone()
	s.mu.Unlock()

	if !removed || s.repo == nil {
		return snap, nil
	}
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return snap, err
	}
	return snap, nil
}

func (s *Store) AddClient(cl ClientItem) SiteContent {
	if cl.ID == "" {
		cl.ID = primitive.NewObjectID().Hex()
	}
	cl.Name = s.clean(cl.Name)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Clients = append(s.working.Clients, cl)
	return s.working.Clone()
}

func (s *Store) UpdateClient(id string, p ClientPatch) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.working.Clients {
		if s.working.Clients[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.working.Clients[i].Name = s.clean(*p.Name)
		}
		if p.LogoURL != nil {
			s.working.Clients[i].LogoURL = *p.LogoURL
		}
		break
	}
	return s.working.Clone()
}

func (s *Store) RemoveClient(id string) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.working.Clients[:0:0]
	for _, cl := range s.working.Clients {
		if cl.ID == id {
			continue
		}
		kept = append(kept, cl)
	}
	s.working.Clients = kept
	return s.working.Clone()
}

// ReorderClients applies the given id order to the logo wall. Unknown ids are
// ignored; clients missing from the list keep their relative order at the
// tail.
func (s *Store) ReorderClients(ids []string) SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]ClientItem, len(s.working.Clients))
	for _, cl := range s.working.Clients {
		byID[cl.ID] = cl
	}

	ordered := make([]ClientItem, 0, len(s.working.Clients))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		cl, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, cl)
	}
	for _, cl := range s.working.Clients {
		if _, ok := seen[cl.ID]; !ok {
			ordered = append(ordered, cl)
		}
	}

	s.working.Clients = ordered
	return s.working.Clone()
}

// AddInquiry prepends the inquiry and persists it immediately. This path does
// not wait for a publish: the record comes from the public contact form and
// must survive even if the operator never opens the dashboard. A failed write
// keeps the inquiry in local state and returns the error.
func (s *Store) AddInquiry(ctx context.Context, inq Inquiry) (Inquiry, error) {
	if inq.ID == "" {
		inq.ID = primitive.NewObjectID().Hex()
	}
	if inq.CreatedAt.IsZero() {
		inq.CreatedAt = time.Now().In(s.location)
	}
	if inq.Status == "" {
		inq.Status = StatusNew
	}
	inq.EventType = s.clean(inq.EventType)
	inq.DateLocation = s.clean(inq.DateLocation)
	inq.Email = strings.TrimSpace(inq.Email)
	inq.Requirements = s.clean(inq.Requirements)

	s.mu.Lock()
	s.working.Inquiries = append([]Inquiry{inq}, s.working.Inquiries...)
	s.mu.Unlock()

	if s.repo == nil {
		return inq, nil
	}
	return inq, s.repo.SaveInquiry(ctx, inq)
}

// UpdateInquiryStatus sets the workflow status and persists the record
// immediately. ok is false when the id is unknown, which leaves the
// collection unchanged.
func (s *Store) UpdateInquiryStatus(ctx context.Context, id, status string) (Inquiry, bool, error) {
	if !IsValidStatus(status) {
		return Inquiry{}, false, ErrInvalidStatus
	}

	s.mu.Lock()
	var updated Inquiry
	found := false
	for i := range s.working.Inquiries {
		if s.working.Inquiries[i].ID == id {
			s.working.Inquiries[i].Status = status
			updated = s.working.Inquiries[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return Inquiry{}, false, nil
	}
	if s.repo == nil {
		return updated, true, nil
	}
	return updated, true, s.repo.SaveInquiry(ctx, updated)
}

// RemoveInquiry drops the record and deletes its remote document directly
// rather than waiting for the next full publish.
func (s *Store) RemoveInquiry(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.working.Inquiries[:0:0]
	removed := false
	for _, inq := range s.working.Inquiries {
		if inq.ID == id {
			removed = true
			continue
		}
		kept = append(kept, inq)
	}
	s.working.Inquiries = kept
	s.mu.Unlock()

	if !removed || s.repo == nil {
		return nil
	}
	return s.repo.DeleteInquiry(ctx, id)
}

// Publish writes the entire aggregate to the remote store in one atomic
// batch. On failure the remote store is unchanged and local state keeps every
// edit, so the operator can shrink the payload and retry.
func (s *Store) Publish(ctx context.Context) error {
	if s.repo == nil {
		return errors.New("no repository configured")
	}
	snap := s.Content()
	if err := s.repo.Publish(ctx, snap); err != nil {
		return err
	}
	s.mu.Lock()
	s.published = snap.Clone()
	s.mu.Unlock()
	return nil
}
