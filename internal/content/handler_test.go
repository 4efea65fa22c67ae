package content

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/artloko1-gif/MastersCatering/internal/cache"
	"github.com/artloko1-gif/MastersCatering/internal/validation"
)

func newTestHandler(t *testing.T) (*Handler, *Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewStore(&fakeRepo{}, time.UTC, log)
	h := NewHandler(store, validation.New(), cache.NewNoop(), time.Minute, nil, log)
	return h, store
}

func TestPublicGetOmitsInquiries(t *testing.T) {
	h, store := newTestHandler(t)
	if _, err := store.AddInquiry(context.Background(), Inquiry{EventType: "Svatba", Email: "a@example.com"}); err != nil {
		t.Fatalf("AddInquiry error: %v", err)
	}
	if err := store.Publish(context.Background()); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	rec := httptest.NewRecorder()
	h.PublicGet(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload["inquiries"]; ok {
		t.Fatal("public payload must not carry inquiries")
	}
	if _, ok := payload["projects"]; !ok {
		t.Fatal("public payload must carry the portfolio")
	}
}

func TestCreateInquiryValidation(t *testing.T) {
	h, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(`{"email":"not-an-email"}`))
	h.CreateInquiry(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(store.Content().Inquiries) != 0 {
		t.Fatal("invalid inquiry must not be stored")
	}
}

func TestCreateInquiryDefaultsEventType(t *testing.T) {
	h, store := newTestHandler(t)

	body := `{"email":"host@example.com","guests":120,"date_location":"červen, Praha"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	h.CreateInquiry(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	inqs := store.Content().Inquiries
	if len(inqs) != 1 {
		t.Fatalf("inquiry count = %d, want 1", len(inqs))
	}
	if inqs[0].EventType != "Neurčeno" {
		t.Fatalf("event type = %q, want default", inqs[0].EventType)
	}
	if inqs[0].Guests != 120 {
		t.Fatalf("guests = %d, want 120", inqs[0].Guests)
	}
}

func TestAdminCreateProjectRequiresTitle(t *testing.T) {
	h, store := newTestHandler(t)
	before := len(store.Content().Projects)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects", strings.NewReader(`{"client":"Qatar Airways Cargo"}`))
	h.AdminCreateProject(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing title", rec.Code)
	}
	if got := len(store.Content().Projects); got != before {
		t.Fatalf("project count = %d, want %d; invalid request must not mutate the store", got, before)
	}
}

func TestAdminListInquiriesStatusFilter(t *testing.T) {
	h, store := newTestHandler(t)
	first, err := store.AddInquiry(context.Background(), Inquiry{EventType: "Svatba", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("AddInquiry error: %v", err)
	}
	if _, err := store.AddInquiry(context.Background(), Inquiry{EventType: "Ples", Email: "b@example.com"}); err != nil {
		t.Fatalf("AddInquiry error: %v", err)
	}
	if _, _, err := store.UpdateInquiryStatus(context.Background(), first.ID, StatusSolved); err != nil {
		t.Fatalf("UpdateInquiryStatus error: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/inquiries?status=solved", nil)
	h.AdminListInquiries(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload struct {
		Items []Inquiry `json:"items"`
		Total int64     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Total != 1 || len(payload.Items) != 1 {
		t.Fatalf("total = %d items = %d, want exactly the solved inquiry", payload.Total, len(payload.Items))
	}
	if payload.Items[0].ID != first.ID {
		t.Fatalf("filtered inquiry id = %q, want %q", payload.Items[0].ID, first.ID)
	}
}
