package content

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/artloko1-gif/MastersCatering/internal/cache"
	"github.com/artloko1-gif/MastersCatering/internal/httpx"
	"github.com/artloko1-gif/MastersCatering/internal/middleware"
	"github.com/artloko1-gif/MastersCatering/internal/transport"
	"github.com/artloko1-gif/MastersCatering/internal/validation"
)

const publicCacheKey = "content:public"

// Notifier sends the outbound inquiry emails. Nil-able: a deployment without
// a mail provider just skips notifications.
type Notifier interface {
	SendInquiryNotification(ctx context.Context, inq Inquiry) (string, error)
	SendInquiryConfirmation(ctx context.Context, inq Inquiry) (string, error)
}

type Handler struct {
	store    *Store
	val      *validation.Validator
	cache    cache.Cache
	cacheTTL time.Duration
	notifier Notifier
	log      *slog.Logger
}

func NewHandler(store *Store, val *validation.Validator, cacheStore cache.Cache, cacheTTL time.Duration, notifier Notifier, log *slog.Logger) *Handler {
	return &Handler{
		store:    store,
		val:      val,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		notifier: notifier,
		log:      log,
	}
}

// PublicGet serves the last published aggregate with inquiries stripped.
func (h *Handler) PublicGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), publicCacheKey); err == nil && ok {
			log.Info("content public: cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}
	}

	view := h.store.Published().PublicView()

	if h.cache != nil {
		if payload, err := httpx.EncodeJSON(view); err == nil {
			_ = h.cache.Set(r.Context(), publicCacheKey, payload, h.cacheTTL)
		}
	}

	log.Info("content public: ok")
	transport.WriteJSON(w, http.StatusOK, view)
}

// CreateInquiry handles the public contact form. The record is stored
// immediately; it does not wait for the operator's publish. Notification
// emails go out asynchronously so a slow mail provider never blocks the
// visitor.
func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateInquiryRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("inquiry create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("inquiry create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	eventType := strings.TrimSpace(req.EventType)
	if eventType == "" {
		eventType = "Neurčeno"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	inq, err := h.store.AddInquiry(ctx, Inquiry{
		EventType:    eventType,
		Guests:       req.Guests,
		DateLocation: req.DateLocation,
		Email:        req.Email,
		Requirements: req.Requirements,
	})
	if err != nil {
		// The inquiry is kept in memory and the notification still goes
		// out, so the visitor gets a success either way.
		log.Error("inquiry create: persist failed", slog.String("inquiry_id", inq.ID), slog.String("error", err.Error()))
	}

	go func(created Inquiry) {
		if h.notifier == nil {
			return
		}
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if _, err := h.notifier.SendInquiryNotification(notifyCtx, created); err != nil {
			h.log.Warn("inquiry create: notification failed",
				slog.String("inquiry_id", created.ID),
				slog.String("error", err.Error()),
			)
		}
		if _, err := h.notifier.SendInquiryConfirmation(notifyCtx, created); err != nil {
			h.log.Warn("inquiry create: confirmation email failed",
				slog.String("inquiry_id", created.ID),
				slog.String("email", created.Email),
				slog.String("error", err.Error()),
			)
		}
	}(inq)

	log.Info("inquiry create: ok", slog.String("inquiry_id", inq.ID), slog.Int("guests", inq.Guests))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      inq.ID,
	})
}

// AdminGet returns the full working aggregate, inquiries included.
func (h *Handler) AdminGet(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, h.store.Content())
}

func (h *Handler) AdminUpdateContent(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var patch Patch
	if err := httpx.DecodeJSON(r.Body, &patch); err != nil {
		log.Warn("content update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	updated := h.store.UpdateContent(patch)
	log.Info("content update: ok")
	transport.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminUpdateTeam(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var patch TeamPatch
	if err := httpx.DecodeJSON(r.Body, &patch); err != nil {
		log.Warn("team update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	updated := h.store.UpdateTeam(patch)
	log.Info("team update: ok")
	transport.WriteJSON(w, http.StatusOK, updated.Team)
}

func (h *Handler) AdminUpdateLocation(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var patch LocationPatch
	if err := httpx.DecodeJSON(r.Body, &patch); err != nil {
		log.Warn("location update: invalid json", slog.String("location_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	updated := h.store.UpdateLocation(id, patch)
	log.Info("location update: ok", slog.String("location_id", id))
	transport.WriteJSON(w, http.StatusOK, updated.Locations)
}

func (h *Handler) AdminCreateProject(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req CreateProjectRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("project create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("project create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	updated := h.store.AddProject(PortfolioItem{
		Title:       req.Title,
		Client:      req.Client,
		Date:        req.Date,
		Guests:      req.Guests,
		Location:    req.Location,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Tags:        req.Tags,
	})

	created := updated.Projects[0]
	log.Info("project create: ok", slog.String("project_id", created.ID))
	transport.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) AdminUpdateProject(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var patch ProjectPatch
	if err := httpx.DecodeJSON(r.Body, &patch); err != nil {
		log.Warn("project update: invalid json", slog.String("project_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(patch); err != nil {
		log.Warn("project update: validation error", slog.String("project_id", id))
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	updated := h.store.UpdateProject(id, patch)
	log.Info("project update: ok", slog.String("project_id", id))
	transport.WriteJSON(w, http.StatusOK, updated.Projects)
}

func (h *Handler) AdminDeleteProject(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.store.RemoveProject(ctx, id)
	if err != nil {
		log.Error("project delete: remote delete failed", slog.String("project_id", id), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "project removed locally but the remote delete failed; publish to reconcile", nil)
		return
	}

	log.Info("project delete: ok", slog.String("project_id", id))
	transport.WriteJSON(w, http.StatusOK, updated.Projects)
}

func (h *Handler) AdminCreateClient(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req CreateClientRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("client create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("client create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	updated := h.store.AddClient(ClientItem{Name: req.Name, LogoURL: req.LogoURL})
	created := updated.Clients[len(updated.Clients)-1]
	log.Info("client create: ok", slog.String("client_id", created.ID))
	transport.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) AdminUpdateClient(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var patch ClientPatch
	if err := httpx.DecodeJSON(r.Body, &patch); err != nil {
		log.Warn("client update: invalid json", slog.String("client_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	updated := h.store.UpdateClient(id, patch)
	log.Info("client update: ok", slog.String("client_id", id))
	transport.WriteJSON(w, http.StatusOK, updated.Clients)
}

func (h *Handler) AdminDeleteClient(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	updated := h.store.RemoveClient(id)
	log.Info("client delete: ok", slog.String("client_id", id))
	transport.WriteJSON(w, http.StatusOK, updated.Clients)
}

func (h *Handler) AdminReorderClients(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req ReorderClientsRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("client reorder: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("client reorder: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	updated := h.store.ReorderClients(req.IDs)
	log.Info("client reorder: ok", slog.Int("count", len(updated.Clients)))
	transport.WriteJSON(w, http.StatusOK, updated.Clients)
}

func (h *Handler) AdminListInquiries(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("inquiry list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && !IsValidStatus(status) {
		transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"status": "oneof"})
		return
	}

	all := h.store.Content().Inquiries
	filtered := make([]Inquiry, 0, len(all))
	for _, inq := range all {
		if status != "" && inq.Status != status {
			continue
		}
		filtered = append(filtered, inq)
	}

	total := int64(len(filtered))
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	log.Info("inquiry list: ok", slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  filtered[offset:end],
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminUpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req InquiryStatusRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("inquiry status: invalid json", slog.String("inquiry_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("inquiry status: validation error", slog.String("inquiry_id", id))
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, ok, err := h.store.UpdateInquiryStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"status": "oneof"})
			return
		}
		log.Error("inquiry status: persist failed", slog.String("inquiry_id", id), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if !ok {
		log.Warn("inquiry status: not found", slog.String("inquiry_id", id))
		transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
		return
	}

	log.Info("inquiry status: ok", slog.String("inquiry_id", id), slog.String("status", updated.Status))
	transport.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminDeleteInquiry(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.RemoveInquiry(ctx, id); err != nil {
		log.Error("inquiry delete: remote delete failed", slog.String("inquiry_id", id), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("inquiry delete: ok", slog.String("inquiry_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// AdminPublish pushes the whole working aggregate to the remote store in one
// atomic batch and promotes it to the public view.
func (h *Handler) AdminPublish(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	if err := h.store.Publish(ctx); err != nil {
		log.Error("publish: failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError,
			"publish failed, nothing was saved; if the payload is too large, remove or shrink some images and try again", nil)
		return
	}

	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	snap := h.store.Content()
	log.Info("publish: ok",
		slog.Int("projects", len(snap.Projects)),
		slog.Int("inquiries", len(snap.Inquiries)),
	)
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "published",
		"projects":  len(snap.Projects),
		"inquiries": len(snap.Inquiries),
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
