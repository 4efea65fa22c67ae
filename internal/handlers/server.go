package handlers

import (
	"log/slog"
	"net/http"

	"github.com/artloko1-gif/MastersCatering/internal/auth"
	"github.com/artloko1-gif/MastersCatering/internal/config"
	"github.com/artloko1-gif/MastersCatering/internal/content"
	"github.com/artloko1-gif/MastersCatering/internal/db"
	"github.com/artloko1-gif/MastersCatering/internal/middleware"
	"github.com/artloko1-gif/MastersCatering/internal/validation"
)

// Server carries the cross-cutting admin endpoints: auth, image uploads and
// the content export. Content CRUD lives in the content package's handler.
type Server struct {
	Cfg   *config.Config
	Cols  *db.Collections
	Store *content.Store
	Val   *validation.Validator
	Log   *slog.Logger
	JWT   *auth.Manager
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
