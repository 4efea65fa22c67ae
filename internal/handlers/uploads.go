package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/artloko1-gif/MastersCatering/internal/images"
	"github.com/artloko1-gif/MastersCatering/internal/transport"
)

// UploadImages compresses a multi-file selection into inline payloads. Files
// are processed one by one; a corrupt or oversized file is reported in its
// result entry and the rest of the batch continues. The "class" query picks
// the avatar parameters (profile photos, logos, favicon) over the gallery
// defaults.
func (s *Server) UploadImages(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	opts := images.Options{
		MaxWidth: s.Cfg.GalleryMaxWidth,
		Quality:  s.Cfg.GalleryQuality,
		MaxBytes: s.Cfg.MaxUploadBytes(),
	}
	if r.URL.Query().Get("class") == "avatar" {
		opts.MaxWidth = s.Cfg.AvatarMaxWidth
		opts.Quality = s.Cfg.AvatarQuality
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		log.Warn("image upload: invalid multipart form", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["images"]) == 0 {
		transport.WriteError(w, http.StatusBadRequest, "no image files provided", nil)
		return
	}

	files := make([]images.File, 0, len(r.MultipartForm.File["images"]))
	for _, header := range r.MultipartForm.File["images"] {
		src, err := header.Open()
		if err != nil {
			files = append(files, images.File{Name: header.Filename})
			continue
		}
		// Read one byte past the ceiling so the size check still fires for
		// files the client lied about. No ceiling configured means read it
		// all; a LimitReader bound of 1 would truncate every file.
		var reader io.Reader = src
		if opts.MaxBytes > 0 {
			reader = io.LimitReader(src, opts.MaxBytes+1)
		}
		data, err := io.ReadAll(reader)
		src.Close()
		if err != nil {
			files = append(files, images.File{Name: header.Filename})
			continue
		}
		files = append(files, images.File{Name: header.Filename, Data: data})
	}

	results := images.ProcessBatch(files, opts)

	processed := 0
	skipped := 0
	for _, res := range results {
		if res.Err != "" {
			skipped++
			continue
		}
		processed++
	}

	log.Info("image upload: done", slog.Int("processed", processed), slog.Int("skipped", skipped))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"results":   results,
		"processed": processed,
		"skipped":   skipped,
	})
}
