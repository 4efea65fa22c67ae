package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artloko1-gif/MastersCatering/internal/config"
	"github.com/artloko1-gif/MastersCatering/internal/images"
)

func newUploadServer(t *testing.T, maxUploadMB int64) *Server {
	t.Helper()
	return &Server{
		Cfg: &config.Config{
			GalleryMaxWidth: 800,
			GalleryQuality:  0.6,
			AvatarMaxWidth:  400,
			AvatarQuality:   0.6,
			MaxUploadMB:     maxUploadMB,
		},
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func pngUpload(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, data := range files {
		part, err := writer.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

type uploadResponse struct {
	Results   []images.Result `json:"results"`
	Processed int             `json:"processed"`
	Skipped   int             `json:"skipped"`
}

func TestUploadImagesIsolatesBrokenFiles(t *testing.T) {
	server := newUploadServer(t, 10)
	body, contentType := multipartUpload(t, map[string][]byte{
		"ok.png":     pngUpload(t, 100, 100),
		"broken.png": nil,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	server.UploadImages(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Processed != 1 || resp.Skipped != 1 {
		t.Fatalf("processed=%d skipped=%d, want 1 and 1", resp.Processed, resp.Skipped)
	}
}

func TestUploadImagesNoCeilingKeepsWholeFile(t *testing.T) {
	server := newUploadServer(t, 0)
	body, contentType := multipartUpload(t, map[string][]byte{
		"photo.png": pngUpload(t, 120, 80),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	server.UploadImages(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Processed != 1 || resp.Skipped != 0 {
		t.Fatalf("processed=%d skipped=%d, file must not be truncated without a ceiling", resp.Processed, resp.Skipped)
	}
	if len(resp.Results) != 1 || resp.Results[0].DataURI == "" {
		t.Fatalf("results = %+v, want one data uri", resp.Results)
	}
}

func TestUploadImagesRejectsEmptySelection(t *testing.T) {
	server := newUploadServer(t, 10)
	body, contentType := multipartUpload(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	server.UploadImages(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for no files", rec.Code)
	}
}
