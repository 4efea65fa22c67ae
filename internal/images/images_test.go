package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected data uri prefix: %.40s", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	return img
}

func TestProcessDownscalesWideImage(t *testing.T) {
	data := pngFixture(t, 1600, 900)

	uri, err := Process(data, Options{MaxWidth: 800, Quality: 0.6})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	out := decodeDataURI(t, uri)
	if got := out.Bounds().Dx(); got != 800 {
		t.Fatalf("width = %d, want 800", got)
	}
	if got := out.Bounds().Dy(); got != 450 {
		t.Fatalf("height = %d, want 450 to preserve aspect ratio", got)
	}
}

func TestProcessKeepsNarrowImageSize(t *testing.T) {
	data := pngFixture(t, 300, 200)

	uri, err := Process(data, Options{MaxWidth: 800, Quality: 0.6})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	out := decodeDataURI(t, uri)
	if out.Bounds().Dx() != 300 || out.Bounds().Dy() != 200 {
		t.Fatalf("size = %dx%d, narrow image must not be upscaled", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestProcessRejectsOversizedInput(t *testing.T) {
	data := pngFixture(t, 64, 64)

	_, err := Process(data, Options{MaxWidth: 800, Quality: 0.6, MaxBytes: 10})
	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want SizeError", err)
	}
	if sizeErr.Size != int64(len(data)) {
		t.Fatalf("SizeError.Size = %d, want %d", sizeErr.Size, len(data))
	}
}

func TestProcessPassesThroughUnknownFormat(t *testing.T) {
	data := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)

	uri, err := Process(data, Options{MaxWidth: 800, Quality: 0.6})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:") || strings.HasPrefix(uri, "data:image/jpeg") {
		t.Fatalf("unexpected passthrough uri prefix: %.40s", uri)
	}
	idx := strings.Index(uri, ";base64,")
	if idx < 0 {
		t.Fatalf("passthrough uri missing base64 payload: %.40s", uri)
	}
	decoded, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	if err != nil {
		t.Fatalf("decode passthrough: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("passthrough must not modify the payload")
	}
}

func TestProcessRejectsEmptyFile(t *testing.T) {
	if _, err := Process(nil, Options{MaxWidth: 800, Quality: 0.6}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	files := []File{
		{Name: "ok.png", Data: pngFixture(t, 100, 100)},
		{Name: "broken.png", Data: nil},
		{Name: "also-ok.png", Data: pngFixture(t, 100, 100)},
	}

	results := ProcessBatch(files, Options{MaxWidth: 800, Quality: 0.6})

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Err != "" || results[0].DataURI == "" {
		t.Fatalf("first file should succeed: %+v", results[0])
	}
	if results[1].Err == "" {
		t.Fatal("broken file should carry an error")
	}
	if results[2].Err != "" || results[2].DataURI == "" {
		t.Fatalf("failure must not abort the batch: %+v", results[2])
	}
}

func TestJPEGQualityClamp(t *testing.T) {
	if got := jpegQuality(0.6); got != 60 {
		t.Fatalf("quality 0.6 = %d, want 60", got)
	}
	if got := jpegQuality(-1); got != 1 {
		t.Fatalf("quality -1 = %d, want clamp to 1", got)
	}
	if got := jpegQuality(2); got != 100 {
		t.Fatalf("quality 2 = %d, want clamp to 100", got)
	}
}
