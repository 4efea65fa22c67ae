// Package images converts operator-selected image files into bounded-size
// inline payloads before they enter the content store. Compression here is
// what keeps per-entity documents under the remote store's size ceiling once
// a few photos accumulate.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Options bound the output: MaxWidth in pixels, Quality on a 0–1 scale.
// MaxBytes, when positive, rejects inputs above that size before decoding.
type Options struct {
	MaxWidth int
	Quality  float64
	MaxBytes int64
}

// SizeError reports an input over the configured byte ceiling.
type SizeError struct {
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("image is %.1fMB, limit is %.0fMB", float64(e.Size)/(1<<20), float64(e.Limit)/(1<<20))
}

// Process decodes data, downscales it to opts.MaxWidth preserving aspect
// ratio, re-encodes it as JPEG at opts.Quality and returns a data URI usable
// directly as an image source. Files in a format the decoder does not know
// (svg and the like) are passed through unchanged as a data URI rather than
// rejected.
func Process(data []byte, opts Options) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty file")
	}
	if opts.MaxBytes > 0 && int64(len(data)) > opts.MaxBytes {
		return "", &SizeError{Size: int64(len(data)), Limit: opts.MaxBytes}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return dataURI(http.DetectContentType(data), data), nil
		}
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if opts.MaxWidth > 0 && w > opts.MaxWidth {
		newH := int(math.Round(float64(h) * float64(opts.MaxWidth) / float64(w)))
		dst := image.NewRGBA(image.Rect(0, 0, opts.MaxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality(opts.Quality)}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return dataURI("image/jpeg", buf.Bytes()), nil
}

// File is one entry of a multi-file upload.
type File struct {
	Name string
	Data []byte
}

// Result carries the outcome for a single file. Err is set when that file
// was skipped; other files in the batch are unaffected.
type Result struct {
	Name    string `json:"name"`
	DataURI string `json:"data_uri,omitempty"`
	Err     string `json:"error,omitempty"`
}

// ProcessBatch runs files sequentially so one corrupt file cannot abort the
// remainder of the selection.
func ProcessBatch(files []File, opts Options) []Result {
	results := make([]Result, 0, len(files))
	for _, f := range files {
		uri, err := Process(f.Data, opts)
		if err != nil {
			results = append(results, Result{Name: f.Name, Err: err.Error()})
			continue
		}
		results = append(results, Result{Name: f.Name, DataURI: uri})
	}
	return results
}

func jpegQuality(q float64) int {
	quality := int(math.Round(q * 100))
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return quality
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
