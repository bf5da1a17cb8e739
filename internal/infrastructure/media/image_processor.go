// Package media provides image processing for admin uploads.
package media

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/oklog/ulid/v2"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
)

// ImageProcessor normalizes admin-uploaded images before they are forwarded
// to the remote content API: decode, cap the width, re-encode as webp.
type ImageProcessor struct {
	maxWidth int
	quality  float32
}

// NewImageProcessor creates an ImageProcessor with the given max width and
// webp quality (0-100).
func NewImageProcessor(maxWidth, quality int) *ImageProcessor {
	return &ImageProcessor{
		maxWidth: maxWidth,
		quality:  float32(quality),
	}
}

// Process converts raw upload bytes into the webp Upload attached to a
// mutation. originalName only contributes its base name to the generated
// filename; the extension is always .webp.
func (p *ImageProcessor) Process(data []byte, originalName string) (*repositories.Upload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image upload")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	if img.Bounds().Dx() > p.maxWidth {
		img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}

	return &repositories.Upload{
		Filename:    uniqueFilename(originalName),
		ContentType: "image/webp",
		Data:        buf.Bytes(),
	}, nil
}

// uniqueFilename builds "<slugged-base>-<ulid>.webp" so repeated uploads of
// the same file never collide on the remote side.
func uniqueFilename(originalName string) string {
	base := originalName
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	base = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(base), " ", "-"))
	if base == "" {
		base = "upload"
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), ulid.DefaultEntropy())
	return fmt.Sprintf("%s-%s.webp", base, strings.ToLower(id.String()))
}
