// Package media prepares service images and stores them in object storage.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/local-services/internal/httperr"
)

const (
	MaxUploadBytes = 5 << 20
	TargetHeight   = 500
	webpQuality    = 80
	ContentType    = "image/webp"
)

// MaxPixels bounds the decoded bitmap. The header is checked before any
// pixel data is decoded.
const MaxPixels = 40_000_000

var acceptedFormats = map[string]bool{"jpeg": true, "png": true, "webp": true}

// Processor scales images to TargetHeight, keeping the aspect ratio, and
// re-encodes them as WebP.
type Processor struct {
	quality float32
}

func NewProcessor() *Processor {
	return &Processor{quality: webpQuality}
}

func (p *Processor) Process(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || !acceptedFormats[format] {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil || !acceptedFormats[format] {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}

	width := b.Dx() * TargetHeight / b.Dy()
	if width < 1 {
		width = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, TargetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var out bytes.Buffer
	if err := webp.Encode(&out, dst, &webp.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}
