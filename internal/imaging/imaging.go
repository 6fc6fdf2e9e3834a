// Package imaging post-processes device screenshots: scaling, format
// conversion, PNG header inspection and element annotation.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultJPEGQuality is used when Options.Quality is unset.
const DefaultJPEGQuality = 75

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Options controls Transform.
type Options struct {
	Width   int    // target width in pixels; 0 keeps the original size
	Format  string // "png" (default) or "jpg"/"jpeg"
	Quality int    // JPEG quality 1-100
}

// PNGDimensions reads the width and height from a PNG header without
// decoding the image.
func PNGDimensions(data []byte) (width, height int, err error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, 0, fmt.Errorf("not a valid PNG file")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("reading PNG header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Resize scales img to width pixels, keeping the aspect ratio. Images
// already at or below width are returned unchanged.
func Resize(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || width >= b.Dx() {
		return img
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// Encode writes img in the requested format and returns the bytes and
// their MIME type.
func Encode(img image.Image, format string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "", "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encoding PNG: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	case "jpg", "jpeg":
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", fmt.Errorf("encoding JPEG: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	default:
		return nil, "", fmt.Errorf("unsupported image format: %q (expected png or jpg)", format)
	}
}

// Transform decodes a PNG screenshot, optionally resizes it and
// re-encodes it. An untouched PNG is returned as-is.
func Transform(data []byte, opts Options) ([]byte, string, error) {
	if opts.Width <= 0 && (opts.Format == "" || opts.Format == "png") {
		return data, "image/png", nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding screenshot: %w", err)
	}
	return Encode(Resize(img, opts.Width), opts.Format, opts.Quality)
}
