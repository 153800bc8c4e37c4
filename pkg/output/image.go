package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"golang.org/x/xerrors"

	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// Format is an output image encoding
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
)

// ParseFormat accepts a format name or file extension, with or without the dot
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	default:
		return "", xerrors.Errorf("unsupported image format %q", name)
	}
}

// ToImage converts a frame to an RGBA image. Frame row 0 is the bottom of
// the picture, image row 0 is the top, so rows are flipped.
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			img.SetRGBA(x, frame.Height-1-y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// Scale resizes an image by factor with Catmull-Rom filtering.
// A factor of 1 returns the image unchanged.
func Scale(img *image.RGBA, factor float64) *image.RGBA {
	if factor == 1 {
		return img
	}

	b := img.Bounds()
	width := max(1, int(float64(b.Dx())*factor))
	height := max(1, int(float64(b.Dy())*factor))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return xerrors.Errorf("while encoding PNG: %w", err)
		}
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return xerrors.Errorf("while encoding WebP: %w", err)
		}
	default:
		return xerrors.Errorf("unsupported image format %q", format)
	}
	return nil
}

// Save writes img to path, creating parent directories as needed.
// The format follows the file extension.
func Save(path string, img image.Image) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return xerrors.Errorf("while creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("while creating output file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return xerrors.Errorf("while closing output file: %w", err)
	}
	return nil
}

// TimestampedPath returns <dir>/<sceneName>/render_<timestamp>.<format>
func TimestampedPath(dir, sceneName string, format Format, now time.Time) string {
	filename := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format)
	return filepath.Join(dir, sceneName, filename)
}
