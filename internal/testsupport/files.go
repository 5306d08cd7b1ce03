package testsupport

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// NewNRGBA builds an image from row-major pixels; len(pixels) must equal w*h.
func NewNRGBA(t testing.TB, w, h int, pixels ...color.NRGBA) *image.NRGBA {
	t.Helper()

	if len(pixels) != w*h {
		t.Fatalf("NewNRGBA: got %d pixels for %dx%d", len(pixels), w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, px := range pixels {
		img.SetNRGBA(i%w, i/w, px)
	}
	return img
}

// WritePNG encodes img as PNG at path.
func WritePNG(t testing.TB, path string, img image.Image) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// ReadNRGBA decodes the PNG at path into a non-premultiplied grid.
func ReadNRGBA(t testing.TB, path string) *image.NRGBA {
	t.Helper()

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	return imaging.Clone(img)
}
