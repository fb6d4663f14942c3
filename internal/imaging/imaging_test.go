package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T, path string, w, h int, asJPEG bool) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if asJPEG {
		err = jpeg.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestLoadResized(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		w, h   int
		asJPEG bool
		size   int
		crisp  bool
	}{
		{"png upscale", "a.png", 50, 80, false, 400, false},
		{"png downscale crisp", "b.png", 600, 600, false, 300, true},
		{"jpeg under png extension", "c.png", 120, 40, true, 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeImage(t, path, tt.w, tt.h, tt.asJPEG)

			img, err := LoadResized(path, tt.size, tt.crisp)
			if err != nil {
				t.Fatalf("LoadResized failed: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.size || b.Dy() != tt.size {
				t.Errorf("expected %dx%d, got %dx%d", tt.size, tt.size, b.Dx(), b.Dy())
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, _, err := Load(garbage); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestResize_CrispKeepsHardEdges(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 255})
	src.SetGray(0, 1, color.Gray{Y: 255})
	src.SetGray(1, 1, color.Gray{Y: 0})

	out := Resize(src, 100, true)
	for _, p := range []image.Point{{10, 10}, {49, 49}, {60, 10}, {10, 60}, {99, 99}} {
		r, _, _, _ := out.At(p.X, p.Y).RGBA()
		if r != 0 && r != 0xffff {
			t.Errorf("pixel %v is blended (%d), expected pure black or white", p, r)
		}
	}
}
