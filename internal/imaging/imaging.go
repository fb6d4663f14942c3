// Package imaging decodes record images and resizes them for display.
package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, format, nil
}

// Resize stretches src to exactly size×size. Photos use Catmull-Rom; QR codes need
// nearest-neighbour so module edges stay sharp for scanners.
func Resize(src image.Image, size int, crisp bool) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	var scaler draw.Scaler = draw.CatmullRom
	if crisp {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// LoadResized is Load followed by Resize.
func LoadResized(path string, size int, crisp bool) (image.Image, error) {
	img, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Resize(img, size, crisp), nil
}
