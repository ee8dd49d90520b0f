// Package imgkit carries the small image helpers shared by the renderer and
// the sheet composer.
package imgkit

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Read decodes an image file. PNG and JPEG are registered.
func Read(filename string) (image.Image, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	return img, err
}

// Save writes img to filename as PNG.
func Save(img image.Image, filename string) error {
	fd, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fd.Close()

	return png.Encode(fd, img)
}

// Scale resizes src into rect using the given scaler, ApproxBiLinear when nil.
// Use draw.CatmullRom where quality matters (logo artwork).
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) *image.NRGBA {
	if scale == nil {
		scale = draw.ApproxBiLinear
	}

	dst := image.NewNRGBA(rect)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}

// HasAlpha reports whether the image type carries an alpha channel. Paletted
// images count only when the palette holds a non-opaque entry.
func HasAlpha(img image.Image) bool {
	switch v := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.Alpha, *image.Alpha16:
		return true
	case *image.Paletted:
		for _, c := range v.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}
