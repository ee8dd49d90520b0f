package render

import (
	"image"
	"image/draw"

	"github.com/Alex-Citeroni/qr-code-generator/encoder"
)

// rasterize paints each module as a solid scale*scale block. No blending or
// anti-aliasing: modules are binary and must stay axis-aligned for scanners.
func rasterize(m *encoder.Matrix, oo *outputOptions) *image.NRGBA {
	side := m.Side()
	img := image.NewNRGBA(image.Rect(0, 0, side*oo.scale, side*oo.scale))

	draw.Draw(img, img.Bounds(), image.NewUniform(oo.lightFill()), image.Point{}, draw.Src)

	dark := image.NewUniform(oo.dark)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !m.Dark(x, y) {
				continue
			}
			block := image.Rect(x*oo.scale, y*oo.scale, (x+1)*oo.scale, (y+1)*oo.scale)
			draw.Draw(img, block, dark, image.Point{}, draw.Src)
		}
	}
	return img
}
