package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	svgo "github.com/ajstarks/svgo"

	"github.com/Alex-Citeroni/qr-code-generator/encoder"
)

// buildSVG emits one filled square per dark module. The vector form never
// embeds the logo raster; reserved, when set, is drawn as a plain rectangle
// marking the area the overlay claims.
func buildSVG(m *encoder.Matrix, oo *outputOptions, reserved *image.Rectangle) []byte {
	var buf bytes.Buffer
	canvas := svgo.New(&buf)

	side := m.Side() * oo.scale
	canvas.Startview(side, side, 0, 0, side, side)

	if !oo.lightTransparent {
		canvas.Rect(0, 0, side, side, fillStyle(oo.light))
	}

	dark := fillStyle(oo.dark)
	for y := 0; y < m.Side(); y++ {
		for x := 0; x < m.Side(); x++ {
			if m.Dark(x, y) {
				canvas.Rect(x*oo.scale, y*oo.scale, oo.scale, oo.scale, dark)
			}
		}
	}

	if reserved != nil {
		style := fillStyle(oo.light)
		if oo.lightTransparent {
			style = fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", hexColor(oo.dark))
		}
		canvas.Rect(reserved.Min.X, reserved.Min.Y, reserved.Dx(), reserved.Dy(), style)
	}

	canvas.End()
	return buf.Bytes()
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:%s", hexColor(c))
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
