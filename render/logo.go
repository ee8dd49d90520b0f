package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/Alex-Citeroni/qr-code-generator/render/imgkit"
)

// compositeLogo blends the configured logo onto the center of dst and
// returns the rectangle the overlay claims (border included). dst is the
// freshly rasterized code; its side bounds the overlay footprint.
func compositeLogo(dst *image.NRGBA, oo *outputOptions) (image.Rectangle, error) {
	ratio := oo.logoAreaRatio
	if ratio <= 0 || math.IsNaN(ratio) {
		return image.Rectangle{}, errors.Wrapf(ErrInvalidConfig, "logo area ratio %v", ratio)
	}
	if ratio > _maxAreaRatio {
		return image.Rectangle{}, errors.Wrapf(ErrOverlayTooLarge, "area ratio %.3f above hard cap %.2f", ratio, _maxAreaRatio)
	}
	if oo.logoBorder == 0 && !imgkit.HasAlpha(oo.logo) {
		return image.Rectangle{}, errors.Wrap(ErrUnsupportedImage, "borderless blending needs alpha")
	}

	side := dst.Bounds().Dx()
	target := int(math.Sqrt(ratio) * float64(side))
	logo := fitSquare(oo.logo, target)

	w, h := logo.Bounds().Dx(), logo.Bounds().Dy()
	pos := image.Pt((side-w)/2, (side-h)/2)
	logoRect := image.Rectangle{Min: pos, Max: pos.Add(image.Pt(w, h))}
	reserved := logoRect

	if oo.logoBorder > 0 {
		// Quiet zone between modules and logo edges: erase the area so no
		// module shows through, whatever the logo's alpha.
		reserved = logoRect.Inset(-oo.logoBorder)
		draw.Draw(dst, reserved, image.NewUniform(oo.lightFill()), image.Point{}, draw.Src)
	}

	draw.Draw(dst, logoRect, logo, image.Point{}, draw.Over)
	return reserved, nil
}

// fitSquare resizes src to fit a target*target square, preserving aspect
// ratio. Upscaling is allowed: the overlay's footprint, not its sharpness,
// is the safety-critical property.
func fitSquare(src image.Image, target int) *image.NRGBA {
	if target < 1 {
		target = 1
	}
	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())

	var w, h int
	if sw > sh {
		w = target
		h = int(float64(target) * sh / sw)
	} else {
		h = target
		w = int(float64(target) * sw / sh)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return imgkit.Scale(src, image.Rect(0, 0, w, h), xdraw.CatmullRom)
}
