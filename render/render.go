// Package render turns a module matrix into raster and vector artwork,
// optionally compositing a centered logo without spending the symbol's
// error-correction budget.
package render

import (
	"image"

	"github.com/pkg/errors"

	"github.com/Alex-Citeroni/qr-code-generator/encoder"
)

var (
	// ErrInvalidConfig reports an out-of-range scale or a malformed color.
	ErrInvalidConfig = errors.New("invalid render configuration")

	// ErrOverlayTooLarge reports a logo area ratio above the level-H
	// recovery ceiling of 0.30. The ratio is never silently clamped.
	ErrOverlayTooLarge = errors.New("logo overlay exceeds the error-correction budget")

	// ErrUnsupportedImage reports a logo without an alpha channel combined
	// with borderless blending.
	ErrUnsupportedImage = errors.New("logo image carries no alpha channel")
)

// RenderedCode is one fully rendered QR code. It is never mutated after
// Render returns it; the layout engine copies when it needs to resize.
type RenderedCode struct {
	// Image is the raster form, (Side*scale) pixels square.
	Image *image.NRGBA

	// SVG is the equivalent vector form. The logo, if any, appears only as
	// its reserved bounding rectangle.
	SVG []byte

	// SidePixels is the pixel edge of Image.
	SidePixels int
}

// Render rasterizes the matrix and composites the configured logo. The
// result is a pure function of matrix and options.
func Render(m *encoder.Matrix, opts ...Option) (*RenderedCode, error) {
	oo := defaultOutputOptions()
	for _, opt := range opts {
		opt.apply(oo)
	}

	if oo.scale < _minScale || oo.scale > _maxScale {
		return nil, errors.Wrapf(ErrInvalidConfig, "scale %d outside [%d, %d]", oo.scale, _minScale, _maxScale)
	}
	if oo.dark.A != 0xff {
		return nil, errors.Wrap(ErrInvalidConfig, "dark color must be opaque")
	}

	img := rasterize(m, oo)

	var reserved *image.Rectangle
	if oo.logo != nil {
		rect, err := compositeLogo(img, oo)
		if err != nil {
			return nil, err
		}
		reserved = &rect
	}

	return &RenderedCode{
		Image:      img,
		SVG:        buildSVG(m, oo, reserved),
		SidePixels: m.Side() * oo.scale,
	}, nil
}
