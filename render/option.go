package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

const (
	_defaultScale     = 10
	_defaultAreaRatio = 0.25
	_defaultBorder    = 10

	_minScale = 1
	_maxScale = 40

	// Level H recovers up to 30% of damaged modules; an overlay may never
	// claim more than that.
	_maxAreaRatio = 0.30
)

type outputOptions struct {
	scale int

	dark             color.NRGBA
	light            color.NRGBA
	lightTransparent bool

	logo          image.Image
	logoAreaRatio float64
	logoBorder    int
}

func defaultOutputOptions() *outputOptions {
	return &outputOptions{
		scale:         _defaultScale,
		dark:          color.NRGBA{A: 0xff},
		light:         color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		logoAreaRatio: _defaultAreaRatio,
		logoBorder:    _defaultBorder,
	}
}

// lightFill returns the color used for light modules and erased areas,
// fully transparent in transparent-light mode.
func (oo *outputOptions) lightFill() color.NRGBA {
	if oo.lightTransparent {
		return color.NRGBA{}
	}
	return oo.light
}

// Option mutates the output options of a single render.
type Option interface {
	apply(oo *outputOptions)
}

// funcOption wraps a function that modifies outputOptions into an
// implementation of the Option interface.
type funcOption struct {
	f func(oo *outputOptions)
}

func (fo *funcOption) apply(oo *outputOptions) {
	fo.f(oo)
}

func newFuncOption(f func(oo *outputOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithScale sets the pixel edge of each module (1-40).
func WithScale(scale int) Option {
	return newFuncOption(func(oo *outputOptions) {
		oo.scale = scale
	})
}

// WithDarkColor sets the module color.
func WithDarkColor(c color.Color) Option {
	return newFuncOption(func(oo *outputOptions) {
		if c == nil {
			return
		}
		oo.dark = toNRGBA(c)
	})
}

// WithDarkColorRGBHex sets the module color from a hex string like "#1f6f3a".
func WithDarkColorRGBHex(hex string) Option {
	return newFuncOption(func(oo *outputOptions) {
		c, err := ParseHexColor(hex)
		if err != nil {
			return
		}
		oo.dark = c
	})
}

// WithLightColor sets the background color.
func WithLightColor(c color.Color) Option {
	return newFuncOption(func(oo *outputOptions) {
		if c == nil {
			return
		}
		oo.light = toNRGBA(c)
		oo.lightTransparent = false
	})
}

// WithLightColorRGBHex sets the background color from a hex string.
func WithLightColorRGBHex(hex string) Option {
	return newFuncOption(func(oo *outputOptions) {
		c, err := ParseHexColor(hex)
		if err != nil {
			return
		}
		oo.light = c
		oo.lightTransparent = false
	})
}

// WithTransparentLight renders light modules fully transparent. Raster output
// only; the SVG keeps an unfilled background.
func WithTransparentLight() Option {
	return newFuncOption(func(oo *outputOptions) {
		oo.lightTransparent = true
	})
}

// WithLogo overlays img at the center of the code.
func WithLogo(img image.Image) Option {
	return newFuncOption(func(oo *outputOptions) {
		if img == nil {
			return
		}
		oo.logo = img
	})
}

// WithLogoAreaRatio bounds the fraction of the code's area the overlay may
// claim. Values above 0.30 make Render fail with ErrOverlayTooLarge.
func WithLogoAreaRatio(ratio float64) Option {
	return newFuncOption(func(oo *outputOptions) {
		oo.logoAreaRatio = ratio
	})
}

// WithLogoBorderWidth sets the quiet-zone border drawn beneath the logo, in
// pixels. Zero disables the border and requires an alpha-capable logo.
func WithLogoBorderWidth(width int) Option {
	return newFuncOption(func(oo *outputOptions) {
		if width < 0 {
			width = 0
		}
		oo.logoBorder = width
	})
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ParseHexColor resolves "rgb" or "rrggbb" hex strings, with or without a
// leading '#', into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.NRGBA{}, errors.Wrapf(ErrInvalidConfig, "hex color %q", hex)
	}

	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := unhex(s[i*2])
		lo, ok2 := unhex(s[i*2+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, errors.Wrapf(ErrInvalidConfig, "hex color %q", hex)
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
}

func unhex(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
