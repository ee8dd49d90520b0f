// Package sheet packs rendered QR codes onto fixed-size physical pages and
// serializes them as a multipage PDF or per-page PNG rasters.
package sheet

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Paper is a named physical page size in millimeters.
type Paper struct {
	Name     string
	WidthMm  float64
	HeightMm float64
}

var (
	A4     = Paper{Name: "A4", WidthMm: 210, HeightMm: 297}
	A3     = Paper{Name: "A3", WidthMm: 297, HeightMm: 420}
	A5     = Paper{Name: "A5", WidthMm: 148, HeightMm: 210}
	Letter = Paper{Name: "LETTER", WidthMm: 215.9, HeightMm: 279.4}
)

var papers = map[string]Paper{
	A4.Name:     A4,
	A3.Name:     A3,
	A5.Name:     A5,
	Letter.Name: Letter,
}

// PaperByName resolves a preset name, case-insensitively.
func PaperByName(name string) (Paper, error) {
	p, ok := papers[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Paper{}, errors.Wrapf(ErrInvalidConfig, "unknown paper preset %q", name)
	}
	return p, nil
}

// MmToPixels converts a physical length to pixels at the given resolution,
// rounded to the nearest pixel.
func MmToPixels(mm float64, dpi int) int {
	return int(math.Round(mm / 25.4 * float64(dpi)))
}
