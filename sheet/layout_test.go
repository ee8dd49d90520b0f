package sheet_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-Citeroni/qr-code-generator/sheet"
)

func a4Spec() sheet.Spec {
	return sheet.Spec{
		Paper:    sheet.A4,
		DPI:      300,
		Cols:     4,
		Rows:     5,
		MarginMm: 8,
		GutterMm: 6,
	}
}

func TestMmToPixels(t *testing.T) {
	// 8mm at 300dpi is 94.488 pixels; rounding stays within one pixel.
	assert.InDelta(t, 94.49, float64(sheet.MmToPixels(8, 300)), 1)
	assert.Equal(t, 300, sheet.MmToPixels(25.4, 300))
	assert.Equal(t, 0, sheet.MmToPixels(0, 300))
}

func TestPaperByName(t *testing.T) {
	for _, name := range []string{"A4", "a4", " letter "} {
		p, err := sheet.PaperByName(name)
		require.NoError(t, err, "name %q", name)
		assert.NotZero(t, p.WidthMm)
	}

	letter, err := sheet.PaperByName("LETTER")
	require.NoError(t, err)
	assert.Equal(t, 215.9, letter.WidthMm)
	assert.Equal(t, 279.4, letter.HeightMm)

	_, err = sheet.PaperByName("B5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sheet.ErrInvalidConfig))
}

func TestLayout_pageDistribution(t *testing.T) {
	tests := []struct {
		n         int
		wantPages int
		wantLast  int
	}{
		{n: 1, wantPages: 1, wantLast: 1},
		{n: 20, wantPages: 1, wantLast: 20},
		{n: 21, wantPages: 2, wantLast: 1},
		{n: 23, wantPages: 2, wantLast: 3},
		{n: 40, wantPages: 2, wantLast: 20},
	}

	for _, tt := range tests {
		doc, err := sheet.Layout(a4Spec(), tt.n)
		require.NoError(t, err, "n=%d", tt.n)
		require.Len(t, doc.Pages, tt.wantPages, "n=%d", tt.n)

		for _, p := range doc.Pages[:len(doc.Pages)-1] {
			assert.Len(t, p.Cells, doc.PerPage(), "n=%d page=%d", tt.n, p.Number)
		}
		assert.Len(t, doc.Pages[len(doc.Pages)-1].Cells, tt.wantLast, "n=%d", tt.n)
	}
}

func TestLayout_geometry(t *testing.T) {
	doc, err := sheet.Layout(a4Spec(), 23)
	require.NoError(t, err)

	assert.Equal(t, 2480, doc.WidthPx)  // 210mm at 300dpi
	assert.Equal(t, 3508, doc.HeightPx) // 297mm at 300dpi
	assert.Greater(t, doc.CellSize, 0)

	// Row-major placement in input order; cells never leave the margins.
	seen := 0
	for _, p := range doc.Pages {
		for i, c := range p.Cells {
			assert.Equal(t, seen, c.Code)
			seen++

			assert.GreaterOrEqual(t, c.X, doc.MarginPx)
			assert.GreaterOrEqual(t, c.Y, doc.MarginPx)
			assert.LessOrEqual(t, c.X+c.Size, doc.WidthPx-doc.MarginPx)
			assert.LessOrEqual(t, c.Y+c.Size, doc.HeightPx-doc.MarginPx)

			if i > 0 && i%doc.Spec.Cols != 0 {
				prev := p.Cells[i-1]
				assert.Equal(t, prev.X+prev.Size+doc.GutterPx, c.X, "gutter between columns")
				assert.Equal(t, prev.Y, c.Y, "same row")
			}
		}
	}
	assert.Equal(t, 23, seen)
}

func TestLayout_infeasible(t *testing.T) {
	spec := a4Spec()
	spec.MarginMm = 110 // two margins eat the full 210mm width

	_, err := sheet.Layout(spec, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sheet.ErrLayoutInfeasible))
}

func TestLayout_invalidSpec(t *testing.T) {
	for _, mutate := range []func(*sheet.Spec){
		func(s *sheet.Spec) { s.DPI = 0 },
		func(s *sheet.Spec) { s.Cols = 0 },
		func(s *sheet.Spec) { s.Rows = -1 },
		func(s *sheet.Spec) { s.MarginMm = -1 },
		func(s *sheet.Spec) { s.GutterMm = -0.5 },
	} {
		spec := a4Spec()
		mutate(&spec)

		_, err := sheet.Layout(spec, 4)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sheet.ErrInvalidConfig))
	}
}

func TestLayout_zeroCodes(t *testing.T) {
	doc, err := sheet.Layout(a4Spec(), 0)
	require.NoError(t, err)
	assert.Empty(t, doc.Pages)
}
