package sheet

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig reports an out-of-range layout parameter.
	ErrInvalidConfig = errors.New("invalid sheet configuration")

	// ErrLayoutInfeasible reports a grid whose margins and gutters leave no
	// room for the cells on the requested paper.
	ErrLayoutInfeasible = errors.New("grid does not fit the page")
)

// Spec describes how codes are packed onto pages.
type Spec struct {
	Paper     Paper
	DPI       int
	Cols      int
	Rows      int
	MarginMm  float64
	GutterMm  float64
	CropMarks bool
}

// Cell is one placed code: Code indexes the input batch, X/Y is the cell
// origin in page pixels, Size its square edge.
type Cell struct {
	Code int
	X    int
	Y    int
	Size int
}

// Page holds the cells placed on one physical page, row-major in input
// order. The last page of a document may hold fewer than Cols*Rows cells;
// the grid geometry stays the same, unused cells are simply empty.
type Page struct {
	Number int // 1-indexed
	Cells  []Cell
}

// Document is the computed geometry for a whole batch. Built once, then
// serialized; never mutated after serialization begins.
type Document struct {
	Spec Spec

	WidthPx  int
	HeightPx int
	MarginPx int
	GutterPx int
	CellSize int

	Pages []Page
}

// PerPage returns the full grid capacity of one page.
func (d *Document) PerPage() int { return d.Spec.Cols * d.Spec.Rows }

// Layout computes page geometry and distributes n codes across pages at
// Cols*Rows per page.
func Layout(spec Spec, n int) (*Document, error) {
	switch {
	case spec.DPI < 1:
		return nil, errors.Wrapf(ErrInvalidConfig, "dpi %d", spec.DPI)
	case spec.Cols < 1 || spec.Rows < 1:
		return nil, errors.Wrapf(ErrInvalidConfig, "grid %dx%d", spec.Cols, spec.Rows)
	case spec.MarginMm < 0 || spec.GutterMm < 0:
		return nil, errors.Wrapf(ErrInvalidConfig, "margin %.2fmm, gutter %.2fmm", spec.MarginMm, spec.GutterMm)
	}

	doc := &Document{
		Spec:     spec,
		WidthPx:  MmToPixels(spec.Paper.WidthMm, spec.DPI),
		HeightPx: MmToPixels(spec.Paper.HeightMm, spec.DPI),
		MarginPx: MmToPixels(spec.MarginMm, spec.DPI),
		GutterPx: MmToPixels(spec.GutterMm, spec.DPI),
	}

	usableW := doc.WidthPx - 2*doc.MarginPx - (spec.Cols-1)*doc.GutterPx
	usableH := doc.HeightPx - 2*doc.MarginPx - (spec.Rows-1)*doc.GutterPx
	cellW := usableW / spec.Cols
	cellH := usableH / spec.Rows

	// Codes are square, so cells are too.
	doc.CellSize = cellW
	if cellH < cellW {
		doc.CellSize = cellH
	}
	if doc.CellSize <= 0 {
		return nil, errors.Wrapf(ErrLayoutInfeasible,
			"%s at %d dpi, %dx%d grid, margin %.2fmm, gutter %.2fmm leaves cell size %d",
			spec.Paper.Name, spec.DPI, spec.Cols, spec.Rows, spec.MarginMm, spec.GutterMm, doc.CellSize)
	}

	perPage := spec.Cols * spec.Rows
	for first := 0; first < n; first += perPage {
		page := Page{Number: len(doc.Pages) + 1}
		for i := first; i < n && i < first+perPage; i++ {
			slot := i - first
			r, c := slot/spec.Cols, slot%spec.Cols
			page.Cells = append(page.Cells, Cell{
				Code: i,
				X:    doc.MarginPx + c*(doc.CellSize+doc.GutterPx),
				Y:    doc.MarginPx + r*(doc.CellSize+doc.GutterPx),
				Size: doc.CellSize,
			})
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}
