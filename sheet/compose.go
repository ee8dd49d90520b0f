package sheet

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const (
	_cropMarkLen    = 30
	_cropMarkStroke = 2
)

// Compose rasterizes every page of the document. codes holds the rendered
// bitmaps the layout was computed for, in input order; they are read, never
// mutated. Resizing works on the bitmap with nearest-neighbor sampling so the
// composer stays decoupled from QR semantics.
func Compose(doc *Document, codes []image.Image) ([]image.Image, error) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	pages := make([]image.Image, 0, len(doc.Pages))
	for _, p := range doc.Pages {
		canvas := imaging.New(doc.WidthPx, doc.HeightPx, white)

		for _, cell := range p.Cells {
			if cell.Code >= len(codes) {
				return nil, errors.Errorf("page %d references code %d, have %d", p.Number, cell.Code, len(codes))
			}
			fitted := fitCell(codes[cell.Code], cell.Size)

			// Center inside the square cell to keep spacing even when the
			// source bitmap is not square.
			x := cell.X + (cell.Size-fitted.Bounds().Dx())/2
			y := cell.Y + (cell.Size-fitted.Bounds().Dy())/2
			canvas = imaging.Overlay(canvas, fitted, image.Pt(x, y), 1.0)
		}

		var page image.Image = canvas
		if doc.Spec.CropMarks {
			page = drawCropMarks(canvas, doc.MarginPx)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// fitCell scales src to fit a size*size square, preserving aspect ratio.
// Nearest-neighbor keeps module edges hard; blurring them costs scannability.
func fitCell(src image.Image, size int) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == size && h == size {
		return imaging.Clone(src)
	}

	tw, th := size, size
	if w > h {
		th = size * h / w
	} else if h > w {
		tw = size * w / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return imaging.Resize(src, tw, th, imaging.NearestNeighbor)
}

// drawCropMarks strokes two short segments at each margin corner, pointing
// outward toward the page corner. Marks are clamped to the margin band and
// never cross into the content area.
func drawCropMarks(page image.Image, margin int) image.Image {
	bounds := page.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	length := _cropMarkLen
	if margin < length {
		length = margin
	}
	if length <= 0 {
		return page
	}

	dc := gg.NewContextForImage(page)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(_cropMarkStroke)

	m, l := float64(margin), float64(length)
	fw, fh := float64(w), float64(h)
	for _, corner := range [4][2]float64{{m, m}, {fw - m, m}, {m, fh - m}, {fw - m, fh - m}} {
		cx, cy := corner[0], corner[1]
		dx, dy := -l, -l
		if cx > fw/2 {
			dx = l
		}
		if cy > fh/2 {
			dy = l
		}
		dc.DrawLine(cx, cy, cx+dx, cy)
		dc.DrawLine(cx, cy, cx, cy+dy)
	}
	dc.Stroke()

	return dc.Image()
}
