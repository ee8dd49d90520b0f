package sheet

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/signintech/gopdf"

	"github.com/Alex-Citeroni/qr-code-generator/render/imgkit"
)

// ExportPDF writes the composed pages as one multipage PDF. Output is
// byte-for-byte deterministic for identical input: no timestamps or other
// run-dependent metadata are embedded.
func ExportPDF(w io.Writer, doc *Document, pages []image.Image) error {
	widthPt := pixelsToPoints(doc.WidthPx, doc.Spec.DPI)
	heightPt := pixelsToPoints(doc.HeightPx, doc.Spec.DPI)

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: widthPt, H: heightPt},
		Unit:     gopdf.UnitPT,
	})

	for i, page := range pages {
		pdf.AddPage()
		if err := pdf.ImageFrom(page, 0, 0, &gopdf.Rect{W: widthPt, H: heightPt}); err != nil {
			return errors.Wrapf(err, "embed page %d", i+1)
		}
	}

	_, err := pdf.WriteTo(w)
	return errors.Wrap(err, "write pdf")
}

// ExportPDFFile writes the PDF to path, creating parent directories.
func ExportPDFFile(path string, doc *Document, pages []image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	return ExportPDF(fd, doc, pages)
}

// ExportPNGPages writes one raster file per page into dir, named
// sheet_01.png, sheet_02.png, ... in page order.
func ExportPNGPages(dir string, pages []image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, page := range pages {
		name := filepath.Join(dir, fmt.Sprintf("sheet_%02d.png", i+1))
		if err := imgkit.Save(page, name); err != nil {
			return errors.Wrapf(err, "write page %d", i+1)
		}
	}
	return nil
}

func pixelsToPoints(px, dpi int) float64 {
	return float64(px) * 72.0 / float64(dpi)
}
