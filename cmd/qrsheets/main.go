// Command qrsheets packs a directory of rendered QR code PNGs onto
// print-ready pages, writing a multipage PDF or one PNG per page.
package main

import (
	"image"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"

	"github.com/Alex-Citeroni/qr-code-generator/render/imgkit"
	"github.com/Alex-Citeroni/qr-code-generator/sheet"
)

var g = struct {
	inputDir  string
	out       string
	paper     string
	dpi       int
	cols      int
	rows      int
	marginMm  float64
	gutterMm  float64
	cropMarks bool
	pngPages  bool
}{
	inputDir: "output",
	out:      "output/qr_sheets.pdf",
	paper:    "A4",
	dpi:      300,
	cols:     4,
	rows:     5,
	marginMm: 8,
	gutterMm: 6,
}

func main() {
	log.SetFlags(0)

	getopt.FlagLong(&g.inputDir, "input-dir", 'i', "directory holding the QR code PNGs")
	getopt.FlagLong(&g.out, "out", 'o', "PDF path, or directory with --png-pages")
	getopt.FlagLong(&g.paper, "paper", 0, "paper preset: A4, A3, A5, LETTER")
	getopt.FlagLong(&g.dpi, "dpi", 0, "export resolution")
	getopt.FlagLong(&g.cols, "cols", 0, "columns per page")
	getopt.FlagLong(&g.rows, "rows", 0, "rows per page")
	getopt.FlagLong(&g.marginMm, "margin-mm", 0, "page margin (mm)")
	getopt.FlagLong(&g.gutterMm, "gutter-mm", 0, "space between cells (mm)")
	getopt.FlagLong(&g.cropMarks, "crop-marks", 0, "draw crop marks at the page corners")
	getopt.FlagLong(&g.pngPages, "png-pages", 0, "export PNG pages instead of a PDF")
	getopt.Parse()

	paper, err := sheet.PaperByName(g.paper)
	if err != nil {
		log.Fatal(err)
	}

	codes, err := loadCodes(g.inputDir)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := sheet.Layout(sheet.Spec{
		Paper:     paper,
		DPI:       g.dpi,
		Cols:      g.cols,
		Rows:      g.rows,
		MarginMm:  g.marginMm,
		GutterMm:  g.gutterMm,
		CropMarks: g.cropMarks,
	}, len(codes))
	if err != nil {
		log.Fatal(err)
	}

	pages, err := sheet.Compose(doc, codes)
	if err != nil {
		log.Fatal(err)
	}

	if g.pngPages {
		dir := strings.TrimSuffix(g.out, filepath.Ext(g.out))
		if err = sheet.ExportPNGPages(dir, pages); err != nil {
			log.Fatal(err)
		}
		log.Printf("packed %d codes onto %d page(s) in %s", len(codes), len(pages), dir)
		return
	}

	if err = sheet.ExportPDFFile(g.out, doc, pages); err != nil {
		log.Fatal(err)
	}
	log.Printf("packed %d codes onto %d page(s) in %s", len(codes), len(pages), g.out)
}

func loadCodes(dir string) ([]image.Image, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no PNG files found in %s", dir)
	}
	sort.Strings(paths)

	codes := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := imgkit.Read(p)
		if err != nil {
			return nil, err
		}
		codes = append(codes, img)
	}
	return codes, nil
}
