// Package pdf implements the PDF canvas port with github.com/go-pdf/fpdf.
package pdf

import (
	"github.com/go-pdf/fpdf"

	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// defaultPage is the canvas default (US Letter in points). Every page
// overrides it with its frame's own size.
var defaultPage = fpdf.SizeType{Wd: 612, Ht: 792}

// CanvasFactory creates fpdf-backed canvases.
type CanvasFactory struct{}

// NewCanvasFactory creates a CanvasFactory.
func NewCanvasFactory() *CanvasFactory {
	return &CanvasFactory{}
}

// NewCanvas starts an empty document using point units.
func (CanvasFactory) NewCanvas() ports.Canvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           defaultPage,
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	return &Canvas{doc: doc}
}

// Canvas is a single fpdf document.
type Canvas struct {
	doc *fpdf.Fpdf
}

// AddPage starts a page of exactly width x height points.
func (c *Canvas) AddPage(width, height float64) {
	c.doc.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
}

// DrawImage places the PNG at path over the page area from the top-left
// corner. fpdf caches images by path, so callers must not reuse a path for
// different content within one canvas.
func (c *Canvas) DrawImage(path string, width, height float64) error {
	c.doc.ImageOptions(path, 0, 0, width, height, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return c.doc.Error()
}

// PageCount returns the number of pages added so far.
func (c *Canvas) PageCount() int {
	return c.doc.PageCount()
}

// Save writes the document to path and closes it.
func (c *Canvas) Save(path string) error {
	return c.doc.OutputFileAndClose(path)
}
