package ports

// CanvasFactory creates one Canvas per output document.
type CanvasFactory interface {
	NewCanvas() Canvas
}

// Canvas accumulates pages of a single PDF document.
// Dimensions are in PDF points.
type Canvas interface {
	// AddPage starts a new page of the given size.
	AddPage(width, height float64)

	// DrawImage draws the image stored at path onto the current page at the
	// origin, scaled to width x height.
	DrawImage(path string, width, height float64) error

	// PageCount returns the number of pages added so far.
	PageCount() int

	// Save finalizes the document and writes it to path.
	// The canvas must not be used afterwards.
	Save(path string) error
}
