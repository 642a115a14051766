package domain

// GroupFailure records why a document group could not be rendered.
type GroupFailure struct {
	DocumentID string
	Err        error
}

// Report is the aggregate outcome of one conversion run.
type Report struct {
	// Discovered is the number of TIFF files found in the source directory
	Discovered int

	// Unrecognized lists filenames that did not follow the naming scheme
	Unrecognized []string

	// Groups is the number of document groups formed
	Groups int

	// Pages is the number of PDF pages written across all created documents
	Pages int

	// Created lists the output PDF paths written, in group order
	Created []string

	// Planned lists the output PDF paths a dry run would have written
	Planned []string

	// Failed lists groups that could not be rendered
	Failed []GroupFailure
}

// OK returns true if no group failed.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}
