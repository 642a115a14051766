package ports

import "image"

// Stager opens scoped staging areas for intermediate rasters.
type Stager interface {
	// Open creates a new, empty staging area. prefix is used to name it.
	Open(prefix string) (StagingArea, error)
}

// StagingArea is a temporary directory owned by one document group.
// Close removes it together with everything staged in it.
type StagingArea interface {
	// Put writes img losslessly under name and returns its path.
	Put(name string, img image.Image) (string, error)

	// Close removes the staging area. It is safe to call more than once.
	Close() error
}
