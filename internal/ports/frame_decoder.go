package ports

import (
	"context"
	"image"
)

// FrameFunc receives one decoded frame. index is zero-based in file order.
// Returning an error stops decoding and is returned by Frames.
type FrameFunc func(index int, img image.Image) error

// FrameDecoder decodes the frames of a multi-page image container.
type FrameDecoder interface {
	// Frames decodes every frame of the file at path in order and passes
	// each one to fn. Only one frame is held in memory at a time.
	Frames(ctx context.Context, path string, fn FrameFunc) error
}
