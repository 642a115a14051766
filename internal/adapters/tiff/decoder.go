// Package tiff decodes every frame of a multi-page TIFF file.
//
// golang.org/x/image/tiff decodes only the first image directory of a file.
// The Decoder walks the IFD chain itself and hands the x/image decoder a
// view of the file per frame, so strip, tile, compression and photometric
// handling all stay with the library.
package tiff

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/draw"
	xtiff "golang.org/x/image/tiff"

	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// DefaultMaxFrames is the frame limit used when none is configured.
const DefaultMaxFrames = 4096

// Decoder implements ports.FrameDecoder for TIFF files.
type Decoder struct {
	maxFrames int
}

// NewDecoder creates a Decoder accepting at most maxFrames frames per file.
// A non-positive maxFrames uses DefaultMaxFrames.
func NewDecoder(maxFrames int) *Decoder {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	return &Decoder{maxFrames: maxFrames}
}

// Frames decodes the frames of the TIFF at path in order.
// Each frame is normalized to 8 bits per sample before it is passed on.
func (d *Decoder) Frames(ctx context.Context, path string, fn ports.FrameFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	return d.decode(ctx, f, info.Size(), fn)
}

func (d *Decoder) decode(ctx context.Context, r io.ReaderAt, size int64, fn ports.FrameFunc) error {
	h, err := readHeader(r)
	if err != nil {
		return err
	}
	offsets, err := ifdOffsets(r, size, h, d.maxFrames)
	if err != nil {
		return err
	}

	for i, off := range offsets {
		if err := ctx.Err(); err != nil {
			return err
		}
		view := io.NewSectionReader(newFrameView(r, h, off), 0, size)
		img, err := xtiff.Decode(view)
		if err != nil {
			return fmt.Errorf("decode frame %d: %w", i, err)
		}
		if err := fn(i, normalize(img)); err != nil {
			return err
		}
	}
	return nil
}

// normalize converts img to an 8-bit model the PDF writer can embed.
// Gray, paletted and opaque RGBA images pass through unchanged; 16-bit
// gray is reduced to 8 bits; everything else is composited onto white.
func normalize(img image.Image) image.Image {
	b := img.Bounds()
	switch m := img.(type) {
	case *image.Gray, *image.Paletted:
		return img
	case *image.RGBA:
		if m.Opaque() {
			return m
		}
	case *image.Gray16:
		dst := image.NewGray(b)
		draw.Draw(dst, b, m, b.Min, draw.Src)
		return dst
	}

	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
