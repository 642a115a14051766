// Package tifftest builds small TIFF files for tests.
//
// golang.org/x/image/tiff only writes single-image files, so multi-page
// fixtures are assembled here: uncompressed 8-bit grayscale, one strip per
// frame, IFDs chained in order.
package tifftest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"testing"
)

// Tag numbers and field types used in the fixtures.
const (
	tagImageWidth      = 256
	tagImageLength     = 257
	tagBitsPerSample   = 258
	tagCompression     = 259
	tagPhotometric     = 262
	tagStripOffsets    = 273
	tagSamplesPerPixel = 277
	tagRowsPerStrip    = 278
	tagStripByteCounts = 279

	typeShort = 3
	typeLong  = 4

	numEntries = 9
	ifdSize    = 2 + numEntries*12 + 4
)

// Encode returns a TIFF file containing frames in order.
func Encode(order binary.ByteOrder, frames ...*image.Gray) []byte {
	var buf bytes.Buffer
	if order == binary.BigEndian {
		buf.WriteString("MM")
	} else {
		buf.WriteString("II")
	}
	put16(&buf, order, 42)

	// Layout: header, then for every frame its pixel strip followed by its IFD.
	offset := uint32(8)
	stripOffsets := make([]uint32, len(frames))
	ifdOffsets := make([]uint32, len(frames))
	for i, f := range frames {
		b := f.Bounds()
		stripOffsets[i] = offset
		offset += uint32(b.Dx() * b.Dy())
		if offset%2 == 1 {
			offset++
		}
		ifdOffsets[i] = offset
		offset += ifdSize
	}

	first := uint32(0)
	if len(frames) > 0 {
		first = ifdOffsets[0]
	}
	put32(&buf, order, first)

	for i, f := range frames {
		b := f.Bounds()
		w, h := b.Dx(), b.Dy()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			buf.Write(f.Pix[f.PixOffset(b.Min.X, y) : f.PixOffset(b.Min.X, y)+w])
		}
		for uint32(buf.Len()) < ifdOffsets[i] {
			buf.WriteByte(0)
		}

		put16(&buf, order, numEntries)
		entry(&buf, order, tagImageWidth, typeLong, uint32(w))
		entry(&buf, order, tagImageLength, typeLong, uint32(h))
		entry(&buf, order, tagBitsPerSample, typeShort, 8)
		entry(&buf, order, tagCompression, typeShort, 1)
		entry(&buf, order, tagPhotometric, typeShort, 1)
		entry(&buf, order, tagStripOffsets, typeLong, stripOffsets[i])
		entry(&buf, order, tagSamplesPerPixel, typeShort, 1)
		entry(&buf, order, tagRowsPerStrip, typeLong, uint32(h))
		entry(&buf, order, tagStripByteCounts, typeLong, uint32(w*h))

		next := uint32(0)
		if i+1 < len(frames) {
			next = ifdOffsets[i+1]
		}
		put32(&buf, order, next)
	}
	return buf.Bytes()
}

// Frame returns a w x h grayscale image filled with shade.
func Frame(w, h int, shade uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = shade
	}
	img.SetGray(0, 0, color.Gray{Y: 255 - shade})
	return img
}

// Write encodes frames little-endian into path.
func Write(t testing.TB, path string, frames ...*image.Gray) {
	t.Helper()
	if err := os.WriteFile(path, Encode(binary.LittleEndian, frames...), 0o644); err != nil {
		t.Fatalf("write TIFF fixture %s: %v", path, err)
	}
}

func entry(buf *bytes.Buffer, order binary.ByteOrder, tag, typ uint16, value uint32) {
	put16(buf, order, tag)
	put16(buf, order, typ)
	put32(buf, order, 1)
	if typ == typeShort {
		// SHORT values are left-justified in the 4-byte value field.
		put16(buf, order, uint16(value))
		put16(buf, order, 0)
		return
	}
	put32(buf, order, value)
}

func put16(buf *bytes.Buffer, order binary.ByteOrder, v uint16) {
	var b [2]byte
	order.PutUint16(b[:], v)
	buf.Write(b[:])
}

func put32(buf *bytes.Buffer, order binary.ByteOrder, v uint32) {
	var b [4]byte
	order.PutUint32(b[:], v)
	buf.Write(b[:])
}
