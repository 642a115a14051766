package tiff

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bft-labs/tiff2pdf/internal/domain"
)

const headerSize = 8

// header is the parsed 8-byte TIFF file header.
type header struct {
	order binary.ByteOrder
	raw   [headerSize]byte
}

// readHeader parses the classic TIFF header. BigTIFF (magic 43) is not
// supported by the decoder and is reported as ErrNotTIFF.
func readHeader(r io.ReaderAt) (header, error) {
	var h header
	if _, err := r.ReadAt(h.raw[:], 0); err != nil {
		return h, fmt.Errorf("%w: read header: %v", domain.ErrNotTIFF, err)
	}
	switch string(h.raw[0:2]) {
	case "II":
		h.order = binary.LittleEndian
	case "MM":
		h.order = binary.BigEndian
	default:
		return h, fmt.Errorf("%w: bad byte order mark %q", domain.ErrNotTIFF, h.raw[0:2])
	}
	if magic := h.order.Uint16(h.raw[2:4]); magic != 42 {
		return h, fmt.Errorf("%w: unsupported magic %d", domain.ErrNotTIFF, magic)
	}
	return h, nil
}

// ifdOffsets walks the IFD chain and returns the offset of every image
// directory in file order. A chain that loops or points outside the file
// is an error; at most maxFrames directories are accepted.
func ifdOffsets(r io.ReaderAt, size int64, h header, maxFrames int) ([]uint32, error) {
	var offsets []uint32
	seen := make(map[uint32]bool)

	off := h.order.Uint32(h.raw[4:8])
	for off != 0 {
		if seen[off] {
			return nil, fmt.Errorf("IFD chain loops at offset %d", off)
		}
		seen[off] = true
		if len(offsets) == maxFrames {
			return nil, fmt.Errorf("%w: more than %d", domain.ErrTooManyFrames, maxFrames)
		}
		if int64(off) < headerSize || int64(off)+2 > size {
			return nil, fmt.Errorf("IFD offset %d outside file of %d bytes", off, size)
		}

		var buf [4]byte
		if _, err := r.ReadAt(buf[:2], int64(off)); err != nil {
			return nil, fmt.Errorf("read IFD entry count at %d: %w", off, err)
		}
		n := int64(h.order.Uint16(buf[:2]))
		nextPos := int64(off) + 2 + 12*n
		if nextPos+4 > size {
			return nil, fmt.Errorf("IFD at %d truncated", off)
		}
		if _, err := r.ReadAt(buf[:], nextPos); err != nil {
			return nil, fmt.Errorf("read next IFD offset at %d: %w", nextPos, err)
		}

		offsets = append(offsets, off)
		off = h.order.Uint32(buf[:])
	}

	if len(offsets) == 0 {
		return nil, domain.ErrNoFrames
	}
	return offsets, nil
}

// frameView presents a TIFF file whose header points at a chosen IFD.
// All TIFF offsets are absolute, so rewriting the first-IFD pointer is
// enough for a single-image decoder to read any frame of the file.
type frameView struct {
	r      io.ReaderAt
	header [headerSize]byte
}

func newFrameView(r io.ReaderAt, h header, ifd uint32) *frameView {
	v := &frameView{r: r, header: h.raw}
	h.order.PutUint32(v.header[4:8], ifd)
	return v
}

// ReadAt reads from the underlying file and overlays the rewritten header.
func (v *frameView) ReadAt(p []byte, off int64) (int, error) {
	n, err := v.r.ReadAt(p, off)
	for i := off; i < headerSize && i-off < int64(n); i++ {
		p[i-off] = v.header[i]
	}
	return n, err
}
