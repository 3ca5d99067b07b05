package riff

import (
	"bufio"
	"io"

	"github.com/ossrs/go-oryx-lib/errors"
)

var (
	// ErrNotRiff reports a buffer that does not start with a RIFF or
	// RIFX marker. No output is produced.
	ErrNotRiff = errors.New("not a RIFF/RIFX container")

	// ErrTruncated reports a chunk whose declared size runs past the end
	// of the buffer. The report rendered up to that point is preserved;
	// only the damaged subtree is abandoned.
	ErrTruncated = errors.New("truncated chunk")
)

// Dump renders the chunk tree of a single RIFF/RIFX container as an
// offset-annotated, line-oriented report on w. The byte order is fixed
// by the leading marker and used for every multi-byte field. Malformed
// input never causes an out-of-bounds read: boundaries are clamped and a
// subtree whose declared size overruns the buffer is reported via
// ErrTruncated after the partial report has been written.
func Dump(w io.Writer, buf []byte) error {
	order, ok := DetectOrder(buf)
	if !ok {
		return ErrNotRiff
	}

	bw := bufio.NewWriter(w)
	d := &dumper{w: bw, order: order}
	d.siblings(cursor{buf: buf})
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "flush report")
	}
	if d.truncated {
		return ErrTruncated
	}
	return nil
}

type dumper struct {
	w         *bufio.Writer
	order     ByteOrder
	truncated bool
}

// siblings walks a chain of chunks starting at c until the region runs
// out of header bytes, a container chunk terminates the chain, or a
// truncated chunk forces a stop. Each header is re-read from the buffer
// through the cursor; nothing is materialized up front.
func (d *dumper) siblings(c cursor) {
	for {
		if c.remaining() < headerLen {
			return
		}
		hdr := c.bytes(headerLen)
		fcc := hdr[:fourCCLen]
		size := int(d.order.Uint32(hdr[fourCCLen:]))

		d.printf("\n")
		d.fourCCLine("Chunk ID", fcc)
		d.u32Line("Size", uint32(size))

		body := c.skip(headerLen)
		switch string(fcc) {
		case markerLittle, markerBig:
			// A RIFF/RIFX chunk is always the outermost container of
			// its region; nothing follows it.
			d.container(fcc, size, body)
			return
		case "LIST":
			d.list(fcc, size, body)
		default:
			if !d.leaf(fcc, size, body) {
				return
			}
		}

		// A declared size below the smallest meaningful payload ends
		// the chain; whatever follows is padding, not more chunks.
		if size < 2 {
			return
		}

		// Odd-sized chunks are followed by one pad byte.
		adv := headerLen + size
		if size%2 == 1 {
			adv++
		}
		c = c.skip(adv)
	}
}

// container renders a RIFF/RIFX chunk: form type, children sized by the
// declared size, and a raw dump of any outer bytes past the declared
// container end.
func (d *dumper) container(fcc []byte, size int, body cursor) {
	d.fourCCLine("RIFF Type", body.bytes(fourCCLen))

	children := body.skip(fourCCLen)
	n := size - fourCCLen
	if n > children.remaining() {
		d.truncated = true
		n = children.remaining()
	}
	d.siblings(children.limit(n))
	d.endLine(fcc)

	if tail := body.skip(size); tail.remaining() > 0 {
		d.hexDump(tail.off, tail.bytes(tail.remaining()))
	}
}

// list renders a LIST chunk: form type plus child chunks occupying the
// declared size minus the form type.
func (d *dumper) list(fcc []byte, size int, body cursor) {
	d.fourCCLine("Form Type", body.bytes(fourCCLen))

	children := body.skip(fourCCLen)
	n := size - fourCCLen
	if n > children.remaining() {
		d.truncated = true
		n = children.remaining()
	}
	d.siblings(children.limit(n))
	d.endLine(fcc)
}

// leaf renders any non-container chunk through its field renderer, or as
// a raw dump when the type is unknown. It returns false when the
// declared size overruns the buffer: the remainder is dumped raw and the
// sibling chain stops there.
func (d *dumper) leaf(fcc []byte, size int, body cursor) bool {
	if size > body.remaining() {
		d.hexDump(body.off, body.bytes(body.remaining()))
		d.truncated = true
		return false
	}
	payload := body.bytes(size)

	switch string(fcc) {
	case "labl", "note":
		d.renderLabel(body.off, payload)
	case "cue ":
		d.renderCue(body.off, payload)
	case "fmt ":
		d.renderFmt(body.off, payload)
	default:
		d.hexDump(body.off, payload)
	}
	d.endLine(fcc)
	return true
}
