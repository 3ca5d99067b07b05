package riff

// cursor is a bounds-checked view into the parse buffer. off is the
// absolute position within the original buffer, so report lines always
// carry absolute offsets even deep inside nested chunks. All reads clamp
// to the view's end instead of panicking on short or corrupt input.
type cursor struct {
	buf []byte
	off int
}

func (c cursor) remaining() int {
	if c.off >= len(c.buf) {
		return 0
	}
	return len(c.buf) - c.off
}

// bytes returns up to n bytes at the cursor without advancing. The slice
// is shorter than n when the view ends first.
func (c cursor) bytes(n int) []byte {
	if n <= 0 || c.off >= len(c.buf) {
		return nil
	}
	end := c.off + n
	if end > len(c.buf) {
		end = len(c.buf)
	}
	return c.buf[c.off:end]
}

// skip advances the cursor by n bytes.
func (c cursor) skip(n int) cursor {
	c.off += n
	return c
}

// limit restricts the view to the next n bytes. Offsets stay absolute.
func (c cursor) limit(n int) cursor {
	if n < 0 {
		n = 0
	}
	end := c.off + n
	if end > len(c.buf) {
		end = len(c.buf)
	}
	c.buf = c.buf[:end]
	return c
}
