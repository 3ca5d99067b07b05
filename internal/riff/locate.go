package riff

// Segment describes one container stream located inside a larger blob:
// where it starts, how many bytes belong to it, and which byte order its
// marker announced.
type Segment struct {
	Start  int
	Length int
	Order  ByteOrder
}

// ScanOptions configures how a Scanner resolves segment lengths.
type ScanOptions struct {
	// GuessLength derives each segment's length from the gap to the next
	// marker occurrence instead of trusting the declared size field.
	// Robust against corrupt headers, but a marker byte sequence inside a
	// payload splits the stream early. When false the declared size plus
	// the 8-byte header is used, clamped to the end of the buffer.
	GuessLength bool
}

// Scanner enumerates every RIFF/RIFX container embedded in a byte blob,
// lazily and in offset order. The first marker found anywhere in the
// buffer fixes the byte order for the remainder of the scan.
type Scanner struct {
	buf    []byte
	opts   ScanOptions
	pos    int
	order  ByteOrder
	marker []byte
	done   bool
}

// NewScanner returns a Scanner over buf. The buffer is only read, never
// modified, and must not change while the scan is in progress.
func NewScanner(buf []byte, opts ScanOptions) *Scanner {
	return &Scanner{buf: buf, opts: opts}
}

// Next returns the next located segment. ok is false once the buffer is
// exhausted; a buffer with no markers at all yields no segments and no
// error.
func (s *Scanner) Next() (seg Segment, ok bool) {
	if s.done {
		return Segment{}, false
	}
	start := s.find(s.pos)
	if start < 0 {
		s.done = true
		return Segment{}, false
	}

	length := len(s.buf) - start
	if s.opts.GuessLength {
		if next := s.find(start + fourCCLen); next >= 0 {
			length = next - start
		}
	} else if hdr := s.buf[start:]; len(hdr) >= headerLen {
		declared := int(s.order.Uint32(hdr[fourCCLen:headerLen]))
		if declared <= length-headerLen {
			length = declared + headerLen
		}
	}

	// The marker is 4 bytes, so this always moves past the current hit.
	s.pos = start + length
	return Segment{Start: start, Length: length, Order: s.order}, true
}

// find locates the next marker at or after off. Until the first hit both
// "RIFF" and "RIFX" are candidates; whichever occurs first decides the
// byte order and the marker searched for from then on.
func (s *Scanner) find(off int) int {
	if s.marker != nil {
		return Index(s.buf, s.marker, off)
	}
	li := Index(s.buf, []byte(markerLittle), off)
	bi := Index(s.buf, []byte(markerBig), off)
	switch {
	case li < 0 && bi < 0:
		return -1
	case bi < 0 || (li >= 0 && li < bi):
		s.order, s.marker = LittleEndian, []byte(markerLittle)
		return li
	default:
		s.order, s.marker = BigEndian, []byte(markerBig)
		return bi
	}
}
