package riff

import "bytes"

const labelTag = "labl"

// labelSkip is the distance from the end of the "labl" tag to the label
// text: the 4-byte sub-chunk size plus the 4-byte cue point ID.
const labelSkip = 8

// LabelBounds constrains the declared size of a candidate labl sub-chunk.
// The declared size covers the cue point ID, the label text and its NUL
// terminator, so anything below Min cannot hold a usable name, and
// anything above Max is assumed to be a false positive hit on payload
// data. The defaults are extractor heuristics, not format invariants.
type LabelBounds struct {
	Min int
	Max int
}

// DefaultLabelBounds returns the stock label size bounds.
func DefaultLabelBounds() LabelBounds {
	return LabelBounds{Min: 6, Max: 200}
}

// FindLabel searches a located segment for "labl" sub-chunks and returns
// the text of the last plausible one. Candidates whose declared size is
// outside bounds, or whose text does not begin with a printable
// character, are skipped. The trailing NUL terminator is stripped from
// the returned text. ok is false when no candidate qualifies.
func FindLabel(seg []byte, order ByteOrder, bounds LabelBounds) (label string, ok bool) {
	tag := []byte(labelTag)
	for pos := Index(seg, tag, 0); pos >= 0; pos = Index(seg, tag, pos+fourCCLen) {
		rest := seg[pos+fourCCLen:]
		if len(rest) < labelSkip {
			break
		}
		size := int(order.Uint32(rest[:4]))
		if size < bounds.Min || size > bounds.Max {
			continue
		}
		text := rest[labelSkip:]
		if n := size - fourCCLen; n < len(text) {
			text = text[:n]
		}
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		if len(text) == 0 || !isPrint(text[0]) {
			continue
		}
		label, ok = string(text), true
	}
	return label, ok
}

// SanitizeLabel makes a label safe for use as part of a filename: path
// separators, spaces and non-printable characters all become '_'.
func SanitizeLabel(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c == '/' || c == '\\' || c == ' ' || !isPrint(c) {
			out[i] = '_'
		}
	}
	return string(out)
}
