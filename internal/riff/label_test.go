package riff

import (
	"strings"
	"testing"
)

// labelChunk builds a labl chunk region with the given declared size and
// text. The declared size is written as-is so tests can lie about it.
func labelChunk(order ByteOrder, declared uint32, cueID uint32, text string) []byte {
	b := []byte("labl")
	b = putU32(b, order, declared)
	b = putU32(b, order, cueID)
	b = append(b, text...)
	return append(b, 0)
}

func TestFindLabelBasic(t *testing.T) {
	seg := append([]byte("prefix junk "), labelChunk(LittleEndian, 4+8+1, 1, "mysound1")...)
	got, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds())
	if !ok || got != "mysound1" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestFindLabelLastMatchWins(t *testing.T) {
	var seg []byte
	seg = append(seg, labelChunk(LittleEndian, 11, 1, "first1")...)
	seg = append(seg, "filler"...)
	seg = append(seg, labelChunk(LittleEndian, 12, 2, "second2")...)
	got, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds())
	if !ok || got != "second2" {
		t.Fatalf("got %q, %v, want the last qualifying label", got, ok)
	}
}

func TestFindLabelRejectsShortDeclaration(t *testing.T) {
	// Declared size 5 sits below the minimum of 6: nothing qualifies.
	seg := labelChunk(LittleEndian, 5, 1, "x")
	if got, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds()); ok {
		t.Fatalf("accepted label %q with declared size 5", got)
	}
}

func TestFindLabelRejectsOversizedDeclaration(t *testing.T) {
	seg := labelChunk(LittleEndian, 100000, 1, "huge")
	if got, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds()); ok {
		t.Fatalf("accepted label %q with declared size 100000", got)
	}
	// Raising the bound makes the same candidate acceptable.
	got, ok := FindLabel(seg, LittleEndian, LabelBounds{Min: 6, Max: 200000})
	if !ok || got != "huge" {
		t.Fatalf("got %q, %v with raised bound", got, ok)
	}
}

func TestFindLabelRejectsNonPrintableStart(t *testing.T) {
	seg := labelChunk(LittleEndian, 12, 1, "\x01binary")
	if got, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds()); ok {
		t.Fatalf("accepted label %q with non-printable first byte", got)
	}
}

func TestFindLabelBigEndianSize(t *testing.T) {
	seg := labelChunk(BigEndian, 12, 1, "bigend12")
	got, ok := FindLabel(seg, BigEndian, DefaultLabelBounds())
	if !ok || got != "bigend12" {
		t.Fatalf("got %q, %v", got, ok)
	}
	// The same bytes read little-endian see a huge size and reject it.
	if got, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds()); ok {
		t.Fatalf("little-endian read accepted %q", got)
	}
}

func TestFindLabelTruncatedTail(t *testing.T) {
	// "labl" hit too close to the end of the segment to carry a size
	// field and cue ID.
	seg := []byte("xxxxlabl\x0c\x00")
	if _, ok := FindLabel(seg, LittleEndian, DefaultLabelBounds()); ok {
		t.Fatalf("accepted label from truncated tail")
	}
}

func TestSanitizeLabel(t *testing.T) {
	got := SanitizeLabel("dir/with\\sep and\x07bell")
	if strings.ContainsAny(got, "/\\ ") {
		t.Fatalf("sanitized label still contains separators or spaces: %q", got)
	}
	if got != "dir_with_sep_and_bell" {
		t.Fatalf("got %q", got)
	}
}
