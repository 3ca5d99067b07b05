package riff

import "testing"

func TestUint32BothOrders(t *testing.T) {
	b := []byte{0x01, 0x00, 0x00, 0x00}
	if got := LittleEndian.Uint32(b); got != 1 {
		t.Fatalf("little-endian: got %d, want 1", got)
	}
	if got := BigEndian.Uint32(b); got != 16777216 {
		t.Fatalf("big-endian: got %d, want 16777216", got)
	}
}

func TestUint16BothOrders(t *testing.T) {
	b := []byte{0x02, 0x01}
	if got := LittleEndian.Uint16(b); got != 0x0102 {
		t.Fatalf("little-endian: got %#x, want 0x0102", got)
	}
	if got := BigEndian.Uint16(b); got != 0x0201 {
		t.Fatalf("big-endian: got %#x, want 0x0201", got)
	}
}

func TestDetectOrder(t *testing.T) {
	if o, ok := DetectOrder([]byte("RIFFxxxx")); !ok || o != LittleEndian {
		t.Fatalf("RIFF: got %v, %v", o, ok)
	}
	if o, ok := DetectOrder([]byte("RIFXxxxx")); !ok || o != BigEndian {
		t.Fatalf("RIFX: got %v, %v", o, ok)
	}
	if _, ok := DetectOrder([]byte("WAVE")); ok {
		t.Fatalf("WAVE accepted as container marker")
	}
	if _, ok := DetectOrder([]byte("RI")); ok {
		t.Fatalf("short buffer accepted")
	}
}
