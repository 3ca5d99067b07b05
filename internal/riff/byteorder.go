package riff

const (
	markerLittle = "RIFF"
	markerBig    = "RIFX"

	fourCCLen = 4
	headerLen = 8
)

// ByteOrder selects how multi-byte integer fields are decoded. RIFF
// containers store sizes little-endian, RIFX big-endian. The order is
// determined once from the container marker and stays fixed for the
// whole parse; it is never mixed within a single file.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Marker returns the 4-byte container tag announcing this byte order.
func (o ByteOrder) Marker() []byte {
	if o == BigEndian {
		return []byte(markerBig)
	}
	return []byte(markerLittle)
}

// Uint16 decodes the first two bytes of b in this byte order.
func (o ByteOrder) Uint16(b []byte) uint16 {
	if o == BigEndian {
		return uint16(b[1]) | uint16(b[0])<<8
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

// Uint32 decodes the first four bytes of b in this byte order.
func (o ByteOrder) Uint32(b []byte) uint32 {
	if o == BigEndian {
		return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// DetectOrder inspects the leading four bytes of buf for a container
// marker. ok is false when buf starts with neither "RIFF" nor "RIFX".
func DetectOrder(buf []byte) (order ByteOrder, ok bool) {
	if len(buf) < fourCCLen {
		return LittleEndian, false
	}
	switch string(buf[:fourCCLen]) {
	case markerLittle:
		return LittleEndian, true
	case markerBig:
		return BigEndian, true
	}
	return LittleEndian, false
}
