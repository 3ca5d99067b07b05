package riff

import (
	"bytes"
	"fmt"
)

const hexDigits = "0123456789abcdef"

func isPrint(c byte) bool { return c >= 0x20 && c < 0x7f }
func isGraph(c byte) bool { return c > 0x20 && c < 0x7f }

func (d *dumper) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.w, format, args...)
}

// fourCCLine prints a four-character tag, masking non-printable bytes
// with '?'. Short slices (clamped at the buffer end) are padded the same
// way.
func (d *dumper) fourCCLine(name string, fcc []byte) {
	var f [fourCCLen]byte
	for i := range f {
		f[i] = '?'
		if i < len(fcc) && isPrint(fcc[i]) {
			f[i] = fcc[i]
		}
	}
	d.printf("[4] %14s: %s\n", name, f[:])
}

func (d *dumper) u32Line(name string, v uint32) {
	d.printf("[4] %14s: %d\n", name, v)
}

func (d *dumper) u16Line(name string, v uint16) {
	d.printf("[2] %14s: %d\n", name, v)
}

func (d *dumper) strLine(name string, s string) {
	d.printf("%14s: %s\n", name, s)
}

func (d *dumper) endLine(fcc []byte) {
	var f [fourCCLen]byte
	for i := range f {
		f[i] = '?'
		if i < len(fcc) && isPrint(fcc[i]) {
			f[i] = fcc[i]
		}
	}
	d.printf("    %14s: [%s end]\n", "==============", f[:])
}

// renderLabel decodes labl and note payloads: a cue point ID followed by
// NUL-terminated label text.
func (d *dumper) renderLabel(base int, p []byte) {
	if len(p) < fourCCLen {
		d.hexDump(base, p)
		return
	}
	d.u32Line("Label ID", d.order.Uint32(p))
	text := p[fourCCLen:]
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	d.strLine("Label Text", string(text))
}

// renderCue decodes a cue chunk: a point count followed by 24-byte
// entries. A count that runs past the payload stops at the last complete
// entry.
func (d *dumper) renderCue(base int, p []byte) {
	const entryLen = 24
	if len(p) < fourCCLen {
		d.hexDump(base, p)
		return
	}
	count := d.order.Uint32(p)
	d.u32Line("# Cue points", count)
	for i := 0; i < int(count); i++ {
		e := fourCCLen + i*entryLen
		if e+entryLen > len(p) {
			break
		}
		d.u32Line("Cue ID", d.order.Uint32(p[e:]))
		d.u32Line("Cue Position", d.order.Uint32(p[e+4:]))
		d.fourCCLine("Data Chunk ID", p[e+8:e+12])
		d.u32Line("Chunk Start", d.order.Uint32(p[e+12:]))
		d.u32Line("Block Start", d.order.Uint32(p[e+16:]))
		d.u32Line("Sample Offset", d.order.Uint32(p[e+20:]))
	}
}

// renderFmt decodes the fixed fields of a fmt chunk. Extension bytes
// past the base 16, when declared, are dumped raw.
func (d *dumper) renderFmt(base int, p []byte) {
	if len(p) < 16 {
		d.hexDump(base, p)
		return
	}
	d.u16Line("Compression", d.order.Uint16(p))
	d.u16Line("# Channels", d.order.Uint16(p[2:]))
	d.u32Line("Sample Rate", d.order.Uint32(p[4:]))
	d.u32Line("Avg. Bytes/s", d.order.Uint32(p[8:]))
	d.u16Line("Block align", d.order.Uint16(p[12:]))
	d.u16Line("Signif. bit/s", d.order.Uint16(p[14:]))
	if len(p) >= 18 {
		d.u16Line("Xtra FMT bytes", d.order.Uint16(p[16:]))
		d.hexDump(base+18, p[18:])
	}
}

// hexDump renders p as 16 bytes per line: two hex digits per byte, an
// extra space after each group of 8, and a printable-ASCII column with
// '.' for everything else. Line prefixes are absolute offsets within the
// original buffer.
func (d *dumper) hexDump(base int, p []byte) {
	const perLine = 16
	const asciiCol = 51

	for off := 0; off < len(p); off += perLine {
		line := p[off:]
		if len(line) > perLine {
			line = line[:perLine]
		}
		row := bytes.Repeat([]byte{' '}, asciiCol+len(line))
		b := 0
		for i, c := range line {
			row[b] = hexDigits[c>>4]
			row[b+1] = hexDigits[c&0x0f]
			b += 3
			if i%8 == 7 {
				b++
			}
			row[asciiCol+i] = '.'
			if isGraph(c) {
				row[asciiCol+i] = c
			}
		}
		d.printf("%14d: %s\n", base+off, row)
	}
}
