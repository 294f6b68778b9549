package woz

// writeBits writes the low width bits of value into buf starting at
// bit offset off, most significant bit first, and returns the offset
// of the next free bit. Bytes are bit-addressed MSB first.
//
// Bits are combined with whatever is already in the buffer using OR,
// so callers must start from a zeroed buffer. That is what lets the
// sync write below "write" its two trailing zero bits by skipping
// them, and what keeps track padding untouched.
func writeBits(buf []byte, off int, value uint32, width uint) int {
	if off+int(width) > len(buf)*8 {
		panic("woz: bit write past end of buffer")
	}

	for width > 0 {
		shift := uint(off & 7)
		pos := off >> 3
		n := 8 - shift // bits available in this byte
		if n > width {
			n = width
		}

		mask := uint32(1)<<n - 1
		chunk := byte(value >> (width - n) & mask)
		buf[pos] |= chunk << (8 - shift - n)

		off += int(n)
		width -= n
	}

	return off
}

// bitWriter accumulates a track bitstream at a running bit offset.
type bitWriter struct {
	buf []byte
	off int
}

func newBitWriter(buf []byte) *bitWriter {
	return &bitWriter{buf: buf}
}

func (w *bitWriter) writeByte(value byte) {
	w.off = writeBits(w.buf, w.off, uint32(value), 8)
}

// write44 writes one byte in 4-and-4 encoding: the odd and even bits
// split across two bytes, each OR'd with 0xAA so that no byte on disk
// has two adjacent zero bits.
func (w *bitWriter) write44(value byte) {
	w.writeByte(value>>1 | 0xAA)
	w.writeByte(value | 0xAA)
}

// writeSync writes one 10-bit self-sync word: an 0xFF byte followed by
// two zero bits. The zero bits are already present in the zeroed
// buffer, so the offset simply skips past them.
func (w *bitWriter) writeSync() {
	w.writeByte(0xFF)
	w.off += 2
}
