package woz

import (
	"hash/crc32"
	"testing"
)

func TestCRC32StandardVector(t *testing.T) {
	// The check value every reflected CRC-32 implementation agrees on.
	if crc := crc32Update(0, []byte("123456789")); crc != 0xCBF43926 {
		t.Errorf("expected CBF43926, got %08X", crc)
	}
}

func TestCRC32MatchesStdlib(t *testing.T) {
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(i*31 + i>>5)
	}

	for _, n := range []int{0, 1, 255, 256, 6329, len(data)} {
		got := crc32Update(0, data[:n])
		want := crc32.ChecksumIEEE(data[:n])
		if got != want {
			t.Errorf("length %d: expected %08X, got %08X", n, want, got)
		}
	}
}

func TestCRC32Continuation(t *testing.T) {
	data := []byte("WOZ2 track bitstream continuation check")
	whole := crc32Update(0, data)
	split := crc32Update(crc32Update(0, data[:11]), data[11:])
	if whole != split {
		t.Errorf("split update %08X differs from whole %08X", split, whole)
	}
}
