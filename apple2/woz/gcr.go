package woz

import "dsk2woz2/apple2"

const encodedSectorSize = 343

// gcrNibbles maps each 6-bit value to a disk-legal nibble: every entry
// has the high bit set and no two adjacent zero bits, so the drive's
// read head never loses its clock inside a data field.
var gcrNibbles = [64]byte{
	0x96, 0x97, 0x9a, 0x9b, 0x9d, 0x9e, 0x9f, 0xa6,
	0xa7, 0xab, 0xac, 0xad, 0xae, 0xaf, 0xb2, 0xb3,
	0xb4, 0xb5, 0xb6, 0xb7, 0xb9, 0xba, 0xbb, 0xbc,
	0xbd, 0xbe, 0xbf, 0xcb, 0xcd, 0xce, 0xcf, 0xd3,
	0xd6, 0xd7, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde,
	0xdf, 0xe5, 0xe6, 0xe7, 0xe9, 0xea, 0xeb, 0xec,
	0xed, 0xee, 0xef, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6,
	0xf7, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
}

// bitReverse2 reverses a 2-bit value.
var bitReverse2 = [4]byte{0, 2, 1, 3}

// encodeSector encodes one 256-byte sector into its 343-byte 6-and-2
// nibble representation.
//
// The first 86 bytes pack the bit-reversed bottom two bits of three
// source bytes each (c, c+86, c+172); the next 256 bytes carry the top
// six bits of every source byte. A 343rd byte duplicates the last one,
// then the whole sequence is turned into a running XOR chain so that
// the decoder can checksum it on the fly, and finally every 6-bit
// value is mapped to a legal GCR nibble.
func encodeSector(src *[apple2.BytesPerSector]byte) [encodedSectorSize]byte {
	var dest [encodedSectorSize]byte

	for c := 0; c < 84; c++ {
		dest[c] = bitReverse2[src[c]&3] |
			bitReverse2[src[c+86]&3]<<2 |
			bitReverse2[src[c+172]&3]<<4
	}
	dest[84] = bitReverse2[src[84]&3] | bitReverse2[src[170]&3]<<2
	dest[85] = bitReverse2[src[85]&3] | bitReverse2[src[171]&3]<<2

	for c := 0; c < apple2.BytesPerSector; c++ {
		dest[86+c] = src[c] >> 2
	}

	// Exclusive OR each byte with the one before it. The duplicated
	// final byte is copied first and left out of the chain itself.
	dest[342] = dest[341]
	for c := 341; c > 0; c-- {
		dest[c] ^= dest[c-1]
	}

	for c := range dest {
		dest[c] = gcrNibbles[dest[c]]
	}

	return dest
}
