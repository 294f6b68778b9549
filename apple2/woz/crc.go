package woz

// Reflected CRC-32, the zlib/Ethernet polynomial. Both the WRIT chunk
// and the whole-file checksum use it, per the WOZ reference.
const crcPolynomial = 0xEDB88320

var crcTable [256]uint32

func init() {
	for i := range crcTable {
		crc := uint32(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ crcPolynomial
			} else {
				crc >>= 1
			}
		}
		crcTable[i] = crc
	}
}

// crc32Update extends crc with the bytes of p. Pass 0 to start a new
// checksum; continuations pass the previous return value.
func crc32Update(crc uint32, p []byte) uint32 {
	crc = ^crc
	for _, b := range p {
		crc = crcTable[byte(crc)^b] ^ crc>>8
	}
	return ^crc
}
