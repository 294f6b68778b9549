// WOZ2 disk image encoding
//
// WOZ2 stores a bit-accurate recording of the magnetic flux on each
// track rather than decoded sector data, which is what flux-aware
// controllers and cycle-accurate emulators need. This package encodes
// a logical DSK sector image into the equivalent WOZ2 container.
//
// Reference: https://applesaucefdc.com/woz/reference2/
package woz

import (
	"encoding/binary"

	"dsk2woz2/apple2"
	"dsk2woz2/apple2/dsk"
)

// creatorName identifies this tool in the INFO chunk.
const creatorName = "dsk2woz2"

const headerSize = 12

// Encode converts a fully read DSK image into a complete WOZ2 file
// image, ready to be written out verbatim.
func Encode(disk *dsk.DSK) []byte {
	// Encode every track up front; both TRKS and WRIT need the bits.
	// The track layout is structurally identical for all 35 tracks,
	// so one valid bit count covers them all.
	trackBits := make([]byte, apple2.TracksPerDisk*trackBufferSize)
	validBits := 0
	for t := 0; t < apple2.TracksPerDisk; t++ {
		dest := trackBits[t*trackBufferSize : (t+1)*trackBufferSize]
		validBits = encodeTrack(dest, disk.TrackData(t), t, disk.Order)
	}

	// The chunk order is load-bearing: TRKS directory entries hold
	// file-absolute block numbers computed for exactly this layout.
	chunks := []chunk{
		newInfoChunk(creatorName),
		newTmapChunk(),
		newTrksChunk(trackBits, uint32(validBits)),
		newWritChunk(trackBits, uint32(validBits)),
	}

	size := headerSize
	for _, c := range chunks {
		size += c.size()
	}
	image := make([]byte, size)

	// Header: magic, a high-bit marker byte, and an LF CR LF sequence
	// so that 7-bit or line-ending mangling in transit is detectable.
	copy(image[0:4], "WOZ2")
	image[4] = 0xFF
	image[5], image[6], image[7] = '\n', '\r', '\n'

	offset := headerSize
	for _, c := range chunks {
		offset += c.writeTo(image[offset:])
	}

	// The CRC covers everything after the header and can only be
	// computed once all chunks are in place.
	crc := crc32Update(0, image[headerSize:])
	binary.LittleEndian.PutUint32(image[8:12], crc)

	return image
}
