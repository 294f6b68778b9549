package woz

import (
	"bytes"
	"encoding/binary"

	"dsk2woz2/apple2"
)

// chunk is one named WOZ chunk: a 4-byte ASCII tag, a little-endian
// payload length, and the payload itself.
type chunk struct {
	tag  string
	data []byte
}

// size returns the serialized size of the chunk including its header.
func (c chunk) size() int {
	return 8 + len(c.data)
}

// writeTo serializes the chunk into dest and returns the bytes written.
func (c chunk) writeTo(dest []byte) int {
	copy(dest[0:4], c.tag)
	binary.LittleEndian.PutUint32(dest[4:8], uint32(len(c.data)))
	copy(dest[8:], c.data)
	return c.size()
}

// marshal serializes a fixed-layout record little-endian. The chunk
// record layouts below have no alignment padding, so encoding/binary
// produces them byte for byte.
func marshal(record interface{}) []byte {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, record); err != nil {
		panic("woz: chunk record marshal: " + err.Error())
	}
	return buf.Bytes()
}

// infoRecord is the 60-byte INFO chunk payload, INFO version 2.
type infoRecord struct {
	Version          uint8
	DiskType         uint8    // 1 = 5.25"
	WriteProtected   uint8
	Synchronized     uint8
	Cleaned          uint8
	Creator          [32]byte // UTF-8, space padded, not NUL terminated
	DiskSides        uint8
	BootSectorFormat uint8    // 1 = 16-sector
	OptimalBitTiming uint8    // in 125ns increments; 32 = standard 4µs
	CompatibleHW     uint16
	RequiredRAM      uint16
	LargestTrack     uint16   // in blocks
	_                [14]byte
}

func newInfoChunk(creator string) chunk {
	info := infoRecord{
		Version:          2,
		DiskType:         1,
		Cleaned:          1,
		DiskSides:        1,
		BootSectorFormat: 1,
		OptimalBitTiming: 32,
		LargestTrack:     blocksPerTrack,
	}
	for i := range info.Creator {
		if i < len(creator) {
			info.Creator[i] = creator[i]
		} else {
			info.Creator[i] = ' '
		}
	}
	return chunk{tag: "INFO", data: marshal(info)}
}

// newTmapChunk builds the 160-entry quarter-track map. A 5.25" head
// reads a track's data from a quarter track to either side of center,
// so each nominal track also claims the +0.25 and -0.25 positions; the
// x.50 positions between tracks stay unused (0xFF). The map is cut one
// entry short of 35*4 so position 34.75 does not name a 36th track.
func newTmapChunk() chunk {
	data := make([]byte, 160)
	for t := range data {
		switch {
		case t >= apple2.TracksPerDisk*4-1:
			data[t] = 0xFF
		case t%4 == 2:
			data[t] = 0xFF
		case t%4 == 3:
			data[t] = byte(t/4) + 1
		default:
			data[t] = byte(t / 4)
		}
	}
	return chunk{tag: "TMAP", data: data}
}

// trkRecord is one 8-byte TRKS directory entry.
type trkRecord struct {
	StartingBlock uint16 // relative to the start of the file
	BlockCount    uint16
	BitCount      uint32
}

// newTrksChunk builds the TRKS chunk: a directory of 160 track entries
// (only the first 35 populated) followed by every track's bitstream.
//
// Starting blocks are file-absolute, which bakes in the INFO, TMAP,
// TRKS chunk order: the header plus those two chunks fill blocks 0..2,
// so the first track's bits begin at block 3 and each track takes
// exactly 13 blocks after that.
func newTrksChunk(trackBits []byte, validBits uint32) chunk {
	data := make([]byte, 160*8+len(trackBits))

	startingBlock := uint16(3)
	for t := 0; t < apple2.TracksPerDisk; t++ {
		entry := trkRecord{
			StartingBlock: startingBlock,
			BlockCount:    blocksPerTrack,
			BitCount:      validBits,
		}
		copy(data[t*8:], marshal(entry))
		startingBlock += blocksPerTrack
	}

	// The bitstream region always starts after the full directory,
	// 1280 bytes into the payload.
	copy(data[160*8:], trackBits)

	return chunk{tag: "TRKS", data: data}
}

// writRecord is one 20-byte WRIT track descriptor.
type writRecord struct {
	QuarterTrack  uint8  // track to write, in quarter-track units
	CommandCount  uint8
	Flags         uint8
	_             uint8
	BitsChecksum  uint32 // CRC-32 of the track's valid bit range
	LeaderSkip    uint32 // leader bits not rewritten
	BitCount      uint32 // bits to rewrite after the leader
	LeaderNibble  uint8
	LeaderBitSize uint8
	LeaderCount   uint8
	_             uint8
}

// newWritChunk builds one write descriptor per track. The checksum
// covers the track's valid bits from the very start of the buffer,
// leader included, even though the leader is excluded from the rewrite
// counts below; the WOZ reference tooling does the same, so keep it.
func newWritChunk(trackBits []byte, validBits uint32) chunk {
	data := make([]byte, 0, apple2.TracksPerDisk*20)

	checksumLength := int(validBits+7) / 8
	for t := 0; t < apple2.TracksPerDisk; t++ {
		track := trackBits[t*trackBufferSize : (t+1)*trackBufferSize]
		entry := writRecord{
			QuarterTrack:  byte(t * 4),
			CommandCount:  1,
			BitsChecksum:  crc32Update(0, track[:checksumLength]),
			LeaderSkip:    trackLeaderBits,
			BitCount:      validBits - trackLeaderBits,
			LeaderNibble:  0xFF,
			LeaderBitSize: 10,
			// Leader count 0 mimics Applesauce save-as-WOZ output.
			LeaderCount: 0,
		}
		data = append(data, marshal(entry)...)
	}

	return chunk{tag: "WRIT", data: data}
}
