package woz

import "dsk2woz2/apple2"

const (
	// Track bitstreams are stored in whole 512-byte blocks; a standard
	// 16-sector track always fits in 13.
	blocksPerTrack  = 13
	blockSize       = 512
	trackBufferSize = blocksPerTrack * blockSize

	// Volume number DOS 3.3 writes into every address field.
	diskVolumeNumber = 254

	// Self-sync words at the start of every track, giving the drive
	// hardware time to lock on before the first address field.
	trackLeaderSyncCount = 64
	trackLeaderBits      = trackLeaderSyncCount * 10
)

// logicalSector maps a physical sector position on the track to the
// logical sector whose data it carries. The skew lets a single-buffer
// controller read logically consecutive sectors without waiting a full
// revolution between them; DOS 3.3 and ProDOS chose different skews.
func logicalSector(physical int, order apple2.SectorOrder) int {
	if physical == 15 {
		return 15
	}
	multiplier := 7
	if order == apple2.ProDOSOrder {
		multiplier = 8
	}
	return (physical * multiplier) % 15
}

// encodeTrack fills dest with the complete flux bitstream for one
// track and returns the number of valid bits written. dest must be a
// zeroed buffer of trackBufferSize bytes; bits beyond the returned
// count stay zero as block padding.
//
// src is the track's 16 logical sectors (4096 bytes). The structural
// layout is identical for every track, so the returned bit count is
// the same for all 35.
func encodeTrack(dest, src []byte, trackNumber int, order apple2.SectorOrder) int {
	w := newBitWriter(dest)

	for i := 0; i < trackLeaderSyncCount; i++ {
		w.writeSync()
	}

	// Sectors are emitted in physical order; the interleave decides
	// which logical sector's contents land in each slot.
	for s := 0; s < apple2.SectorsPerTrack; s++ {
		// Address field
		w.writeByte(0xD5)
		w.writeByte(0xAA)
		w.writeByte(0x96)

		w.write44(diskVolumeNumber)
		w.write44(byte(trackNumber))
		w.write44(byte(s))
		w.write44(diskVolumeNumber ^ byte(trackNumber) ^ byte(s))

		w.writeByte(0xDE)
		w.writeByte(0xAA)
		w.writeByte(0xEB)

		for i := 0; i < 7; i++ {
			w.writeSync()
		}

		// Data field
		w.writeByte(0xD5)
		w.writeByte(0xAA)
		w.writeByte(0xAD)

		var sector [apple2.BytesPerSector]byte
		offset := logicalSector(s, order) * apple2.BytesPerSector
		copy(sector[:], src[offset:offset+apple2.BytesPerSector])

		encoded := encodeSector(&sector)
		for _, nibble := range encoded {
			w.writeByte(nibble)
		}

		w.writeByte(0xDE)
		w.writeByte(0xAA)
		w.writeByte(0xEB)

		if s < apple2.SectorsPerTrack-1 {
			for i := 0; i < 16; i++ {
				w.writeSync()
			}
		} else {
			w.writeByte(0xFF)
		}
	}

	return w.off
}
