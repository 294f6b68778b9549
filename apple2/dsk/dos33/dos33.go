// Apple DOS 3.3 Disk Format
//
// Reference: "Beneath Apple DOS", Worth & Lechner.
package dos33

import "strings"

// Volume Table Of Contents, stored at track $11, sector $00.
//
// NOTE: the VTOC is the root of the filesystem; the catalog chain and
// the free sector bitmap are both reached through it.
type VTOC struct {
	_ uint8 // unused

	// First catalog sector location. Normally track $11 sector $0F,
	// with the chain descending through the rest of track $11.
	CatalogTrack  uint8
	CatalogSector uint8

	// Release number of DOS used to INIT this disk, normally 3
	DOSRelease uint8

	_ [2]uint8 // unused

	// Disk volume number, 1..254
	VolumeNumber uint8

	_ [32]uint8 // unused

	// Maximum number of track/sector pairs which will fit in one file
	// track/sector list sector (122 for 256 byte sectors)
	MaxTSPairs uint8

	_ [8]uint8 // unused

	// Last track where sectors were allocated
	LastAllocatedTrack uint8

	// Direction of track allocation, +1 or -1
	AllocationDirection int8

	_ [2]uint8 // unused

	// Disk geometry as recorded at format time
	TracksPerDisk   uint8
	SectorsPerTrack uint8
	BytesPerSector  uint16

	// Free sector bitmap, one 4-byte entry per track.
	// Only the first two bytes of each entry are significant for
	// 16-sector disks; a set bit marks a free sector.
	FreeSectors [35][4]uint8

	_ [60]uint8 // unused
}

// CatalogSector holds up to seven file entries plus a link to the next
// catalog sector. A zero link track terminates the chain.
type CatalogSector struct {
	_ uint8 // unused

	NextTrack  uint8
	NextSector uint8

	_ [8]uint8 // unused

	Entries [7]FileEntry
}

// File types, stored in the low seven bits of a file entry's type byte.
const (
	FileTypeText         uint8 = 0x00
	FileTypeIntegerBasic uint8 = 0x01
	FileTypeApplesoft    uint8 = 0x02
	FileTypeBinary       uint8 = 0x04
	FileTypeS            uint8 = 0x08
	FileTypeRelocatable  uint8 = 0x10
	FileTypeA            uint8 = 0x20
	FileTypeB            uint8 = 0x40

	fileLockedMask uint8 = 0x80
)

// FileEntry is one 35-byte catalog file descriptor.
type FileEntry struct {
	// Track of the file's first track/sector list sector.
	// $00 means the entry has never been used, $FF a deleted file.
	TSListTrack  uint8
	TSListSector uint8

	// File type and flags; bit 7 marks the file locked
	TypeFlags uint8

	// File name, 30 bytes of high-bit ASCII padded with spaces
	Name [30]uint8

	// Length of the file in sectors, including the track/sector
	// list sectors
	SectorCount uint16
}

func (f FileEntry) Unused() bool {
	return f.TSListTrack == 0x00
}

func (f FileEntry) Deleted() bool {
	return f.TSListTrack == 0xFF
}

func (f FileEntry) Locked() bool {
	return f.TypeFlags&fileLockedMask != 0
}

// TypeLetter returns the single-letter file type code used by the DOS
// CATALOG command.
func (f FileEntry) TypeLetter() string {
	switch f.TypeFlags &^ fileLockedMask {
	case FileTypeText:
		return "T"
	case FileTypeIntegerBasic:
		return "I"
	case FileTypeApplesoft:
		return "A"
	case FileTypeBinary:
		return "B"
	case FileTypeS:
		return "S"
	case FileTypeRelocatable:
		return "R"
	case FileTypeA:
		return "A"
	case FileTypeB:
		return "B"
	}
	return "?"
}

// DisplayName returns the file name as printable ASCII, with the high
// bits cleared and trailing padding removed.
func (f FileEntry) DisplayName() string {
	name := make([]byte, len(f.Name))
	for i, c := range f.Name {
		name[i] = c & 0x7F
	}
	return strings.TrimRight(string(name), " ")
}
