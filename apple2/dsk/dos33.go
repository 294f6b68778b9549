// Apple DOS 3.3 Disk
package dsk

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"dsk2woz2/apple2"
	"dsk2woz2/apple2/dsk/dos33"
)

// The VTOC lives at a fixed location on every DOS 3.3 disk.
const (
	vtocTrack  uint8 = 17
	vtocSector uint8 = 0
)

type DOS33 struct {
	VTOC  dos33.VTOC
	Files []dos33.FileEntry
}

// Read the catalog of a DOS 3.3 formatted disk.
func (dos *DOS33) Read(disk *DSK) error {
	if err := dos.readSector(disk, vtocTrack, vtocSector, &dos.VTOC); err != nil {
		return errors.Wrap(err, "invalid VTOC")
	}

	if dos.VTOC.TracksPerDisk != apple2.TracksPerDisk || dos.VTOC.SectorsPerTrack != apple2.SectorsPerTrack {
		return errors.Errorf(
			"not a DOS 3.3 disk: VTOC reports %d tracks, %d sectors",
			dos.VTOC.TracksPerDisk, dos.VTOC.SectorsPerTrack,
		)
	}

	return dos.readCatalog(disk)
}

// readCatalog walks the catalog sector chain from the VTOC, collecting
// the in-use file entries. A zero next-track terminates the chain. The
// chain length is bounded by the sector count of the catalog track, so
// a corrupt image cannot loop forever.
func (dos *DOS33) readCatalog(disk *DSK) error {
	track := dos.VTOC.CatalogTrack
	sector := dos.VTOC.CatalogSector

	for i := 0; track != 0 && i < apple2.SectorsPerTrack; i++ {
		var catalog dos33.CatalogSector
		if err := dos.readSector(disk, track, sector, &catalog); err != nil {
			return errors.Wrap(err, "invalid catalog sector")
		}

		for _, entry := range catalog.Entries {
			if entry.Unused() {
				// Entries are allocated in order; the first unused
				// entry ends the catalog.
				return nil
			}
			if entry.Deleted() {
				continue
			}
			dos.Files = append(dos.Files, entry)
		}

		track = catalog.NextTrack
		sector = catalog.NextSector
	}

	return nil
}

// readSector unmarshals one 256-byte sector into a DOS 3.3 structure.
func (dos DOS33) readSector(disk *DSK, track, sector uint8, data interface{}) error {
	raw, err := disk.SectorData(track, sector)
	if err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(raw), binary.LittleEndian, data)
}
