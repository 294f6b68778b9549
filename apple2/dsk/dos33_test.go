package dsk

import (
	"testing"

	"dsk2woz2/apple2"
)

// buildCatalogDisk assembles a minimal DOS 3.3 disk: a VTOC at track
// 17 sector 0 pointing at a single catalog sector holding two files.
func buildCatalogDisk() *DSK {
	disk := &DSK{Order: apple2.DOS33Order}

	vtoc := &disk.Tracks[17][0]
	vtoc[0x01] = 17  // catalog track
	vtoc[0x02] = 15  // catalog sector
	vtoc[0x03] = 3   // DOS release
	vtoc[0x06] = 254 // volume
	vtoc[0x27] = 122 // TS pairs per list sector
	vtoc[0x34] = apple2.TracksPerDisk
	vtoc[0x35] = apple2.SectorsPerTrack
	vtoc[0x36] = 0x00 // 256 bytes per sector, little endian
	vtoc[0x37] = 0x01

	catalog := &disk.Tracks[17][15]
	catalog[0x01] = 17 // next catalog sector
	catalog[0x02] = 14

	putEntry := func(slot int, tsTrack, tsSector, typeFlags byte, name string, sectors uint16) {
		entry := catalog[0x0B+slot*35:]
		entry[0] = tsTrack
		entry[1] = tsSector
		entry[2] = typeFlags
		for i := 0; i < 30; i++ {
			c := byte(' ')
			if i < len(name) {
				c = name[i]
			}
			entry[3+i] = c | 0x80
		}
		entry[33] = byte(sectors)
		entry[34] = byte(sectors >> 8)
	}

	putEntry(0, 18, 15, 0x82, "HELLO", 5)    // locked Applesoft
	putEntry(1, 19, 15, 0x04, "PICTURE", 34) // unlocked binary
	putEntry(2, 0xFF, 15, 0x00, "GONE", 2)   // deleted
	// Slot 3 left zeroed: first unused entry terminates the catalog.

	return disk
}

func TestDOS33ReadCatalog(t *testing.T) {
	var dos DOS33
	if err := dos.Read(buildCatalogDisk()); err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}

	if dos.VTOC.VolumeNumber != 254 {
		t.Errorf("expected volume 254, got %d", dos.VTOC.VolumeNumber)
	}
	if dos.VTOC.CatalogTrack != 17 || dos.VTOC.CatalogSector != 15 {
		t.Errorf("unexpected catalog chain start: track %d sector %d",
			dos.VTOC.CatalogTrack, dos.VTOC.CatalogSector)
	}

	if len(dos.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(dos.Files))
	}

	hello := dos.Files[0]
	if hello.DisplayName() != "HELLO" {
		t.Errorf("expected HELLO, got %q", hello.DisplayName())
	}
	if !hello.Locked() || hello.TypeLetter() != "A" {
		t.Errorf("expected a locked Applesoft file, got locked=%v type=%s",
			hello.Locked(), hello.TypeLetter())
	}
	if hello.SectorCount != 5 {
		t.Errorf("expected 5 sectors, got %d", hello.SectorCount)
	}

	picture := dos.Files[1]
	if picture.DisplayName() != "PICTURE" {
		t.Errorf("expected PICTURE, got %q", picture.DisplayName())
	}
	if picture.Locked() || picture.TypeLetter() != "B" {
		t.Errorf("expected an unlocked binary file, got locked=%v type=%s",
			picture.Locked(), picture.TypeLetter())
	}
}

func TestDOS33ReadRejectsForeignVTOC(t *testing.T) {
	// A blank disk has a zeroed VTOC, which reports a geometry this
	// tool does not support.
	var dos DOS33
	if err := dos.Read(&DSK{Order: apple2.DOS33Order}); err == nil {
		t.Error("expected an error for a blank VTOC")
	}
}

func TestDOS33CatalogChainIsBounded(t *testing.T) {
	// A catalog sector that points back at itself must not loop.
	disk := buildCatalogDisk()
	catalog := &disk.Tracks[17][15]
	catalog[0x02] = 15 // next pointer back to itself
	for slot := 2; slot < 7; slot++ {
		catalog[0x0B+slot*35] = 18 // mark every entry in use
	}

	var dos DOS33
	if err := dos.Read(disk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dos.Files) > 7*apple2.SectorsPerTrack {
		t.Errorf("catalog walk not bounded: %d files", len(dos.Files))
	}
}
