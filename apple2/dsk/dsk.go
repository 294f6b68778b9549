// Apple II DSK sector image
//
// A DSK file is a plain dump of the 35 tracks of a 16-sector 5.25"
// disk, 256 bytes per sector, in logical sector order. There is no
// header and no metadata: the file is exactly 143,360 bytes long.
package dsk

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"dsk2woz2/apple2"
	"dsk2woz2/apple2/dsk/dos33/cat"
	"dsk2woz2/storage"
)

// Sector is one 256-byte logical sector.
type Sector [apple2.BytesPerSector]byte

// Track is the 16 logical sectors of one track.
type Track [apple2.SectorsPerTrack]Sector

// DSK is a logical sector image of a 5.25" disk.
type DSK struct {
	reader *storage.Reader

	Order  apple2.SectorOrder
	Tracks [apple2.TracksPerDisk]Track
}

func New(reader *storage.Reader, order apple2.SectorOrder) *DSK {
	return &DSK{reader: reader, Order: order}
}

// Read loads the full disk image, which must be exactly one standard
// 16-sector disk in size.
func (d *DSK) Read() error {
	if err := binary.Read(d.reader, binary.LittleEndian, &d.Tracks); err != nil {
		return errors.Wrap(err, "not a 16-sector 5.25\" disk image")
	}

	// Anything left over means the file is too long for this geometry.
	if _, err := d.reader.ReadByte(); err != io.EOF {
		return errors.Errorf("image larger than %d bytes", apple2.DiskImageSize)
	}

	return nil
}

// TrackData returns the 4096 bytes of one track's logical sectors.
func (d *DSK) TrackData(track int) []byte {
	data := make([]byte, 0, apple2.BytesPerTrack)
	for s := 0; s < apple2.SectorsPerTrack; s++ {
		data = append(data, d.Tracks[track][s][:]...)
	}
	return data
}

// SectorData returns the contents of one logical sector.
func (d *DSK) SectorData(track, sector uint8) ([]byte, error) {
	if int(track) >= apple2.TracksPerDisk || int(sector) >= apple2.SectorsPerTrack {
		return nil, errors.Errorf("no such sector: track %d, sector %d", track, sector)
	}
	return d.Tracks[track][sector][:], nil
}

// CommandCat displays the DOS 3.3 disk catalog.
//
// The catalog structures live at fixed logical sector addresses, so
// this only makes sense for a DOS 3.3 ordered image.
func (d *DSK) CommandCat() error {
	if d.Order != apple2.DOS33Order {
		return errors.Errorf("catalog requires DOS 3.3 sector ordering, image is %s", d.Order)
	}

	var dos DOS33
	if err := dos.Read(d); err != nil {
		return err
	}

	catalog, err := cat.CommandCat(dos.VTOC.VolumeNumber, dos.Files)
	if err != nil {
		return err
	}
	catalog.Display()

	return nil
}
