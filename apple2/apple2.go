// Apple II 5.25" floppy disk media
package apple2

// Standard 16-sector 5.25" disk geometry. Every DSK image this tool
// accepts has exactly this shape; all buffer sizes derive from it.
const (
	TracksPerDisk   = 35
	SectorsPerTrack = 16
	BytesPerSector  = 256
	BytesPerTrack   = SectorsPerTrack * BytesPerSector
	DiskImageSize   = TracksPerDisk * BytesPerTrack
)

// SectorOrder is the logical sector interleave used by a DSK image.
// It is a property of the image file, not of the disk contents: the
// same physical disk dumped by DOS 3.3 and by ProDOS tooling produces
// the same bytes in a different sector order.
type SectorOrder uint8

const (
	DOS33Order SectorOrder = iota
	ProDOSOrder
)

func (o SectorOrder) String() string {
	if o == ProDOSOrder {
		return "ProDOS"
	}
	return "DOS 3.3"
}

// Image is any Apple II disk image the tool can read.
type Image interface {
	Read() error
	CommandCat() error
}
