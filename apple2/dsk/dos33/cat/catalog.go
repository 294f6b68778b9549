package cat

import (
	"fmt"

	"github.com/pkg/errors"

	"dsk2woz2/apple2/dsk/dos33"
)

type catalog struct {
	Volume  uint8
	Records []fileRecord
}

// fileRecord is the displayable data for one catalog file entry,
// matching the columns of the DOS 3.3 CATALOG command.
type fileRecord struct {
	Locked      bool
	TypeLetter  string
	SectorCount uint16
	Name        string
}

// COMMAND: CATALOG
// Lists the files on the disk in catalog order, with each file's lock
// state, type letter and length in sectors, under a volume heading.
func CommandCat(volume uint8, files []dos33.FileEntry) (*catalog, error) {
	if len(files) == 0 {
		return nil, errors.New("no files found")
	}

	cat := &catalog{Volume: volume}

	for _, f := range files {
		cat.Records = append(cat.Records, fileRecord{
			Locked:      f.Locked(),
			TypeLetter:  f.TypeLetter(),
			SectorCount: f.SectorCount,
			Name:        f.DisplayName(),
		})
	}

	return cat, nil
}

func (c catalog) Display() {
	fmt.Println()
	fmt.Printf("DISK VOLUME %d\n", c.Volume)
	fmt.Println()
	for _, r := range c.Records {
		lock := " "
		if r.Locked {
			lock = "*"
		}
		fmt.Printf("%s%s %03d %s\n", lock, r.TypeLetter, r.SectorCount, r.Name)
	}
	fmt.Println()
}
