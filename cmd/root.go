package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dsk2woz2/apple2"
)

var rootCmd = &cobra.Command{
	Use:   "dsk2woz2",
	Short: "Apple II disk image converter",
	Long: `dsk2woz2 works with Apple II 5.25" disk images: it converts 16-sector
DSK images (DOS 3.3 or ProDOS sector order) to WOZ2 flux images, and
displays DOS 3.3 disk catalogs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// mediaType returns the given media type, or falls back to the
// filename extension when no override was set.
func mediaType(media, filename string) string {
	if media == "" {
		media = strings.TrimPrefix(filepath.Ext(filename), ".")
	}
	return strings.ToLower(media)
}

// sectorOrder maps a media type to the sector order of the image.
// ProDOS tooling writes .po images; everything else is assumed to be
// the common DOS 3.3 ordered .dsk/.do dump.
func sectorOrder(dskType string) (apple2.SectorOrder, bool) {
	switch dskType {
	case "po":
		return apple2.ProDOSOrder, true
	case "dsk", "do", "":
		return apple2.DOS33Order, true
	}
	return apple2.DOS33Order, false
}
