package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dsk2woz2/apple2"
	"dsk2woz2/apple2/dsk"
	"dsk2woz2/storage"
)

var catMediaType string

var catCmd = &cobra.Command{
	Use:                   "cat FILE",
	Short:                 "Displays the disk directory (catalog)",
	Long:                  `Reads and displays the DOS 3.3 catalog from an Apple II DSK disk image.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		dskType := mediaType(catMediaType, filename)
		order, ok := sectorOrder(dskType)
		if !ok {
			fmt.Printf("Unsupported media type: '%s'\n", dskType)
			return
		}

		f, err := os.Open(filename)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer f.Close()
		reader := storage.NewReader(f)

		var disk apple2.Image = dsk.New(reader, order)
		if err := disk.Read(); err != nil {
			fmt.Println("Storage read error!")
			fmt.Println(err)
			os.Exit(1)
		}

		if err := disk.CommandCat(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	catCmd.Flags().StringVarP(&catMediaType, "media", "m", "", `Media type, default: file extension`)
	rootCmd.AddCommand(catCmd)
}
