package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dsk2woz2/apple2"
	"dsk2woz2/apple2/dsk"
	"dsk2woz2/apple2/woz"
	"dsk2woz2/storage"
)

// Exit statuses for the convert command, so scripts can tell input
// problems from output problems.
const (
	exitInputError  = 2
	exitOutputError = 3
)

var convertMediaType string

var convertCmd = &cobra.Command{
	Use:   "convert INPUT OUTPUT",
	Short: "Converts a DSK sector image to a WOZ2 flux image",
	Long: `Reads a 16-sector 5.25" DSK disk image and writes the equivalent WOZ2
flux image, readable by emulators and the Applesauce FDC.

The sector order is taken from the input file extension: '.po' selects
ProDOS ordering, anything else DOS 3.3. Use '--media po' to force it.`,
	Args:                  cobra.ExactArgs(2),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		input, output := args[0], args[1]

		dskType := mediaType(convertMediaType, input)
		order, ok := sectorOrder(dskType)
		if !ok {
			fmt.Printf("Unsupported media type: '%s'\n", dskType)
			os.Exit(exitInputError)
		}

		f, err := os.Open(input)
		if err != nil {
			fmt.Println(err)
			os.Exit(exitInputError)
		}
		defer f.Close()
		reader := storage.NewReader(f)

		disk := dsk.New(reader, order)
		if err := disk.Read(); err != nil {
			fmt.Println("Storage read error!")
			fmt.Println(err)
			os.Exit(exitInputError)
		}

		image := woz.Encode(disk)

		out, err := os.Create(output)
		if err != nil {
			fmt.Println(err)
			os.Exit(exitOutputError)
		}
		defer out.Close()

		writer := storage.NewWriter(out)
		_, err = writer.Write(image)
		if err == nil {
			err = writer.Flush()
		}
		if err != nil {
			fmt.Println("Storage write error!")
			fmt.Println(err)
			os.Exit(exitOutputError)
		}

		fmt.Printf("Wrote %s: %d tracks, %d bytes (%s sector order)\n", output, apple2.TracksPerDisk, len(image), disk.Order)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertMediaType, "media", "m", "", `Media type, default: file extension`)
	rootCmd.AddCommand(convertCmd)
}
