// Buffered access to disk image files
package storage

import (
	"bufio"
	"os"
)

// Reader wraps the opened media file with a buffered reader.
type Reader struct {
	*bufio.Reader
}

func NewReader(file *os.File) *Reader {
	return &Reader{bufio.NewReader(file)}
}

// Writer wraps the output media file with a buffered writer.
// Flush must be called before the file is closed.
type Writer struct {
	*bufio.Writer
}

func NewWriter(file *os.File) *Writer {
	return &Writer{bufio.NewWriter(file)}
}
