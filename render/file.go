package render

import (
	"fmt"
	"os"

	"github.com/go-qr/qrcore/qrerror"
)

// WriteFile writes data to path, wrapping any failure (including a short
// write) in qrerror.ErrCannotWriteFile.
func WriteFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", qrerror.ErrCannotWriteFile, err)
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %v", qrerror.ErrCannotWriteFile, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", qrerror.ErrCannotWriteFile, n, len(data))
	}
	return nil
}
