// Package imaging defines the minimal source interface the decoder needs
// to pull sample data from an external image, without taking on the job
// of locating a symbol in a photograph or binarizing its pixels — that
// belongs to a scanner front end built on top of this library.
package imaging

import (
	"fmt"
	"os"
)

// LuminanceSource exposes grayscale pixel data for a rectangular image.
// Implementations are expected to be backed by a decoded image (PNG,
// JPEG) or a raw sensor frame.
type LuminanceSource interface {
	// Width returns the image width in pixels.
	Width() int
	// Height returns the image height in pixels.
	Height() int
	// Row returns the grayscale luminance values (0 = black, 255 = white)
	// of the given row, most significant use case being a row-at-a-time
	// binarizer that never needs the whole image in memory at once.
	Row(y int) []byte
	// Matrix returns the full image as a single contiguous row-major
	// byte slice, width*height long.
	Matrix() []byte
}

// byteLuminanceSource is a LuminanceSource backed by an in-memory byte
// slice, such as a fully decoded image or a caller-supplied test fixture.
type byteLuminanceSource struct {
	width, height int
	data          []byte
}

// NewFromBytes returns a LuminanceSource over a pre-decoded grayscale
// image. data must be width*height bytes, row-major.
func NewFromBytes(width, height int, data []byte) LuminanceSource {
	return &byteLuminanceSource{width: width, height: height, data: data}
}

func (s *byteLuminanceSource) Width() int  { return s.width }
func (s *byteLuminanceSource) Height() int { return s.height }

func (s *byteLuminanceSource) Row(y int) []byte {
	start := y * s.width
	return s.data[start : start+s.width]
}

func (s *byteLuminanceSource) Matrix() []byte {
	return s.data
}

// NewFromFile returns a LuminanceSource reading a raw row-major grayscale
// file (no container format: a PNG/JPEG decoder is a scanner front end's
// concern, not this package's). The file must be exactly width*height
// bytes.
func NewFromFile(path string, width, height int) (LuminanceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: reading %q: %w", path, err)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("imaging: %q has %d bytes, want %d for %dx%d", path, len(data), width*height, width, height)
	}
	return &byteLuminanceSource{width: width, height: height, data: data}, nil
}
