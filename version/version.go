// Package version models a QR Code version number (1-40) and the
// per-version tables from ISO/IEC 18004 that the rest of the library
// derives its geometry and capacity from: module count, alignment pattern
// centers, and error-correction block layout.
package version

import (
	"fmt"

	"github.com/go-qr/qrcore/qrcodeecc"
	"github.com/go-qr/qrcore/qrerror"
)

// Version is a number between 1 and 40 (inclusive).
type Version uint8

const (
	// Min is the minimum version number supported in the QR Code Model 2 standard.
	Min = Version(1)
	// Max is the maximum version number supported in the QR Code Model 2 standard.
	Max = Version(40)
)

// New creates a version object from the given number.
//
// Panics if the number is outside the range [1, 40].
func New(ver uint8) Version {
	if ver < uint8(Min) || ver > uint8(Max) {
		panic("Version number out of range")
	}

	return Version(ver)
}

// Parse creates a version object, returning qrerror.ErrInvalidVersion
// instead of panicking when out of range.
func Parse(ver int) (Version, error) {
	if ver < int(Min) || ver > int(Max) {
		return 0, fmt.Errorf("%w: %d", qrerror.ErrInvalidVersion, ver)
	}
	return Version(ver), nil
}

// Value returns the value, which is in the range [1, 40].
func (v Version) Value() uint8 {
	return uint8(v)
}

// Size returns this version's module count (width and height), in the
// range [21, 177].
func (v Version) Size() int32 {
	return int32(v.Value())*4 + 17
}

// AlignmentPatternPositions returns an ascending list of the alignment
// pattern center coordinates for this version, used on both the x and y
// axes. The result is empty for version 1, which has no alignment
// patterns.
func (v Version) AlignmentPatternPositions() []int32 {
	ver := v.Value()
	if ver == 1 {
		return []int32{}
	}

	size := v.Size()
	numalign := int32(ver)/7 + 2
	var step int32
	if ver == 32 {
		step = 26
	} else {
		step = (int32(ver)*4 + numalign*2 + 1) / (numalign*2 - 2) * 2
	}
	result := make([]int32, numalign)
	for i := int32(0); i < numalign-1; i++ {
		result[i] = size - 7 - i*step
	}
	result[numalign-1] = 6

	inverted := make([]int32, numalign)
	for i, val := range result {
		inverted[numalign-1-int32(i)] = val
	}
	return inverted
}

// NumRawDataModules returns the number of data bits that can be stored in a
// QR Code of this version, after all function modules are excluded. This
// includes remainder bits, so it might not be a multiple of 8. The result
// is in the range [208, 29648].
func (v Version) NumRawDataModules() uint {
	ver := uint(v.Value())
	result := (16*ver+128)*ver + 64
	if ver >= 2 {
		numalign := ver/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if ver >= 7 {
			result -= 36
		}
	}
	if result < 208 || result > 29648 {
		panic("gave an impossible raw data module count")
	}
	return result
}

// NumDataCodewords returns the number of 8-bit data (non-EC) codewords
// contained in a QR Code of this version and error correction level, with
// remainder bits discarded.
func (v Version) NumDataCodewords(ecl qrcodeecc.QrCodeEcc) uint {
	return v.NumRawDataModules()/8 - v.EccCodewordsPerBlock(ecl)*v.NumErrorCorrectionBlocks(ecl)
}

// EccCodewordsPerBlock returns the number of error correction codewords
// assigned to each block at this version and error correction level.
func (v Version) EccCodewordsPerBlock(ecl qrcodeecc.QrCodeEcc) uint {
	return tableGet(eccCodewordsPerBlock, v, ecl)
}

// NumErrorCorrectionBlocks returns the number of error correction blocks at
// this version and error correction level.
func (v Version) NumErrorCorrectionBlocks(ecl qrcodeecc.QrCodeEcc) uint {
	return tableGet(numErrorCorrectionBlocks, v, ecl)
}

func tableGet(table [4][41]int8, v Version, ecl qrcodeecc.QrCodeEcc) uint {
	return uint(table[ecl.Ordinal()][uint(v.Value())])
}

var (
	eccCodewordsPerBlock = [4][41]int8{
		// Version: (index 0 is padding, set to an illegal value)
		// 0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40    Error correction level
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	numErrorCorrectionBlocks = [4][41]int8{
		// Version: (index 0 is padding, set to an illegal value)
		// 0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40    Error correction level
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}
)

// ForDimension returns the version whose module count matches dimension
// (17 + 4*version), used by the decoder when it only knows the matrix
// size. Returns qrerror.ErrInvalidVersion if dimension doesn't correspond
// to a valid version.
func ForDimension(dimension int32) (Version, error) {
	if (dimension-17)%4 != 0 {
		return 0, fmt.Errorf("%w: dimension %d is not 17+4v", qrerror.ErrInvalidVersion, dimension)
	}
	v := (dimension - 17) / 4
	return Parse(int(v))
}
