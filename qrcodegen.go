// Package qrcodegen generates and reads QR Code symbols conforming to the
// QR Code Model 2 specification in ISO/IEC 18004.
package qrcodegen

import (
	"fmt"
	"math"

	"github.com/go-qr/qrcore/internal/gf256"
	"github.com/go-qr/qrcore/internal/mathx"
	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/matrix"
	"github.com/go-qr/qrcore/options"
	"github.com/go-qr/qrcore/qrcodeecc"
	"github.com/go-qr/qrcore/qrerror"
	"github.com/go-qr/qrcore/qrsegment"
	"github.com/go-qr/qrcore/version"
)

// ErrDataTooLong is returned when the supplied data does not fit any QR
// Code version.
//
// Ways to handle this exception include:
//
//   - Decrease the error correction level if it was greater than Low.
//   - If EncodeSegmentsAdvanced was called, increase maxversion if it was
//     less than version.Max.
//   - Split the text data into better or optimal segments to reduce the
//     number of bits required.
//   - Change the text or binary data to be shorter.
//   - Propagate the error upward to the caller/user.
var ErrDataTooLong = qrerror.ErrDataOverflow

// alias
type Mask = mask.Mask
type QrCodeEcc = qrcodeecc.QrCodeEcc
type QrSegment = qrsegment.QrSegment
type Version = version.Version

/*---- QrCode functionality ----*/

// QrCode is a QR Code symbol, which is a type of two-dimension barcode.
//
// Invented by Denso Wave and described in the ISO/IEC 18004 standard.
//
// Instances of this struct represent an immutable square grid of dark and
// light cells. Supports all versions (sizes) from 1 to 40, all 4 error
// correction levels, and every character encoding mode including ECI,
// Kanji, and Hanzi.
//
// Ways to create a QR Code object:
//
//   - High level: Take the payload data and call EncodeText or
//     EncodeBinary.
//   - Mid level: Custom-make the list of segments and call
//     EncodeSegments or EncodeSegmentsAdvanced.
//   - Low level: Custom-make the array of data codeword bytes (including
//     segment headers and final padding, excluding error correction
//     codewords), supply the appropriate version number, and call
//     EncodeCodewords.
type QrCode struct {
	version              Version
	size                 int32
	errorcorrectionlevel QrCodeEcc
	mask                 Mask
	grid                 *matrix.Matrix
}

/*---- Static factory functions (high level) ----*/

// EncodeText returns a QR Code representing the given Unicode text string
// at the given error correction level.
func EncodeText(text string, ecl QrCodeEcc) (*QrCode, error) {
	chrs := []rune(text)
	segs, err := qrsegment.MakeSegments(chrs)
	if err != nil {
		return nil, err
	}

	return EncodeSegments(segs, ecl)
}

// EncodeBinary returns a QR Code representing the given binary data at
// the given error correction level, always using byte mode.
func EncodeBinary(data []byte, ecl QrCodeEcc) (*QrCode, error) {
	seg := qrsegment.MakeBytes(data)
	segs := []QrSegment{seg}

	return EncodeSegments(segs, ecl)
}

/*---- Static factory functions (options-driven) ----*/

// Encode returns a QR Code representing the given Unicode text string,
// honoring the version, error correction, mask, mode, quiet zone, and
// inversion choices in opts. If opts.Mode is not auto, the whole payload
// is encoded as a single segment in that mode instead of MakeSegments'
// automatic numeric/alphanumeric/byte selection. This is the
// options.QROptions-driven counterpart to EncodeText.
func Encode(payload string, opts options.QROptions) (*QrCode, error) {
	chrs := []rune(payload)
	var segs []QrSegment
	var err error
	if opts.Mode.Auto {
		segs, err = qrsegment.MakeSegments(chrs)
	} else {
		var seg QrSegment
		seg, err = qrsegment.MakeForMode(opts.Mode.Fixed, chrs)
		segs = []QrSegment{seg}
	}
	if err != nil {
		return nil, err
	}
	return EncodeMulti(segs, opts)
}

// EncodeMulti returns a QR Code representing the given segments, honoring
// the version, error correction, mask, quiet zone, and inversion choices
// in opts. Segments are taken as given, so opts.Mode has no effect here;
// it only applies to Encode, which builds its own segment from a single
// payload string. This is the options.QROptions-driven counterpart to
// EncodeSegments.
func EncodeMulti(segs []QrSegment, opts options.QROptions) (*QrCode, error) {
	opts, err := options.New(opts)
	if err != nil {
		return nil, err
	}

	minver, maxver := opts.MinVersion, version.Max
	if !opts.Version.Auto {
		minver, maxver = opts.Version.Fixed, opts.Version.Fixed
	}
	var msk *Mask
	if !opts.MaskPattern.Auto {
		fixed := opts.MaskPattern.Fixed
		msk = &fixed
	}

	qr, err := EncodeSegmentsAdvanced(segs, opts.EccLevel, minver, maxver, msk, true)
	if err != nil {
		return nil, err
	}

	if opts.LogoSpaceWidth > 0 && opts.LogoSpaceHeight > 0 {
		size := qr.grid.Size()
		w, h := opts.LogoSpaceWidth, opts.LogoSpaceHeight
		if w > size {
			w = size
		}
		if h > size {
			h = size
		}
		qr.grid.SetLogoSpace((size-w)/2, (size-h)/2, w, h)
	}
	if opts.InvertMatrix {
		qr.grid.Invert()
	}
	if opts.AddQuietZone && opts.QuietZoneSize > 0 {
		qr.grid = qr.grid.ExpandQuietZone(opts.QuietZoneSize)
		qr.size = qr.grid.Size()
	}
	return qr, nil
}

/*---- Static factory functions (mid level) ----*/

// EncodeSegments returns a QR Code representing the given segments at the
// given error correction level.
//
// The smallest possible QR Code version is automatically chosen for the
// output. The ECC level of the result may be higher than the ecl argument
// if it can be done without increasing the version.
func EncodeSegments(segs []QrSegment, ecl QrCodeEcc) (*QrCode, error) {
	return EncodeSegmentsAdvanced(segs, ecl, version.Min, version.Max, nil, true)
}

// EncodeSegmentsAdvanced returns a QR Code representing the given
// segments with the given encoding parameters.
//
// The smallest possible QR Code version within the given range is
// automatically chosen for the output. Iff boostecl is true, the ECC
// level of the result may be higher than the ecl argument if it can be
// done without increasing the version. The mask is either a forced value
// or nil to automatically choose an appropriate mask (which may be slow).
func EncodeSegmentsAdvanced(
	segs []QrSegment,
	ecl QrCodeEcc,
	minversion Version,
	maxversion Version,
	msk *Mask,
	boostecl bool,
) (*QrCode, error) {
	if minversion.Value() > maxversion.Value() {
		panic("Invalid value")
	}

	ver := minversion
	var datausedbits uint
	for {
		datacapacitybits := ver.NumDataCodewords(ecl) * 8
		dataused := qrsegment.GetTotalBits(segs, ver)

		fits := dataused != nil && *dataused <= datacapacitybits

		if fits {
			datausedbits = *dataused
			break
		} else if ver.Value() >= maxversion.Value() {
			if dataused == nil {
				return nil, fmt.Errorf("%w: segment too long", ErrDataTooLong)
			}
			return nil, fmt.Errorf("%w: data length = %v bits, max capacity = %v bits", ErrDataTooLong, *dataused, datacapacitybits)
		} else {
			ver = version.New(ver.Value() + 1)
		}
	}

	for _, newecl := range []QrCodeEcc{qrcodeecc.Medium, qrcodeecc.Quartile, qrcodeecc.High} {
		if boostecl && datausedbits <= ver.NumDataCodewords(newecl)*8 {
			ecl = newecl
		}
	}

	bb := qrsegment.NewBitBuffer()
	for _, seg := range segs {
		seg.Write(bb, ver)
	}
	if bb.GetLength() != datausedbits {
		panic("bb.GetLength() != datausedbits")
	}

	datacapacitybits := ver.NumDataCodewords(ecl) * 8
	if bb.GetLength() > datacapacitybits {
		panic("bb.GetLength() > datacapacitybits")
	}
	numzerobits := mathx.MinUint(4, datacapacitybits-bb.GetLength())
	bb.Put(0, uint8(numzerobits))

	numzerobits = (8 - bb.GetLength()%8) % 8
	bb.Put(0, uint8(numzerobits))
	if bb.GetLength()%8 != 0 {
		panic("bb.GetLength()%8 != 0")
	}

	for _, padByte := range cyclePadBytes(datacapacitybits - bb.GetLength()) {
		bb.Put(padByte, 8)
	}

	datacodewords := bb.GetBuffer()

	return EncodeCodewords(ver, ecl, datacodewords, msk), nil
}

func cyclePadBytes(remainingBits uint) []uint32 {
	pattern := []uint32{0xEC, 0x11}
	numBytes := remainingBits / 8
	out := make([]uint32, numBytes)
	for i := range out {
		out[i] = pattern[i%2]
	}
	return out
}

/*---- Constructor (low level) ----*/

// EncodeCodewords creates a new QR Code with the given version number,
// error correction level, data codeword bytes, and mask number.
//
// This is a low-level API that most users should not use directly. A
// mid-level API is EncodeSegments.
func EncodeCodewords(ver Version, ecl QrCodeEcc, datacodewords []byte, msk *Mask) *QrCode {
	grid := matrix.New(ver)
	allcodewords := addEccAndInterleave(ver, ecl, datacodewords)
	grid.DrawCodewords(allcodewords)

	if msk == nil {
		minpenalty := int32(math.MaxInt32)
		var best Mask
		for _, candidate := range mask.All() {
			grid.ApplyMask(candidate)
			grid.DrawFormatBits(ecl.FormatBits(), candidate)
			penalty := grid.PenaltyScore()
			if penalty < minpenalty {
				best = candidate
				minpenalty = penalty
			}
			grid.ApplyMask(candidate) // Undoes the mask due to XOR
		}
		msk = &best
	}
	grid.ApplyMask(*msk)
	grid.DrawFormatBits(ecl.FormatBits(), *msk)

	return &QrCode{
		version:              ver,
		size:                 ver.Size(),
		errorcorrectionlevel: ecl,
		mask:                 *msk,
		grid:                 grid,
	}
}

/*---- Public methods ----*/

// Version returns this QR Code's version, in the range [1, 40].
func (q QrCode) Version() Version {
	return q.version
}

// Size returns this QR Code's size, in the range [21, 177].
func (q QrCode) Size() int32 {
	return q.size
}

// ErrorCorrectionLevel returns this QR Code's error correction level.
func (q QrCode) ErrorCorrectionLevel() QrCodeEcc {
	return q.errorcorrectionlevel
}

// Mask returns this QR Code's mask, in the range [0, 7].
func (q QrCode) Mask() Mask {
	return q.mask
}

// GetModule returns the color of the module (pixel) at the given
// coordinates, which is false for light or true for dark.
//
// The top left corner has the coordinates (x=0, y=0). If the given
// coordinates are out of bounds, then false (light) is returned.
func (q QrCode) GetModule(x, y int32) bool {
	return q.grid.Get(x, y)
}

// Grid returns the underlying tagged module matrix, for callers (such as
// the render and decoder packages) that need more than simple color
// lookups.
func (q QrCode) Grid() *matrix.Matrix {
	return q.grid
}

/*---- Private helper functions: codewords ----*/

// addEccAndInterleave returns a new byte slice representing the given
// data with the appropriate error correction codewords appended, split
// and interleaved across blocks per ISO/IEC 18004 section 7.5.
func addEccAndInterleave(ver Version, ecl QrCodeEcc, data []byte) []byte {
	if uint(len(data)) != ver.NumDataCodewords(ecl) {
		panic("Illegal argument")
	}

	numblocks := ver.NumErrorCorrectionBlocks(ecl)
	blockecclen := ver.EccCodewordsPerBlock(ecl)
	rawcodewords := ver.NumRawDataModules() / 8
	numshortblocks := numblocks - (rawcodewords % numblocks)
	shortblocklen := rawcodewords / numblocks

	blocks := make([][]byte, 0, numblocks)
	generator := gf256.GeneratorPolynomial(int(blockecclen))

	var k uint
	for i, max := uint(0), numblocks; i < max; i++ {
		datlen := shortblocklen - blockecclen + uint(mathx.BoolToUint(i >= numshortblocks))
		dat := make([]byte, datlen)
		copy(dat, data[k:k+datlen])
		k += datlen
		ecc := gf256.ComputeRemainder(dat, generator)

		if i < numshortblocks {
			dat = append(dat, 0)
		}
		dat = append(dat, ecc...)
		blocks = append(blocks, dat)
	}

	result := make([]byte, 0, rawcodewords)
	for i, max := uint(0), shortblocklen+1; i < max; i++ {
		for j, block := range blocks {
			if i != shortblocklen-blockecclen || uint(j) >= numshortblocks {
				result = append(result, block[i])
			}
		}
	}

	return result
}
