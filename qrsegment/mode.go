package qrsegment

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
	"github.com/go-qr/qrcore/version"
)

/*---- QrSegmentMode functionality ----*/

// QrSegmentMode describes how a segment's data bits are interpreted.
type QrSegmentMode uint32

const (
	ModeNumeric QrSegmentMode = iota
	ModeAlphanumeric
	ModeByte
	ModeKanji
	ModeHanzi
	ModeEci
)

// ModeBits returns an unsigned 4-bit integer value (range 0 to 15)
// representing the mode indicator bits for this mode object.
func (m QrSegmentMode) ModeBits() uint32 {
	switch m {
	case ModeNumeric:
		return 0x1
	case ModeAlphanumeric:
		return 0x2
	case ModeByte:
		return 0x4
	case ModeKanji:
		return 0x8
	case ModeHanzi:
		return 0xD
	case ModeEci:
		return 0x7
	default:
		panic("unknown QrSegmentMode")
	}
}

// ModeFromBits is the inverse of ModeBits, used by the decoder's mode loop.
// 0b0000 is the terminator and is not a QrSegmentMode; callers must check
// for it before calling ModeFromBits.
func ModeFromBits(bits uint32) (QrSegmentMode, error) {
	switch bits {
	case 0x1:
		return ModeNumeric, nil
	case 0x2:
		return ModeAlphanumeric, nil
	case 0x4:
		return ModeByte, nil
	case 0x8:
		return ModeKanji, nil
	case 0xD:
		return ModeHanzi, nil
	case 0x7:
		return ModeEci, nil
	default:
		return 0, fmt.Errorf("%w: %#x", qrerror.ErrUnknownMode, bits)
	}
}

// NumCharCountBits returns the bit width of the character count field for a segment in this mode
// in a QR Code at the given version number. The result is in the range [0, 16].
func (m QrSegmentMode) NumCharCountBits(ver version.Version) uint8 {
	var tmp [3]uint8

	switch m {
	case ModeNumeric:
		tmp = [3]uint8{10, 12, 14}
	case ModeAlphanumeric:
		tmp = [3]uint8{9, 11, 13}
	case ModeByte:
		tmp = [3]uint8{8, 16, 16}
	case ModeKanji:
		tmp = [3]uint8{8, 10, 12}
	case ModeHanzi:
		tmp = [3]uint8{8, 10, 12}
	case ModeEci:
		tmp = [3]uint8{0, 0, 0}
	default:
		panic("unknown QrSegmentMode")
	}

	idx := (ver.Value() + 7) / 17
	return tmp[idx]
}
