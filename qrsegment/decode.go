package qrsegment

import (
	"fmt"
	"strings"

	"github.com/go-qr/qrcore/qrerror"
)

// DecodeNumeric reads numchars digits from bb, encoded as described for
// MakeNumeric, and returns them as a string of ASCII digits.
func DecodeNumeric(bb *BitBuffer, numchars uint) (string, error) {
	var sb strings.Builder
	remaining := numchars
	for remaining >= 3 {
		v, err := bb.Read(10)
		if err != nil {
			return "", err
		}
		if v >= 1000 {
			return "", fmt.Errorf("%w: numeric group %d out of range", qrerror.ErrIllegalCharacter, v)
		}
		fmt.Fprintf(&sb, "%03d", v)
		remaining -= 3
	}
	switch remaining {
	case 1:
		v, err := bb.Read(4)
		if err != nil {
			return "", err
		}
		if v >= 10 {
			return "", fmt.Errorf("%w: numeric digit %d out of range", qrerror.ErrIllegalCharacter, v)
		}
		fmt.Fprintf(&sb, "%d", v)
	case 2:
		v, err := bb.Read(7)
		if err != nil {
			return "", err
		}
		if v >= 100 {
			return "", fmt.Errorf("%w: numeric group %d out of range", qrerror.ErrIllegalCharacter, v)
		}
		fmt.Fprintf(&sb, "%02d", v)
	}
	return sb.String(), nil
}

// DecodeAlphanumeric reads numchars characters from bb, encoded as
// described for MakeAlphanumeric, and returns them as a string.
func DecodeAlphanumeric(bb *BitBuffer, numchars uint) (string, error) {
	var sb strings.Builder
	remaining := numchars
	for remaining >= 2 {
		v, err := bb.Read(11)
		if err != nil {
			return "", err
		}
		if v >= 45*45 {
			return "", fmt.Errorf("%w: alphanumeric pair %d out of range", qrerror.ErrIllegalCharacter, v)
		}
		sb.WriteRune(ALPHANUMERIC_CHARSET[v/45])
		sb.WriteRune(ALPHANUMERIC_CHARSET[v%45])
		remaining -= 2
	}
	if remaining == 1 {
		v, err := bb.Read(6)
		if err != nil {
			return "", err
		}
		if v >= 45 {
			return "", fmt.Errorf("%w: alphanumeric char %d out of range", qrerror.ErrIllegalCharacter, v)
		}
		sb.WriteRune(ALPHANUMERIC_CHARSET[v])
	}
	return sb.String(), nil
}

// DecodeByte reads numbytes raw bytes from bb.
func DecodeByte(bb *BitBuffer, numbytes uint) ([]byte, error) {
	out := make([]byte, numbytes)
	for i := range out {
		v, err := bb.Read(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

// DecodeKanji reads numchars packed 13-bit Kanji codes from bb and
// transcodes them from Shift-JIS into a string.
func DecodeKanji(bb *BitBuffer, numchars uint) (string, error) {
	codes := make([]uint16, numchars)
	for i := range codes {
		v, err := bb.Read(13)
		if err != nil {
			return "", err
		}
		codes[i] = uint16(v)
	}
	return decodeKanjiCodes(codes)
}

// DecodeHanzi reads the 4-bit subset indicator followed by numchars
// packed 13-bit GB2312 codes from bb and transcodes them into a string.
func DecodeHanzi(bb *BitBuffer, numchars uint) (string, error) {
	subset, err := bb.Read(4)
	if err != nil {
		return "", err
	}
	if subset != hanziSubsetGB2312 {
		return "", fmt.Errorf("%w: unsupported Hanzi subset %d", qrerror.ErrInvalidSubset, subset)
	}
	codes := make([]uint16, numchars)
	for i := range codes {
		v, err := bb.Read(13)
		if err != nil {
			return "", err
		}
		codes[i] = uint16(v)
	}
	return decodeHanziCodes(codes)
}

// DecodeEciValue reads an ECI designator value from bb, following the
// 1/2/3-byte patterns written by writeEci.
func DecodeEciValue(bb *BitBuffer) (uint32, error) {
	first, err := bb.Read(8)
	if err != nil {
		return 0, err
	}
	switch {
	case first>>7 == 0:
		return first, nil
	case first>>6 == 0b10:
		rest, err := bb.Read(8)
		if err != nil {
			return 0, err
		}
		return (first&0x3F)<<8 | rest, nil
	case first>>5 == 0b110:
		rest, err := bb.Read(16)
		if err != nil {
			return 0, err
		}
		return (first&0x1F)<<16 | rest, nil
	default:
		return 0, fmt.Errorf("%w: malformed leading byte %#x", qrerror.ErrInvalidEciDesignator, first)
	}
}
