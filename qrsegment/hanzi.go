package qrsegment

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// hanziSubsetGB2312 is the only subset indicator this package emits: the
// GB2312 two-byte range used by ISO/IEC 18004's Hanzi mode extension. A
// conformant reader must still accept other subset values, but nothing
// forces a writer to produce them.
const hanziSubsetGB2312 = 1

// packHanzi validates that text is encodable as GB2312 double-byte
// characters and returns each character's packed 13-bit value. GB18030 is
// used for the byte transcoding since it is a strict superset of GB2312
// over the two-byte range; characters that need a GBK extension or
// four-byte GB18030 sequence fall outside the subset and are rejected.
func packHanzi(text []rune) ([]uint16, error) {
	enc := simplifiedchinese.GB18030.NewEncoder()
	codes := make([]uint16, 0, len(text))
	for _, r := range text {
		gb, err := enc.String(string(r))
		if err != nil || len(gb) != 2 {
			return nil, fmt.Errorf("%w: %q is not encodable in GB2312", qrerror.ErrIllegalCharacter, r)
		}
		code := uint16(gb[0])<<8 | uint16(gb[1])
		packed, ok := packHanziCode(code)
		if !ok {
			return nil, fmt.Errorf("%w: %q falls outside the GB2312 two-byte range", qrerror.ErrIllegalCharacter, r)
		}
		codes = append(codes, packed)
	}
	return codes, nil
}

// packHanziCode packs a raw big-endian GB2312 code point into its 13-bit QR
// representation, per GB/T 18284: codes in 0xA1A1-0xAAFE subtract 0xA1A1,
// codes in 0xB0A1-0xFAFE subtract 0xA6A1, then the two remaining bytes fold
// as high*0x60 + low.
func packHanziCode(code uint16) (uint16, bool) {
	var offset uint16
	switch {
	case code >= 0xA1A1 && code <= 0xAAFE:
		offset = 0xA1A1
	case code >= 0xB0A1 && code <= 0xFAFE:
		offset = 0xA6A1
	default:
		return 0, false
	}
	reduced := code - offset
	high := reduced >> 8
	low := reduced & 0xFF
	if low > 0x5D {
		return 0, false
	}
	return high*0x60 + low, true
}

// unpackHanziCode is the inverse of packHanziCode. The two subtraction
// ranges split cleanly at a folded high byte of 10: range one tops out at
// 0xAAFE-0xA1A1 = 0x095D, range two starts at 0xB0A1-0xA6A1 = 0x0A00.
func unpackHanziCode(packed uint16) uint16 {
	high := packed / 0x60
	low := packed % 0x60
	reduced := high<<8 | low
	if high < 10 {
		return reduced + 0xA1A1
	}
	return reduced + 0xA6A1
}

// decodeHanziCodes unpacks count 13-bit codes and transcodes them from
// GB2312 into a Go string.
func decodeHanziCodes(codes []uint16) (string, error) {
	dec := simplifiedchinese.GB18030.NewDecoder()
	buf := make([]byte, 0, len(codes)*2)
	for _, packed := range codes {
		raw := unpackHanziCode(packed)
		buf = append(buf, byte(raw>>8), byte(raw))
	}
	out, err := dec.Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("%w: invalid GB2312 byte sequence", qrerror.ErrIllegalCharacter)
	}
	return string(out), nil
}
