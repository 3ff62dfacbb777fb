package qrsegment

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
	"golang.org/x/text/encoding/japanese"
)

// packKanji validates that text is encodable in Shift-JIS within the QR
// Kanji mode ranges (0x8140-0x9FFC and 0xE040-0xEBBF) and returns each
// character's packed 13-bit value.
func packKanji(text []rune) ([]uint16, error) {
	enc := japanese.ShiftJIS.NewEncoder()
	codes := make([]uint16, 0, len(text))
	for _, r := range text {
		sjis, err := enc.String(string(r))
		if err != nil || len(sjis) != 2 {
			return nil, fmt.Errorf("%w: %q is not encodable in Shift-JIS", qrerror.ErrIllegalCharacter, r)
		}
		code := uint16(sjis[0])<<8 | uint16(sjis[1])
		packed, ok := packKanjiCode(code)
		if !ok {
			return nil, fmt.Errorf("%w: %q falls outside the Kanji mode ranges", qrerror.ErrIllegalCharacter, r)
		}
		codes = append(codes, packed)
	}
	return codes, nil
}

// packKanjiCode packs a raw big-endian Shift-JIS code point into its 13-bit
// QR representation, per ISO/IEC 18004 section 8.4.5.
func packKanjiCode(code uint16) (uint16, bool) {
	var offset uint16
	switch {
	case code >= 0x8140 && code <= 0x9FFC:
		offset = 0x8140
	case code >= 0xE040 && code <= 0xEBBF:
		offset = 0xC140
	default:
		return 0, false
	}
	reduced := code - offset
	high := reduced >> 8
	low := reduced & 0xFF
	return high*0xC0 + low, true
}

// unpackKanjiCode is the inverse of packKanjiCode.
func unpackKanjiCode(packed uint16) uint16 {
	high := packed / 0xC0
	low := packed % 0xC0
	reduced := high<<8 | low
	if reduced < 0x1F00 {
		return reduced + 0x8140
	}
	return reduced + 0xC140
}

// decodeKanjiCodes unpacks the given 13-bit codes and transcodes them from
// Shift-JIS into a Go string.
func decodeKanjiCodes(codes []uint16) (string, error) {
	dec := japanese.ShiftJIS.NewDecoder()
	buf := make([]byte, 0, len(codes)*2)
	for _, packed := range codes {
		raw := unpackKanjiCode(packed)
		buf = append(buf, byte(raw>>8), byte(raw))
	}
	out, err := dec.Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("%w: invalid Shift-JIS byte sequence", qrerror.ErrIllegalCharacter)
	}
	return string(out), nil
}
