// Package eci maps Extended Channel Interpretation designator values (AIM
// ECI, as referenced by ISO/IEC 18004 section 7.4.2) to the text encodings
// they name, so byte mode segments following an ECI designator can be
// transcoded to Go strings.
package eci

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Designator values assigned by the AIM ECI registry that this library
// knows how to transcode. Values not listed here (for example CP437 or
// ISO 8859-1 "GLI", assignments 0 and 2) are passed through as raw bytes:
// see Decode.
const (
	ISO8859_1 uint32 = 3
	ISO8859_2 uint32 = 4
	ISO8859_3 uint32 = 5
	ISO8859_4 uint32 = 6
	ISO8859_5 uint32 = 7
	ISO8859_6 uint32 = 8
	ISO8859_7 uint32 = 9
	ISO8859_8 uint32 = 10
	ISO8859_9 uint32 = 11
	ShiftJIS  uint32 = 20
	UTF16BE   uint32 = 25
	UTF8      uint32 = 26
	GB18030   uint32 = 29
)

var registry = map[uint32]encoding.Encoding{
	ISO8859_1: charmap.ISO8859_1,
	ISO8859_2: charmap.ISO8859_2,
	ISO8859_3: charmap.ISO8859_3,
	ISO8859_4: charmap.ISO8859_4,
	ISO8859_5: charmap.ISO8859_5,
	ISO8859_6: charmap.ISO8859_6,
	ISO8859_7: charmap.ISO8859_7,
	ISO8859_8: charmap.ISO8859_8,
	ISO8859_9: charmap.ISO8859_9,
	ShiftJIS:  japanese.ShiftJIS,
	UTF16BE:   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	GB18030:   simplifiedchinese.GB18030,
}

// Lookup returns the registered encoding for designator id, if any.
func Lookup(id uint32) (encoding.Encoding, bool) {
	enc, ok := registry[id]
	return enc, ok
}

// Decode transcodes data according to the charset named by designator id
// into a Go string. UTF-8 (id 26) and any designator this package doesn't
// recognize are passed through unchanged, matching a reader's obligation
// under ISO/IEC 18004 to not discard data under an ECI it cannot
// interpret.
func Decode(id uint32, data []byte) (string, error) {
	if id == UTF8 {
		return string(data), nil
	}
	enc, ok := Lookup(id)
	if !ok {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: ECI %d transcoding failed", qrerror.ErrIllegalCharacter, id)
	}
	return string(out), nil
}

// Encode transcodes s into the charset named by designator id. UTF-8 and
// unrecognized designators are passed through as the string's raw UTF-8
// bytes.
func Encode(id uint32, s string) ([]byte, error) {
	if id == UTF8 {
		return []byte(s), nil
	}
	enc, ok := Lookup(id)
	if !ok {
		return []byte(s), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not encodable under ECI %d", qrerror.ErrIllegalCharacter, s, id)
	}
	return out, nil
}
