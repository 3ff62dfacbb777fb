package qrsegment

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
	"github.com/go-qr/qrcore/version"
)

// The set of all legal characters in alphanumeric mode,
// where each character value maps to the index in the string.
var (
	ALPHANUMERIC_CHARSET = [45]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		' ', '$', '%', '*', '+', '-', '.', '/', ':'}
	alphanumericCharset = make(map[rune]int, 45)
)

func init() {
	for i, c := range ALPHANUMERIC_CHARSET {
		alphanumericCharset[c] = i
	}
}

/*---- QrSegment functionality ----*/

// QrSegment is a segment of character/binary/control data in a QR Code
// symbol.
//
// Instances of this struct are immutable. Unlike a bit-buffer-backed
// segment, this one keeps its payload in its natural representation
// (runes, bytes, or packed codes) and defers bit encoding to Write, so
// that the same segment value can report its LengthInBits for a
// candidate version before any bits are actually produced.
//
// This struct imposes no length restrictions, but QR Codes have
// restrictions. Even in the most favorable conditions, a QR Code can only
// hold 7089 characters of data. Any segment longer than this is
// meaningless for the purpose of generating QR Codes.
type QrSegment struct {
	mode     QrSegmentMode
	numchars uint
	runes    []rune   // numeric, alphanumeric
	bytes    []byte   // byte mode
	codes    []uint16 // kanji, hanzi (packed 13-bit values)
	eciValue uint32   // eci mode
}

/*---- Static factory functions (mid level) ----*/

// MakeBytes returns a segment representing the given binary data encoded
// in byte mode. All input byte slices are acceptable.
func MakeBytes(data []byte) QrSegment {
	b := make([]byte, len(data))
	copy(b, data)
	return QrSegment{mode: ModeByte, numchars: uint(len(data)), bytes: b}
}

// MakeNumeric returns a segment representing the given string of decimal
// digits encoded in numeric mode.
//
// Returns qrerror.ErrIllegalCharacter if the string contains a non-digit.
func MakeNumeric(text []rune) (QrSegment, error) {
	for _, c := range text {
		if c < '0' || c > '9' {
			return QrSegment{}, fmt.Errorf("%w: %q is not a digit", qrerror.ErrIllegalCharacter, c)
		}
	}
	r := make([]rune, len(text))
	copy(r, text)
	return QrSegment{mode: ModeNumeric, numchars: uint(len(text)), runes: r}, nil
}

// MakeAlphanumeric returns a segment representing the given text string
// encoded in alphanumeric mode.
//
// The characters allowed are: 0 to 9, A to Z (uppercase only), space,
// dollar, percent, asterisk, plus, hyphen, period, slash, colon.
//
// Returns qrerror.ErrIllegalCharacter if the string contains a character
// outside that set.
func MakeAlphanumeric(text []rune) (QrSegment, error) {
	for _, c := range text {
		if _, ok := alphanumericCharset[c]; !ok {
			return QrSegment{}, fmt.Errorf("%w: %q is not valid in alphanumeric mode", qrerror.ErrIllegalCharacter, c)
		}
	}
	r := make([]rune, len(text))
	copy(r, text)
	return QrSegment{mode: ModeAlphanumeric, numchars: uint(len(text)), runes: r}, nil
}

// MakeKanji returns a segment representing the given text encoded in
// Kanji mode, where every character must be encodable as a double-byte
// Shift-JIS character in the ranges the QR Code standard assigns to Kanji
// mode.
func MakeKanji(text []rune) (QrSegment, error) {
	codes, err := packKanji(text)
	if err != nil {
		return QrSegment{}, err
	}
	return QrSegment{mode: ModeKanji, numchars: uint(len(text)), codes: codes}, nil
}

// MakeHanzi returns a segment representing the given text encoded in
// Hanzi mode, where every character must be encodable as a GB2312
// double-byte character.
func MakeHanzi(text []rune) (QrSegment, error) {
	codes, err := packHanzi(text)
	if err != nil {
		return QrSegment{}, err
	}
	return QrSegment{mode: ModeHanzi, numchars: uint(len(text)), codes: codes}, nil
}

// MakeSegments returns a list of zero or more segments to represent the
// given Unicode text string.
//
// The result is a single segment in numeric, alphanumeric, or byte mode,
// the first of those that can represent the whole text; modes are not
// switched within the text.
func MakeSegments(text []rune) ([]QrSegment, error) {
	if len(text) == 0 {
		return []QrSegment{}, nil
	}

	var seg QrSegment
	var err error
	switch {
	case IsNumeric(text):
		seg, err = MakeNumeric(text)
	case IsAlphanumeric(text):
		seg, err = MakeAlphanumeric(text)
	default:
		seg = MakeBytes([]byte(string(text)))
	}
	if err != nil {
		return nil, err
	}

	return []QrSegment{seg}, nil
}

// MakeForMode returns a single segment encoding all of text in the given
// mode, bypassing MakeSegments' automatic mode selection. mode must be one
// of Numeric, Alphanumeric, Byte, Kanji, or Hanzi; Eci is not a selectable
// payload mode and returns qrerror.ErrUnknownMode, as does any other
// value.
//
// Returns qrerror.ErrIllegalCharacter if text contains a character the
// chosen mode cannot represent.
func MakeForMode(mode QrSegmentMode, text []rune) (QrSegment, error) {
	switch mode {
	case ModeNumeric:
		return MakeNumeric(text)
	case ModeAlphanumeric:
		return MakeAlphanumeric(text)
	case ModeByte:
		return MakeBytes([]byte(string(text))), nil
	case ModeKanji:
		return MakeKanji(text)
	case ModeHanzi:
		return MakeHanzi(text)
	default:
		return QrSegment{}, fmt.Errorf("%w: %v cannot be forced for a payload", qrerror.ErrUnknownMode, mode)
	}
}

// MakeEci returns a segment representing an Extended Channel
// Interpretation (ECI) designator with the given assignment value.
//
// Returns qrerror.ErrInvalidEciDesignator if assignval is out of the ECI
// designator range.
func MakeEci(assignval uint32) (QrSegment, error) {
	if assignval >= 1_000_000 {
		return QrSegment{}, fmt.Errorf("%w: assignment value %d out of range", qrerror.ErrInvalidEciDesignator, assignval)
	}
	return QrSegment{mode: ModeEci, eciValue: assignval}, nil
}

/*---- Instance field getters ----*/

// Mode returns the mode indicator of this segment.
func (s QrSegment) Mode() QrSegmentMode {
	return s.mode
}

// NumChars returns the character count field of this segment.
func (s QrSegment) NumChars() uint {
	return s.numchars
}

// Runes returns the unencoded numeric or alphanumeric text of this
// segment, or nil if the segment isn't in one of those modes.
func (s QrSegment) Runes() []rune {
	return s.runes
}

// Bytes returns the raw payload of a byte mode segment, or nil otherwise.
func (s QrSegment) Bytes() []byte {
	return s.bytes
}

// EciValue returns the designator value of an ECI segment.
func (s QrSegment) EciValue() uint32 {
	return s.eciValue
}

/*---- Bit length and encoding ----*/

// payloadBits returns the number of bits this segment's payload occupies,
// not counting the mode indicator or character count field.
func (s QrSegment) payloadBits() uint {
	switch s.mode {
	case ModeNumeric:
		n := uint(len(s.runes))
		full, rem := n/3, n%3
		remBits := [3]uint{0, 4, 7}
		return full*10 + remBits[rem]
	case ModeAlphanumeric:
		n := uint(len(s.runes))
		return (n/2)*11 + (n%2)*6
	case ModeByte:
		return uint(len(s.bytes)) * 8
	case ModeKanji:
		return uint(len(s.codes)) * 13
	case ModeHanzi:
		return 4 + uint(len(s.codes))*13
	case ModeEci:
		switch {
		case s.eciValue < (1 << 7):
			return 8
		case s.eciValue < (1 << 14):
			return 16
		default:
			return 24
		}
	default:
		panic("unknown QrSegmentMode")
	}
}

// LengthInBits returns the number of bits this segment occupies when
// written into a QR Code of the given version, including its mode
// indicator and character count field.
func (s QrSegment) LengthInBits(ver version.Version) uint {
	return 4 + uint(s.mode.NumCharCountBits(ver)) + s.payloadBits()
}

// Write appends this segment's mode indicator, character count, and
// payload bits to bb, encoded for a QR Code of the given version.
func (s QrSegment) Write(bb *BitBuffer, ver version.Version) {
	bb.Put(s.mode.ModeBits(), 4)
	if s.mode != ModeEci {
		bb.Put(uint32(s.numchars), s.mode.NumCharCountBits(ver))
	}

	switch s.mode {
	case ModeNumeric:
		writeNumeric(bb, s.runes)
	case ModeAlphanumeric:
		writeAlphanumeric(bb, s.runes)
	case ModeByte:
		for _, b := range s.bytes {
			bb.Put(uint32(b), 8)
		}
	case ModeKanji, ModeHanzi:
		if s.mode == ModeHanzi {
			bb.Put(hanziSubsetGB2312, 4)
		}
		for _, c := range s.codes {
			bb.Put(uint32(c), 13)
		}
	case ModeEci:
		writeEci(bb, s.eciValue)
	default:
		panic("unknown QrSegmentMode")
	}
}

func writeNumeric(bb *BitBuffer, text []rune) {
	var accumdata uint32
	var accumcount uint8
	for _, c := range text {
		accumdata = accumdata*10 + uint32(c) - uint32('0')
		accumcount++
		if accumcount == 3 {
			bb.Put(accumdata, 10)
			accumdata = 0
			accumcount = 0
		}
	}
	if accumcount > 0 { // 1 or 2 digits remaining
		bb.Put(accumdata, accumcount*3+1)
	}
}

func writeAlphanumeric(bb *BitBuffer, text []rune) {
	var accumdata uint32
	var accumcount uint32
	for _, c := range text {
		idx := alphanumericCharset[c]
		accumdata = accumdata*45 + uint32(idx)
		accumcount++
		if accumcount == 2 {
			bb.Put(accumdata, 11)
			accumdata = 0
			accumcount = 0
		}
	}
	if accumcount > 0 { // 1 character remaining
		bb.Put(accumdata, 6)
	}
}

// writeEci encodes an ECI designator value using the 1/2/3-byte patterns
// from ISO/IEC 18004 section 7.4.2: a single 0xxxxxxx byte for values
// below 128, a 10xxxxxx xxxxxxxx pair below 16384, and a
// 110xxxxx xxxxxxxx xxxxxxxx triple otherwise.
func writeEci(bb *BitBuffer, assignval uint32) {
	switch {
	case assignval < (1 << 7):
		bb.Put(assignval, 8)
	case assignval < (1 << 14):
		bb.Put(0b10<<14|assignval, 16)
	default:
		bb.Put(0b110<<21|assignval, 24)
	}
}

/*---- Other static functions ----*/

// GetTotalBits calculates and returns the number of bits needed to encode
// the given segments at the given version. The result is nil if a segment
// has too many characters to fit its length field.
func GetTotalBits(segs []QrSegment, ver version.Version) *uint {
	var result uint
	for _, seg := range segs {
		ccbits := seg.mode.NumCharCountBits(ver)
		limit := uint(1) << ccbits
		if seg.numchars >= limit {
			return nil // The segment's length doesn't fit the field's bit width
		}
		result += seg.LengthInBits(ver)
	}

	return &result
}

// IsNumeric tests whether the given string can be encoded as a segment in numeric mode.
//
// A string is encodable iff each character is in the range 0 to 9.
func IsNumeric(text []rune) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// IsAlphanumeric tests whether the given string can be encoded as a segment in alphanumeric mode.
//
// A string is encodable iff each character is in the following set: 0 to 9, A to Z
// (uppercase only), space, dollar, percent, asterisk, plus, hyphen, period, slash, colon.
func IsAlphanumeric(text []rune) bool {
	for _, c := range text {
		_, ok := alphanumericCharset[c]
		if !ok {
			return false
		}
	}

	return true
}
