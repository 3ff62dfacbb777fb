package qrsegment

import (
	"testing"

	"github.com/go-qr/qrcore/version"
	"github.com/stretchr/testify/assert"
)

func writeAndRead(t *testing.T, seg QrSegment, ver version.Version) *BitBuffer {
	t.Helper()
	bb := NewBitBuffer()
	seg.Write(bb, ver)
	loaded := NewBitBufferFromBytes(bb.GetBuffer())

	mode, err := loaded.Read(4)
	assert.NoError(t, err)
	gotMode, err := ModeFromBits(mode)
	assert.NoError(t, err)
	assert.Equal(t, seg.Mode(), gotMode)

	if seg.Mode() != ModeEci {
		count, err := loaded.Read(seg.Mode().NumCharCountBits(ver))
		assert.NoError(t, err)
		assert.EqualValues(t, seg.NumChars(), count)
	}
	return loaded
}

func TestMakeNumericRoundTrip(t *testing.T) {
	seg, err := MakeNumeric([]rune("0123456789"))
	assert.NoError(t, err)
	ver := version.New(1)
	loaded := writeAndRead(t, seg, ver)
	decoded, err := DecodeNumeric(loaded, seg.NumChars())
	assert.NoError(t, err)
	assert.Equal(t, "0123456789", decoded)
}

func TestMakeNumericRejectsNonDigit(t *testing.T) {
	_, err := MakeNumeric([]rune("12a"))
	assert.Error(t, err)
}

func TestMakeAlphanumericRoundTrip(t *testing.T) {
	text := "HELLO WORLD: $42.50%"
	seg, err := MakeAlphanumeric([]rune(text))
	assert.NoError(t, err)
	ver := version.New(1)
	loaded := writeAndRead(t, seg, ver)
	decoded, err := DecodeAlphanumeric(loaded, seg.NumChars())
	assert.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := MakeAlphanumeric([]rune("hello"))
	assert.Error(t, err)
}

func TestMakeBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xFF, 0x10, 0xAB}
	seg := MakeBytes(data)
	ver := version.New(1)
	loaded := writeAndRead(t, seg, ver)
	decoded, err := DecodeByte(loaded, seg.NumChars())
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestMakeEciRoundTripAllWidths(t *testing.T) {
	ver := version.New(1)
	for _, v := range []uint32{3, 127, 128, 16383, 16384, 999999} {
		seg, err := MakeEci(v)
		assert.NoError(t, err)
		bb := NewBitBuffer()
		seg.Write(bb, ver)
		loaded := NewBitBufferFromBytes(bb.GetBuffer())

		mode, err := loaded.Read(4)
		assert.NoError(t, err)
		gotMode, err := ModeFromBits(mode)
		assert.NoError(t, err)
		assert.Equal(t, ModeEci, gotMode)

		got, err := DecodeEciValue(loaded)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestMakeEciRejectsOutOfRange(t *testing.T) {
	_, err := MakeEci(1_000_000)
	assert.Error(t, err)
}

func TestMakeSegmentsPicksNarrowestMode(t *testing.T) {
	segs, err := MakeSegments([]rune("12345"))
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, ModeNumeric, segs[0].Mode())

	segs, err = MakeSegments([]rune("HELLO"))
	assert.NoError(t, err)
	assert.Equal(t, ModeAlphanumeric, segs[0].Mode())

	segs, err = MakeSegments([]rune("hello"))
	assert.NoError(t, err)
	assert.Equal(t, ModeByte, segs[0].Mode())

	segs, err = MakeSegments(nil)
	assert.NoError(t, err)
	assert.Empty(t, segs)
}

func TestGetTotalBitsNilWhenCountOverflowsField(t *testing.T) {
	ver := version.New(1)
	runes := make([]rune, 1<<10) // exceeds the 10-bit numeric count field at version 1
	for i := range runes {
		runes[i] = '1'
	}
	seg, err := MakeNumeric(runes)
	assert.NoError(t, err)
	assert.Nil(t, GetTotalBits([]QrSegment{seg}, ver))
}

func TestGetTotalBitsSumsSegments(t *testing.T) {
	ver := version.New(1)
	a, _ := MakeNumeric([]rune("123"))
	b, _ := MakeAlphanumeric([]rune("AB"))
	total := GetTotalBits([]QrSegment{a, b}, ver)
	assert.NotNil(t, total)
	assert.Equal(t, a.LengthInBits(ver)+b.LengthInBits(ver), *total)
}

func TestIsNumericAndIsAlphanumeric(t *testing.T) {
	assert.True(t, IsNumeric([]rune("0123")))
	assert.False(t, IsNumeric([]rune("012a")))
	assert.True(t, IsAlphanumeric([]rune("AB 12:")))
	assert.False(t, IsAlphanumeric([]rune("ab")))
}
