package qrsegment

import (
	"testing"

	"github.com/go-qr/qrcore/version"
	"github.com/stretchr/testify/assert"
)

func TestPackHanziCodeRoundTrip(t *testing.T) {
	// Both subtraction ranges: 0xA1A1/0xAAFE bracket the first, 0xB0A1/0xFAFE
	// the second.
	codes := []uint16{0xA1A1, 0xA2B3, 0xAAFE, 0xB0A1, 0xD2BB, 0xFAFE}
	for _, code := range codes {
		packed, ok := packHanziCode(code)
		assert.True(t, ok)
		assert.Equal(t, code, unpackHanziCode(packed))
	}
}

func TestPackHanziCodeStaysWithin13Bits(t *testing.T) {
	for code := uint32(0xA1A1); code <= 0xFAFE; code++ {
		packed, ok := packHanziCode(uint16(code))
		if ok {
			assert.Less(t, packed, uint16(1<<13))
		}
	}
}

func TestPackHanziCodeRejectsOutOfRange(t *testing.T) {
	_, ok := packHanziCode(0x0000)
	assert.False(t, ok)
	_, ok = packHanziCode(0xABA1) // gap between the two subtraction ranges
	assert.False(t, ok)
}

func TestMakeHanziAndDecodeRoundTrip(t *testing.T) {
	text := []rune("中文")
	seg, err := MakeHanzi(text)
	assert.NoError(t, err)
	assert.Equal(t, ModeHanzi, seg.Mode())

	ver := version.New(1)
	bb := NewBitBuffer()
	seg.Write(bb, ver)

	loaded := NewBitBufferFromBytes(bb.GetBuffer())
	mode, err := loaded.Read(4)
	assert.NoError(t, err)
	got, err := ModeFromBits(mode)
	assert.NoError(t, err)
	assert.Equal(t, ModeHanzi, got)

	count, err := loaded.Read(ModeHanzi.NumCharCountBits(ver))
	assert.NoError(t, err)
	assert.EqualValues(t, len(text), count)

	decoded, err := DecodeHanzi(loaded, uint(count))
	assert.NoError(t, err)
	assert.Equal(t, string(text), decoded)
}
