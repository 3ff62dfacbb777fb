package eci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownAndUnknown(t *testing.T) {
	_, ok := Lookup(ISO8859_1)
	assert.True(t, ok)

	_, ok = Lookup(999)
	assert.False(t, ok)
}

func TestDecodeEncodeRoundTripISO8859_1(t *testing.T) {
	s := "Café"
	encoded, err := Encode(ISO8859_1, s)
	assert.NoError(t, err)
	decoded, err := Decode(ISO8859_1, encoded)
	assert.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestDecodeUTF8Passthrough(t *testing.T) {
	s := "hello 中文"
	decoded, err := Decode(UTF8, []byte(s))
	assert.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestDecodeUnknownDesignatorPassesThroughRaw(t *testing.T) {
	data := []byte{0x41, 0x42, 0x43}
	decoded, err := Decode(999, data)
	assert.NoError(t, err)
	assert.Equal(t, "ABC", decoded)
}

func TestEncodeShiftJISRoundTrip(t *testing.T) {
	s := "こんにちは"
	encoded, err := Encode(ShiftJIS, s)
	assert.NoError(t, err)
	decoded, err := Decode(ShiftJIS, encoded)
	assert.NoError(t, err)
	assert.Equal(t, s, decoded)
}
