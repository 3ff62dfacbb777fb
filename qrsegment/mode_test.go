package qrsegment

import (
	"testing"

	"github.com/go-qr/qrcore/version"
	"github.com/stretchr/testify/assert"
)

func TestModeBitsRoundTrip(t *testing.T) {
	modes := []QrSegmentMode{ModeNumeric, ModeAlphanumeric, ModeByte, ModeKanji, ModeHanzi, ModeEci}
	for _, m := range modes {
		got, err := ModeFromBits(m.ModeBits())
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestModeFromBitsRejectsTerminator(t *testing.T) {
	_, err := ModeFromBits(0)
	assert.Error(t, err)
}

func TestNumCharCountBitsVariesByVersionBand(t *testing.T) {
	assert.EqualValues(t, 10, ModeNumeric.NumCharCountBits(version.New(1)))
	assert.EqualValues(t, 12, ModeNumeric.NumCharCountBits(version.New(10)))
	assert.EqualValues(t, 14, ModeNumeric.NumCharCountBits(version.New(27)))

	assert.EqualValues(t, 8, ModeByte.NumCharCountBits(version.New(9)))
	assert.EqualValues(t, 16, ModeByte.NumCharCountBits(version.New(10)))

	assert.EqualValues(t, 0, ModeEci.NumCharCountBits(version.New(1)))
}
