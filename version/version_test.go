package version

import (
	"fmt"
	"testing"

	"github.com/go-qr/qrcore/qrcodeecc"
	"github.com/stretchr/testify/assert"
)

func TestParseRejectsOutOfRange(t *testing.T) {
	_, err := Parse(0)
	assert.Error(t, err)

	_, err = Parse(41)
	assert.Error(t, err)

	v, err := Parse(1)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, v.Value())
}

func TestNewPanicsOnOutOfRange(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(41) })
}

func TestSize(t *testing.T) {
	cases := [][2]int32{
		{1, 21},
		{2, 25},
		{7, 45},
		{40, 177},
	}
	for _, tc := range cases {
		v := New(uint8(tc[0]))
		assert.EqualValues(t, tc[1], v.Size())
	}
}

func TestNumDataCodewords(t *testing.T) {
	cases := []struct {
		ver      uint8
		ecl      qrcodeecc.QrCodeEcc
		expected uint
	}{
		{3, qrcodeecc.Medium, 44},
		{6, qrcodeecc.Low, 136},
		{7, qrcodeecc.Low, 156},
		{40, qrcodeecc.Medium, 2334},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d", tc.ver), func(t *testing.T) {
			v := New(tc.ver)
			assert.EqualValues(t, tc.expected, v.NumDataCodewords(tc.ecl))
		})
	}
}

func TestAlignmentPatternPositionsVersion1Empty(t *testing.T) {
	v := New(1)
	assert.Empty(t, v.AlignmentPatternPositions())
}

func TestAlignmentPatternPositionsVersion2(t *testing.T) {
	v := New(2)
	assert.Equal(t, []int32{6, 18}, v.AlignmentPatternPositions())
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{7, 1568},
		{40, 29648},
	}
	for _, tc := range cases {
		v := New(uint8(tc[0]))
		assert.EqualValues(t, tc[1], v.NumRawDataModules())
	}
}

func TestForDimensionRoundTrip(t *testing.T) {
	for ver := uint8(Min); ver <= uint8(Max); ver++ {
		v := New(ver)
		got, err := ForDimension(v.Size())
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestForDimensionRejectsBadValues(t *testing.T) {
	_, err := ForDimension(22)
	assert.Error(t, err)

	_, err = ForDimension(17) // version 0
	assert.Error(t, err)
}
