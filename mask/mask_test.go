package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { New(8) })
	assert.NotPanics(t, func() { New(7) })
}

func TestAllReturnsEightDistinctMasks(t *testing.T) {
	all := All()
	assert.Len(t, all, 8)
	seen := map[uint8]bool{}
	for _, m := range all {
		seen[m.Value()] = true
	}
	assert.Len(t, seen, 8)
}

func TestInvertPattern0(t *testing.T) {
	m := New(0)
	assert.True(t, m.Invert(0, 0))
	assert.False(t, m.Invert(1, 0))
	assert.True(t, m.Invert(2, 2))
}

func TestInvertPattern1IsRowParity(t *testing.T) {
	m := New(1)
	for y := int32(0); y < 4; y++ {
		assert.Equal(t, y%2 == 0, m.Invert(5, y))
	}
}
