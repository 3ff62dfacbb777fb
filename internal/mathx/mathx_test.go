package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinUint(t *testing.T) {
	assert.EqualValues(t, 3, MinUint(3, 5))
	assert.EqualValues(t, 3, MinUint(5, 3))
}

func TestMaxInt32(t *testing.T) {
	assert.EqualValues(t, 5, MaxInt32(3, 5))
	assert.EqualValues(t, 5, MaxInt32(5, 3))
}

func TestAbsInt32(t *testing.T) {
	assert.EqualValues(t, 5, AbsInt32(-5))
	assert.EqualValues(t, 5, AbsInt32(5))
}

func TestBoolConversions(t *testing.T) {
	assert.EqualValues(t, 1, BoolToUint(true))
	assert.EqualValues(t, 0, BoolToUint(false))
	assert.EqualValues(t, 1, BoolToInt32(true))
	assert.EqualValues(t, 0, BoolToInt32(false))
}
