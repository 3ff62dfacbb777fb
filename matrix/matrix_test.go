package matrix

import (
	"testing"

	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/version"
	"github.com/stretchr/testify/assert"
)

func TestNewSizesMatchVersion(t *testing.T) {
	m := New(version.New(1))
	assert.EqualValues(t, 21, m.Size())

	m = New(version.New(7))
	assert.EqualValues(t, 45, m.Size())
}

func TestFinderPatternsAreTagged(t *testing.T) {
	m := New(version.New(1))
	assert.Equal(t, Finder, m.Tag(3, 3))
	assert.True(t, m.Get(3, 3))
	assert.Equal(t, Separator, m.Tag(7, 3))
}

func TestTimingPatternAlternates(t *testing.T) {
	m := New(version.New(1))
	for i := int32(8); i < m.Size()-8; i++ {
		assert.Equal(t, i%2 == 0, m.Get(6, i))
		assert.Equal(t, Timing, m.Tag(6, i))
	}
}

func TestOutOfBoundsAccessors(t *testing.T) {
	m := New(version.New(1))
	assert.False(t, m.Get(-1, -1))
	assert.False(t, m.Get(m.Size(), 0))
	assert.Equal(t, Data, m.Tag(-1, 0))
}

func TestDrawAndReadCodewordsRoundTrip(t *testing.T) {
	ver := version.New(1)
	m := New(ver)

	raw := int(ver.NumRawDataModules())
	data := make([]byte, (raw+7)/8)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	m.DrawCodewords(data)

	got := m.ReadCodewords()
	assert.Equal(t, data, got)
}

func TestApplyMaskIsInvolution(t *testing.T) {
	ver := version.New(2)
	m := New(ver)
	raw := int(ver.NumRawDataModules())
	data := make([]byte, (raw+7)/8)
	for i := range data {
		data[i] = byte(i * 91)
	}
	m.DrawCodewords(data)

	before := make([]bool, len(m.modules))
	copy(before, m.modules)

	mk := mask.New(4)
	m.ApplyMask(mk)
	assert.NotEqual(t, before, m.modules)
	m.ApplyMask(mk)
	assert.Equal(t, before, m.modules)
}

func TestExpandQuietZone(t *testing.T) {
	m := New(version.New(1))
	expanded := m.ExpandQuietZone(4)
	assert.EqualValues(t, m.Size()+8, expanded.Size())
	assert.Equal(t, QuietZone, expanded.Tag(0, 0))
	assert.Equal(t, m.Tag(3, 3), expanded.Tag(7, 7))
	assert.Equal(t, m.Get(3, 3), expanded.Get(7, 7))
}

func TestExpandQuietZoneZeroIsNoop(t *testing.T) {
	m := New(version.New(1))
	assert.Same(t, m, m.ExpandQuietZone(0))
}

func TestSetLogoSpaceClearsAndTags(t *testing.T) {
	ver := version.New(5)
	m := New(ver)
	raw := int(ver.NumRawDataModules())
	data := make([]byte, (raw+7)/8)
	for i := range data {
		data[i] = 0xFF
	}
	m.DrawCodewords(data)

	size := m.Size()
	m.SetLogoSpace(size/2-2, size/2-2, 4, 4)
	for y := size/2 - 2; y < size/2+2; y++ {
		for x := size/2 - 2; x < size/2+2; x++ {
			assert.Equal(t, Logo, m.Tag(x, y))
			assert.False(t, m.Get(x, y))
		}
	}
	assert.Equal(t, Data, m.Tag(size/2+3, size/2))
}

func TestSetLogoSpaceSkipsOutOfBounds(t *testing.T) {
	m := New(version.New(1))
	assert.NotPanics(t, func() { m.SetLogoSpace(-3, -3, 6, 6) })
	assert.Equal(t, Logo, m.Tag(0, 0))
}

func TestInvertFlipsEveryModule(t *testing.T) {
	m := New(version.New(1))
	before := make([]bool, len(m.modules))
	copy(before, m.modules)
	m.Invert()
	for i := range before {
		assert.Equal(t, !before[i], m.modules[i])
	}
}
