package render

import (
	"testing"

	"github.com/go-qr/qrcore/matrix"
	"github.com/go-qr/qrcore/options"
	"github.com/go-qr/qrcore/version"
	"github.com/stretchr/testify/assert"
)

// identity returns every module as itself, keeping CollectModules's
// transform contract exercised without a backend-specific payload type.
func identity(x, y int32, tag matrix.ModuleTag, layer LayerTag) (any, bool) {
	return cell{x: x, y: y, tag: tag, layer: layer, dark: layer.Dark}, true
}

func TestCollectModulesIncludesQuietZone(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.QuietZoneSize = 4

	byLayer := CollectModules(grid, opts, identity)
	expectedSize := grid.Size() + 8

	total := 0
	for _, vs := range byLayer {
		total += len(vs)
	}
	assert.Equal(t, int(expectedSize*expectedSize), total)

	quietZone, ok := byLayer[LayerTag{Tag: matrix.QuietZone, Dark: false}]
	assert.True(t, ok)
	assert.NotEmpty(t, quietZone)
}

func TestCollectModulesNoQuietZone(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false

	byLayer := CollectModules(grid, opts, identity)
	total := 0
	for _, vs := range byLayer {
		total += len(vs)
	}
	assert.Equal(t, int(grid.Size()*grid.Size()), total)

	_, hasQuietZone := byLayer[LayerTag{Tag: matrix.QuietZone, Dark: false}]
	assert.False(t, hasQuietZone)

	finderDark, ok := byLayer[LayerTag{Tag: matrix.Finder, Dark: true}]
	assert.True(t, ok)
	assert.NotEmpty(t, finderDark)
}

func TestCollectModulesInvertsColors(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false
	opts.InvertMatrix = true

	byLayer := CollectModules(grid, opts, identity)
	// Each finder has 33 dark and 16 light modules (its light inner ring).
	// Inversion swaps them, so only the three light rings (48 modules) are
	// dark now, and the 99 formerly dark modules appear under the light
	// variant.
	finderDark := byLayer[LayerTag{Tag: matrix.Finder, Dark: true}]
	assert.Len(t, finderDark, 48)
	finderLight, ok := byLayer[LayerTag{Tag: matrix.Finder, Dark: false}]
	assert.True(t, ok)
	assert.NotEmpty(t, finderLight)
}

func TestCollectModulesOrdersResultsByOriginalTag(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false
	opts.ConnectPaths = true

	byLayer := CollectModules(grid, opts, identity)
	dataLayer := byLayer[LayerTag{Tag: matrix.Data, Dark: true}]
	assert.NotEmpty(t, dataLayer)

	lastTag := matrix.ModuleTag(-1)
	for _, v := range dataLayer {
		c := v.(cell)
		assert.GreaterOrEqual(t, int(c.tag), int(lastTag))
		lastTag = c.tag
	}
}

func TestCollectModulesTransformCanFilter(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false

	onlyFinders := func(x, y int32, tag matrix.ModuleTag, layer LayerTag) (any, bool) {
		return nil, tag == matrix.Finder
	}
	byLayer := CollectModules(grid, opts, onlyFinders)
	for lt := range byLayer {
		assert.Equal(t, matrix.Finder, lt.Tag)
	}
	assert.NotEmpty(t, byLayer)
}

func TestCollectRunsMergesAdjacentSameTagCells(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false
	opts.ConnectPaths = true

	runs := CollectRuns(grid, opts)
	assert.NotEmpty(t, runs)

	found := false
	for _, r := range runs {
		if r.Layer.Tag == matrix.Data && r.X1-r.X0 > 1 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one merged multi-cell run in the shared data layer")
}

func TestCollectRunsExcludedTagNeverMerges(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false
	opts.ConnectPaths = true
	opts.ExcludeFromConnect = map[matrix.ModuleTag]bool{matrix.Finder: true}

	runs := CollectRuns(grid, opts)
	for _, r := range runs {
		if r.Layer.Tag == matrix.Finder {
			assert.Equal(t, int32(1), r.X1-r.X0)
		}
	}
}

func TestCollectRunsOnlyCoverDarkModules(t *testing.T) {
	grid := matrix.New(version.New(1))
	opts := options.Default()
	opts.AddQuietZone = false

	runs := CollectRuns(grid, opts)
	for _, r := range runs {
		assert.True(t, r.Layer.Dark)
	}
}
