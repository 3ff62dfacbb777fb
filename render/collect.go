// Package render turns a tagged module matrix into the primitives an
// image or vector renderer needs: a transform-and-group pass over every
// module, or runs of horizontally adjacent dark cells merged into single
// path segments, plus a small file-writing helper.
package render

import (
	"sort"

	"github.com/go-qr/qrcore/matrix"
	"github.com/go-qr/qrcore/options"
)

// LayerTag is the backend-facing grouping key for a module: its function
// tag plus color. It collapses distinct function tags (Finder, Format,
// Timing, ...) into a shared Data/Data-dark layer when connect_paths
// merging applies, so a renderer can draw every mergeable dark module as
// one shape regardless of which function pattern it belongs to.
type LayerTag struct {
	Tag  matrix.ModuleTag
	Dark bool
}

// String names the layer the way a module_values lookup or debug log
// would want it, appending _DARK for the dark variant.
func (lt LayerTag) String() string {
	if lt.Dark {
		return lt.Tag.String() + "_DARK"
	}
	return lt.Tag.String()
}

type cell struct {
	x, y    int32
	dark    bool
	tag     matrix.ModuleTag
	layer   LayerTag
	noMerge bool
}

// collectCells walks grid in row-major order, expanding the quiet zone and
// applying inversion per opts, and computes each module's layer tag.
func collectCells(grid *matrix.Matrix, opts options.QROptions) []cell {
	g := grid
	if opts.AddQuietZone && opts.QuietZoneSize > 0 {
		g = grid.ExpandQuietZone(opts.QuietZoneSize)
	}

	size := g.Size()
	cells := make([]cell, 0, size*size)
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			dark := g.Get(x, y)
			if opts.InvertMatrix {
				dark = !dark
			}
			tag := g.Tag(x, y)
			layerBase := tag
			excluded := opts.ConnectPaths && opts.ExcludeFromConnect[tag]
			if opts.ConnectPaths && !excluded {
				layerBase = matrix.Data
			}
			cells = append(cells, cell{x: x, y: y, dark: dark, tag: tag, layer: LayerTag{Tag: layerBase, Dark: dark}, noMerge: excluded})
		}
	}
	return cells
}

// Transform converts one module's position, original tag, and computed
// layer tag into a backend-specific value. Returning ok=false omits the
// module from CollectModules's result, for example to let a backend skip
// quiet zone padding or draw a logo region separately.
type Transform func(x, y int32, tag matrix.ModuleTag, layer LayerTag) (value any, ok bool)

// CollectModules iterates every module of grid in row-major order (quiet
// zone expanded and inversion applied per opts), calls transform on each,
// and groups the results by layer tag. Within a layer's result list,
// entries are ordered by the module's original tag, so modules of the
// same underlying kind stay grouped together even when several kinds
// collapse into a shared layer.
func CollectModules(grid *matrix.Matrix, opts options.QROptions, transform Transform) map[LayerTag][]any {
	cells := collectCells(grid, opts)

	type result struct {
		tag   matrix.ModuleTag
		layer LayerTag
		value any
	}
	results := make([]result, 0, len(cells))
	for _, c := range cells {
		value, ok := transform(c.x, c.y, c.tag, c.layer)
		if !ok {
			continue
		}
		results = append(results, result{tag: c.tag, layer: c.layer, value: value})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].tag < results[j].tag })

	out := make(map[LayerTag][]any, len(results))
	for _, r := range results {
		out[r.layer] = append(out[r.layer], r.value)
	}
	return out
}

// Run is a horizontal sequence of adjacent dark modules on a single row,
// sharing a layer tag, that a vector renderer can draw as a single
// rectangle or path segment instead of one shape per module.
type Run struct {
	Y, X0, X1 int32 // half-open [X0, X1) on row Y
	Layer     LayerTag
}

// CollectRuns groups grid's dark modules (quiet zone expanded and
// inversion applied per opts) into horizontal runs of adjacent modules
// sharing a layer tag, implementing the connect_paths option: a tag
// listed in opts.ExcludeFromConnect never collapses into the shared
// Data/Data-dark layer and never joins a multi-module run at all, so
// function patterns (finders, alignment patterns, a logo region) stay
// individually addressable even when path connection is on for the rest
// of the symbol. With connect_paths off,
// every module's layer tag equals its own function tag, so only modules
// sharing that exact tag merge.
func CollectRuns(grid *matrix.Matrix, opts options.QROptions) []Run {
	cells := collectCells(grid, opts)
	if len(cells) == 0 {
		return nil
	}
	width := 0
	for _, c := range cells {
		if int(c.x) >= width {
			width = int(c.x) + 1
		}
	}

	var runs []Run
	var open *Run
	flush := func() {
		if open != nil {
			runs = append(runs, *open)
			open = nil
		}
	}

	for i, c := range cells {
		rowStart := i%width == 0
		if rowStart {
			flush()
		}
		if !c.dark {
			flush()
			continue
		}
		if c.noMerge {
			flush()
			runs = append(runs, Run{Y: c.y, X0: c.x, X1: c.x + 1, Layer: c.layer})
			continue
		}
		if open != nil && open.Layer == c.layer && open.X1 == c.x && open.Y == c.y {
			open.X1++
			continue
		}
		flush()
		open = &Run{Y: c.y, X0: c.x, X1: c.x + 1, Layer: c.layer}
	}
	flush()

	return runs
}
