// Package matrix models the square grid of light/dark modules that makes
// up a QR Code symbol, tagging each module with what it belongs to so the
// same grid can serve both the encoder (which must avoid masking function
// modules) and the decoder (which must avoid reading them as data).
package matrix

import (
	"github.com/go-qr/qrcore/internal/bitx"
	"github.com/go-qr/qrcore/internal/mathx"
	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/version"
)

// Matrix is a mutable square grid of QR Code modules.
type Matrix struct {
	ver     version.Version
	size    int32
	modules []bool
	tags    []ModuleTag
}

// New returns a blank matrix of the size dictated by ver, with every
// function pattern (timing, finder, separator, alignment, the fixed dark
// module, and placeholders for format and version info) already drawn and
// tagged. Format and version info bits are written as zeros; callers draw
// the real values with DrawFormatBits and DrawVersionInfo once the error
// correction level and mask are known.
func New(ver version.Version) *Matrix {
	size := ver.Size()
	m := &Matrix{
		ver:     ver,
		size:    size,
		modules: make([]bool, size*size),
		tags:    make([]ModuleTag, size*size),
	}
	m.drawFunctionPatterns()
	return m
}

// Version returns the version this matrix was built for.
func (m *Matrix) Version() version.Version {
	return m.ver
}

// Size returns the width and height of the matrix, in modules.
func (m *Matrix) Size() int32 {
	return m.size
}

// Get returns the color of the module at (x, y): true for dark. Out of
// bounds coordinates return false.
func (m *Matrix) Get(x, y int32) bool {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return false
	}
	return m.modules[y*m.size+x]
}

// Tag returns the classification of the module at (x, y). Out of bounds
// coordinates report Data.
func (m *Matrix) Tag(x, y int32) ModuleTag {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return Data
	}
	return m.tags[y*m.size+x]
}

// Set sets the color of the module at (x, y), which must be in bounds.
// The module's tag is left unchanged.
func (m *Matrix) Set(x, y int32, dark bool) {
	m.modules[y*m.size+x] = dark
}

func (m *Matrix) setTagged(x, y int32, dark bool, tag ModuleTag) {
	m.modules[y*m.size+x] = dark
	m.tags[y*m.size+x] = tag
}

func (m *Matrix) drawFunctionPatterns() {
	size := m.size
	for i := int32(0); i < size; i++ {
		even := i%2 == 0
		m.setTagged(6, i, even, Timing)
		m.setTagged(i, 6, even, Timing)
	}

	m.drawFinderPattern(3, 3)
	m.drawFinderPattern(size-4, 3)
	m.drawFinderPattern(3, size-4)

	alignpos := m.ver.AlignmentPatternPositions()
	numalign := len(alignpos)
	for i := 0; i < numalign; i++ {
		for j := 0; j < numalign; j++ {
			if !(i == 0 && j == 0 || i == 0 && j == numalign-1 || i == numalign-1 && j == 0) {
				m.drawAlignmentPattern(alignpos[i], alignpos[j])
			}
		}
	}

	m.DrawFormatBits(0, mask.New(0))
	m.DrawVersionInfo()
}

// drawFinderPattern draws a 9x9 finder pattern including the border
// separator, with the center module at (x, y). Modules can be out of
// bounds.
func (m *Matrix) drawFinderPattern(x, y int32) {
	for dy := int32(-4); dy <= 4; dy++ {
		for dx := int32(-4); dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.size || yy < 0 || yy >= m.size {
				continue
			}
			dist := mathx.MaxInt32(mathx.AbsInt32(dx), mathx.AbsInt32(dy))
			tag := Finder
			if dist == 4 {
				tag = Separator
			}
			m.setTagged(xx, yy, dist != 2 && dist != 4, tag)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern with the center
// module at (x, y). All modules must be in bounds.
func (m *Matrix) drawAlignmentPattern(x, y int32) {
	for dy := int32(-2); dy <= 2; dy++ {
		for dx := int32(-2); dx <= 2; dx++ {
			m.setTagged(x+dx, y+dy, mathx.MaxInt32(mathx.AbsInt32(dx), mathx.AbsInt32(dy)) != 1, Alignment)
		}
	}
}

// DrawCodewords draws the given sequence of 8-bit codewords (data and
// error correction) onto every module tagged Data, in the zig-zag scan
// order defined by ISO/IEC 18004 section 7.7.3.
func (m *Matrix) DrawCodewords(data []byte) {
	var i uint
	total := uint(len(data)) * 8
	right := m.size - 1
	for right >= 1 {
		if right == 6 {
			right = 5
		}
		for vert := int32(0); vert < m.size; vert++ {
			for j := int32(0); j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int32
				if upward {
					y = m.size - 1 - vert
				} else {
					y = vert
				}
				if m.Tag(x, y) == Data && i < total {
					m.Set(x, y, bitx.GetBit(uint32(data[i>>3]), int32(7-(i&7))))
					i++
				}
			}
		}
		right -= 2
	}
}

// ReadCodewords is the inverse of DrawCodewords: it walks the same
// zig-zag scan over every module tagged Data and packs their colors into
// bytes, MSB first. Any trailing partial byte (remainder bits) is
// zero-padded.
func (m *Matrix) ReadCodewords() []byte {
	raw := int(m.ver.NumRawDataModules())
	out := make([]byte, (raw+7)/8)
	var i uint
	right := m.size - 1
	for right >= 1 {
		if right == 6 {
			right = 5
		}
		for vert := int32(0); vert < m.size; vert++ {
			for j := int32(0); j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int32
				if upward {
					y = m.size - 1 - vert
				} else {
					y = vert
				}
				if m.Tag(x, y) == Data && int(i) < raw {
					if m.Get(x, y) {
						out[i>>3] |= 1 << (7 - (i & 7))
					}
					i++
				}
			}
		}
		right -= 2
	}
	return out
}

// ApplyMask XORs every module tagged Data with the given mask pattern.
// Calling ApplyMask with the same mask value a second time undoes it,
// which the encoder relies on while scoring every candidate mask.
func (m *Matrix) ApplyMask(mk mask.Mask) {
	for y := int32(0); y < m.size; y++ {
		for x := int32(0); x < m.size; x++ {
			if m.Tag(x, y) != Data {
				continue
			}
			if mk.Invert(x, y) {
				m.Set(x, y, !m.Get(x, y))
			}
		}
	}
}

// SetLogoSpace clears a width x height module area starting at (startX,
// startY), tagging every cleared cell Logo so renderers can overlay an
// image there. The cleared modules read back as errors during decoding
// and must be absorbed by the symbol's error correction, so the area
// should stay well below the recovery capacity of level High. Cells
// falling outside the matrix are skipped.
func (m *Matrix) SetLogoSpace(startX, startY, width, height int32) {
	for y := startY; y < startY+height; y++ {
		for x := startX; x < startX+width; x++ {
			if x < 0 || x >= m.size || y < 0 || y >= m.size {
				continue
			}
			m.setTagged(x, y, false, Logo)
		}
	}
}

// Invert flips the color of every module in the matrix, function modules
// included. It implements the invert_matrix rendering option and has no
// effect on decoding, since the encoder always draws a fresh matrix.
func (m *Matrix) Invert() {
	for i := range m.modules {
		m.modules[i] = !m.modules[i]
	}
}

// ExpandQuietZone returns a new matrix of size m.Size()+2*n, with m
// centered inside a light QuietZone border of width n. If n is zero or
// negative, m itself is returned.
func (m *Matrix) ExpandQuietZone(n int32) *Matrix {
	if n <= 0 {
		return m
	}
	newSize := m.size + 2*n
	out := &Matrix{
		ver:     m.ver,
		size:    newSize,
		modules: make([]bool, newSize*newSize),
		tags:    make([]ModuleTag, newSize*newSize),
	}
	for i := range out.tags {
		out.tags[i] = QuietZone
	}
	for y := int32(0); y < m.size; y++ {
		for x := int32(0); x < m.size; x++ {
			out.setTagged(x+n, y+n, m.Get(x, y), m.Tag(x, y))
		}
	}
	return out
}
