package matrix

import (
	"fmt"

	"github.com/go-qr/qrcore/internal/bitx"
	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/qrerror"
)

// encodeFormatBits packs a 2-bit ECC level indicator and a 3-bit mask
// value into the 15-bit BCH(15,5) format codeword defined by ISO/IEC
// 18004 section 7.9, including the fixed XOR mask that keeps an
// all-light format field from looking like a blank symbol.
func encodeFormatBits(eclBits uint8, mk mask.Mask) uint32 {
	data := uint32(eclBits)<<3 | uint32(mk.Value())
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return (data<<10 | rem) ^ 0x5412
}

// encodeVersionBits packs a 6-bit version number into the 18-bit
// BCH(18,6) version codeword defined by ISO/IEC 18004 section 7.10.
func encodeVersionBits(ver uint8) uint32 {
	data := uint32(ver)
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	return data<<12 | rem
}

// DrawFormatBits draws two copies of the format info, computed from the
// given 2-bit ECC level indicator and mask pattern.
func (m *Matrix) DrawFormatBits(eclBits uint8, mk mask.Mask) {
	bits := encodeFormatBits(eclBits, mk)

	for i := int32(0); i < 6; i++ {
		m.setTagged(8, i, bitx.GetBit(bits, i), Format)
	}
	m.setTagged(8, 7, bitx.GetBit(bits, 6), Format)
	m.setTagged(8, 8, bitx.GetBit(bits, 7), Format)
	m.setTagged(7, 8, bitx.GetBit(bits, 8), Format)
	for i := int32(9); i < 15; i++ {
		m.setTagged(14-i, 8, bitx.GetBit(bits, i), Format)
	}

	size := m.size
	for i := int32(0); i < 8; i++ {
		m.setTagged(size-1-i, 8, bitx.GetBit(bits, i), Format)
	}
	for i := int32(8); i < 15; i++ {
		m.setTagged(8, size-15+i, bitx.GetBit(bits, i), Format)
	}
	m.setTagged(8, size-8, true, DarkModule)
}

// DrawVersionInfo draws two copies of the version info. It is a no-op
// below version 7, which carries no version info area.
func (m *Matrix) DrawVersionInfo() {
	if m.ver.Value() < 7 {
		return
	}
	bits := encodeVersionBits(m.ver.Value())
	for i := int32(0); i < 18; i++ {
		bit := bitx.GetBit(bits, i)
		a := m.size - 11 + i%3
		b := i / 3
		m.setTagged(a, b, bit, VersionInfo)
		m.setTagged(b, a, bit, VersionInfo)
	}
}

// ReadFormatBits reads the first copy of the format info (the one beside
// the top-left finder pattern) and BCH-corrects it against every valid
// 15-bit format codeword, returning the original 2-bit ECC indicator and
// 3-bit mask value. If the second copy can be read (size is known), the
// two copies are compared and the better one used.
func (m *Matrix) ReadFormatBits() (eclBits uint8, maskVal uint8, err error) {
	var bits1 uint32
	for i := int32(0); i < 6; i++ {
		bits1 = setBit(bits1, i, m.Get(8, i))
	}
	bits1 = setBit(bits1, 6, m.Get(8, 7))
	bits1 = setBit(bits1, 7, m.Get(8, 8))
	bits1 = setBit(bits1, 8, m.Get(7, 8))
	for i := int32(9); i < 15; i++ {
		bits1 = setBit(bits1, i, m.Get(14-i, 8))
	}

	size := m.size
	var bits2 uint32
	for i := int32(0); i < 8; i++ {
		bits2 = setBit(bits2, i, m.Get(size-1-i, 8))
	}
	for i := int32(8); i < 15; i++ {
		bits2 = setBit(bits2, i, m.Get(8, size-15+i))
	}

	dist := func(data, bits uint32) int {
		return hammingWeight(encodeFormatBits(uint8(data>>3), mask.New(uint8(data&0x7))) ^ bits)
	}
	data, err := correctFormat(bits1)
	data2, err2 := correctFormat(bits2)
	switch {
	case err != nil && err2 != nil:
		return 0, 0, err
	case err != nil:
		data = data2
	case err2 == nil && dist(data2, bits2) < dist(data, bits1):
		data = data2
	}
	return uint8(data >> 3), uint8(data & 0x7), nil
}

// ReadVersionInfo reads the version info area beside the top-right
// finder pattern and BCH-corrects it, returning the original 6-bit
// version number. Callers must not invoke this below version 7.
func (m *Matrix) ReadVersionInfo() (uint8, error) {
	var bits uint32
	size := m.size
	for i := int32(0); i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		bits = setBit(bits, i, m.Get(a, b))
	}
	return correctVersion(bits)
}

func setBit(x uint32, i int32, bit bool) uint32 {
	if bit {
		return x | 1<<uint(i)
	}
	return x
}

func correctFormat(bits uint32) (uint32, error) {
	bestData, bestDist := uint32(0), 99
	for data := uint32(0); data < 32; data++ {
		eclBits := uint8(data >> 3)
		mk := mask.New(uint8(data & 0x7))
		codeword := encodeFormatBits(eclBits, mk)
		dist := hammingWeight(codeword ^ bits)
		if dist < bestDist {
			bestDist = dist
			bestData = data
		}
	}
	if bestDist > 3 {
		return 0, fmt.Errorf("%w: format info min distance %d", qrerror.ErrFormatInfoUncorrectable, bestDist)
	}
	return bestData, nil
}

func correctVersion(bits uint32) (uint8, error) {
	bestVer, bestDist := uint8(0), 99
	for ver := uint8(7); ver <= 40; ver++ {
		codeword := encodeVersionBits(ver)
		dist := hammingWeight(codeword ^ bits)
		if dist < bestDist {
			bestDist = dist
			bestVer = ver
		}
	}
	if bestDist > 3 {
		return 0, fmt.Errorf("%w: version info min distance %d", qrerror.ErrFormatInfoUncorrectable, bestDist)
	}
	return bestVer, nil
}

func hammingWeight(x uint32) int {
	count := 0
	for x != 0 {
		count++
		x &= x - 1
	}
	return count
}
