// Package mask implements the eight QR Code data-masking patterns and the
// penalty weights used to pick among them (ISO/IEC 18004 section 7.8).
package mask

// Mask is a number between 0 and 7 (inclusive).
type Mask uint8

// New creates a mask object from the given number.
func New(mask uint8) Mask {
	// Panics if the number is outside the range [0, 7].
	if mask > 7 {
		panic("Mask value out of range")
	}

	return Mask(mask)
}

// Value returns the value, which is in the range [0, 7].
func (m Mask) Value() uint8 {
	return uint8(m)
}

// Invert reports whether the module at (x, y) should be inverted under this
// mask pattern. The eight predicates are table 23 of ISO/IEC 18004.
func (m Mask) Invert(x, y int32) bool {
	switch m.Value() {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("mask: unreachable")
	}
}

// Penalty weights for the N1-N4 scoring rules used to select the best mask.
const (
	PenaltyN1 int32 = 3
	PenaltyN2 int32 = 3
	PenaltyN3 int32 = 40
	PenaltyN4 int32 = 10
)

// All returns the eight mask patterns in ascending order, for evaluating
// each one in turn when the caller wants automatic mask selection.
func All() []Mask {
	return []Mask{New(0), New(1), New(2), New(3), New(4), New(5), New(6), New(7)}
}
