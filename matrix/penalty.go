package matrix

import (
	"github.com/go-qr/qrcore/internal/mathx"
	"github.com/go-qr/qrcore/mask"
)

// PenaltyScore computes the total penalty score of the matrix's current
// module colors, per ISO/IEC 18004 section 7.8.3. The encoder's automatic
// mask selection applies each candidate mask, scores it, then undoes the
// mask and tries the next one; the mask that yields the lowest score
// wins.
func (m *Matrix) PenaltyScore() int32 {
	var result int32
	size := m.size

	for y := int32(0); y < size; y++ {
		var runcolor bool
		var runx int32
		fp := newFinderPenalty(size)
		for x := int32(0); x < size; x++ {
			if m.Get(x, y) == runcolor {
				runx++
				if runx == 5 {
					result += mask.PenaltyN1
				} else if runx > 5 {
					result++
				}
			} else {
				fp.addHistory(runx)
				if !runcolor {
					result += fp.countPatterns() * mask.PenaltyN3
				}
				runcolor = m.Get(x, y)
				runx = 1
			}
		}
		result += fp.terminateAndCount(runcolor, runx) * mask.PenaltyN3
	}

	for x := int32(0); x < size; x++ {
		var runcolor bool
		var runy int32
		fp := newFinderPenalty(size)
		for y := int32(0); y < size; y++ {
			if m.Get(x, y) == runcolor {
				runy++
				if runy == 5 {
					result += mask.PenaltyN1
				} else if runy > 5 {
					result++
				}
			} else {
				fp.addHistory(runy)
				if !runcolor {
					result += fp.countPatterns() * mask.PenaltyN3
				}
				runcolor = m.Get(x, y)
				runy = 1
			}
		}
		result += fp.terminateAndCount(runcolor, runy) * mask.PenaltyN3
	}

	for y := int32(0); y < size-1; y++ {
		for x := int32(0); x < size-1; x++ {
			color := m.Get(x, y)
			if color == m.Get(x+1, y) && color == m.Get(x, y+1) && color == m.Get(x+1, y+1) {
				result += mask.PenaltyN2
			}
		}
	}

	var dark int32
	for _, mod := range m.modules {
		if mod {
			dark++
		}
	}
	total := size * size
	k := (mathx.AbsInt32(dark*20-total*10)+total-1)/total - 1
	result += k * mask.PenaltyN4

	return result
}

type finderPenalty struct {
	qrSize     int32
	runHistory [7]int32
}

func newFinderPenalty(size int32) *finderPenalty {
	return &finderPenalty{qrSize: size}
}

func (p *finderPenalty) addHistory(currentrunlength int32) {
	if p.runHistory[0] == 0 {
		currentrunlength += p.qrSize
	}
	rh := &p.runHistory
	for i := len(rh) - 2; i >= 0; i-- {
		rh[i+1] = rh[i]
	}
	rh[0] = currentrunlength
}

func (p finderPenalty) countPatterns() int32 {
	rh := p.runHistory
	n := rh[1]
	core := n > 0 && rh[2] == n && rh[3] == n*3 && rh[4] == n && rh[5] == n
	var result int32
	if core && rh[0] >= n*4 && rh[6] >= n {
		result++
	}
	if core && rh[6] >= n*4 && rh[0] >= n {
		result++
	}
	return result
}

func (p *finderPenalty) terminateAndCount(currentruncolor bool, currentrunlength int32) int32 {
	if currentruncolor {
		p.addHistory(currentrunlength)
		currentrunlength = 0
	}
	currentrunlength += p.qrSize
	p.addHistory(currentrunlength)
	return p.countPatterns()
}
