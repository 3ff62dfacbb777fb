package gf256

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
)

// MaxCorrectable returns the number of symbol errors a block with ecLen
// error correction codewords can repair, floor(ecLen/2).
func MaxCorrectable(ecLen int) int {
	return ecLen / 2
}

// Correct repairs up to MaxCorrectable(ecLen) symbol errors in-place in
// block, a codeword sequence holding data codewords followed by ecLen
// trailing error-correction codewords, both treated as one Reed-Solomon
// codeword with block[0] as the highest-degree coefficient. It returns the
// number of errors corrected (zero if the block was already valid), or
// wraps qrerror.ErrReedSolomonFailure if the block has more errors than
// ecLen/2 can repair.
func Correct(block []byte, ecLen int) (int, error) {
	syndromes := computeSyndromes(block, ecLen)
	if allZero(syndromes) {
		return 0, nil
	}

	lambda := berlekampMassey(syndromes)
	errCount := len(lambda) - 1
	maxErrors := MaxCorrectable(ecLen)
	if errCount <= 0 || errCount > maxErrors {
		return 0, fmt.Errorf("%w: locator degree %d exceeds correctable bound %d", qrerror.ErrReedSolomonFailure, errCount, maxErrors)
	}

	positions := chienSearch(lambda, len(block))
	if len(positions) != errCount {
		return 0, fmt.Errorf("%w: found %d error positions, expected %d", qrerror.ErrReedSolomonFailure, len(positions), errCount)
	}

	omega := errorEvaluator(syndromes, lambda, ecLen)
	magnitudes := forney(lambda, omega, positions)

	for i, pos := range positions {
		block[len(block)-1-pos] ^= magnitudes[i]
	}

	if !allZero(computeSyndromes(block, ecLen)) {
		return 0, fmt.Errorf("%w: correction did not clear syndromes", qrerror.ErrReedSolomonFailure)
	}
	return errCount, nil
}

func allZero(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

// computeSyndromes evaluates the received polynomial (block[0] highest
// degree) at alpha^0 .. alpha^(count-1), matching the roots used by
// GeneratorPolynomial.
func computeSyndromes(block []byte, count int) []byte {
	syndromes := make([]byte, count)
	for i := 0; i < count; i++ {
		alphaI := Exp(i)
		var s byte
		for _, b := range block {
			s = Multiply(s, alphaI) ^ b
		}
		syndromes[i] = s
	}
	return syndromes
}

// berlekampMassey derives the error locator polynomial Lambda(x) from the
// syndrome sequence, with Lambda's coefficients ordered low power to high
// power (Lambda[0] is always 1, the constant term).
func berlekampMassey(syndromes []byte) []byte {
	c := []byte{1}
	b := []byte{1}
	l := 0
	m := 1
	bCoef := byte(1)

	for n := 0; n < len(syndromes); n++ {
		delta := syndromes[n]
		for i := 1; i <= l && i < len(c); i++ {
			delta ^= Multiply(c[i], syndromes[n-i])
		}
		if delta == 0 {
			m++
			continue
		}

		t := make([]byte, len(c))
		copy(t, c)

		coef := Divide(delta, bCoef)
		shiftedLen := len(b) + m
		if shiftedLen > len(c) {
			grown := make([]byte, shiftedLen)
			copy(grown, c)
			c = grown
		}
		for i, v := range b {
			c[i+m] ^= Multiply(v, coef)
		}

		if 2*l <= n {
			l = n + 1 - l
			b = t
			bCoef = delta
			m = 1
		} else {
			m++
		}
	}

	if l+1 > len(c) {
		grown := make([]byte, l+1)
		copy(grown, c)
		c = grown
	}
	return c[:l+1]
}

// chienSearch returns the "standard convention" error positions: the
// indices i in [0, blockLen) for which Lambda(alpha^-i) == 0.
func chienSearch(lambda []byte, blockLen int) []int {
	var positions []int
	for i := 0; i < blockLen; i++ {
		x := Exp(-i)
		if evalPoly(lambda, x) == 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// errorEvaluator computes Omega(x) = [S(x) * Lambda(x)] mod x^ecLen,
// truncated to the degree implied by the number of errors found.
func errorEvaluator(syndromes, lambda []byte, ecLen int) []byte {
	prod := make([]byte, ecLen)
	for i, s := range syndromes {
		if s == 0 {
			continue
		}
		for j, l := range lambda {
			if i+j >= ecLen {
				break
			}
			prod[i+j] ^= Multiply(s, l)
		}
	}
	numErrors := len(lambda) - 1
	if numErrors > len(prod) {
		numErrors = len(prod)
	}
	return prod[:numErrors]
}

// forney computes the error magnitude at each standard-convention position
// using Forney's formula: Y_i = X_i * Omega(X_i^-1) / Lambda'(X_i^-1). The
// leading X_i factor is required because the syndromes start at alpha^0.
func forney(lambda, omega []byte, positions []int) []byte {
	deriv := derivative(lambda)
	magnitudes := make([]byte, len(positions))
	for i, pos := range positions {
		xInv := Exp(-pos)
		num := evalPoly(omega, xInv)
		den := evalPoly(deriv, xInv)
		magnitudes[i] = Multiply(Exp(pos), Divide(num, den))
	}
	return magnitudes
}

// derivative returns the formal derivative of p over GF(2): only the
// odd-degree terms survive, each dropping one degree.
func derivative(p []byte) []byte {
	if len(p) <= 1 {
		return []byte{0}
	}
	deriv := make([]byte, len(p)-1)
	for j := 1; j < len(p); j++ {
		if j%2 == 1 {
			deriv[j-1] = p[j]
		}
	}
	return deriv
}

// evalPoly evaluates p (coefficients low power to high power) at x via
// Horner's method.
func evalPoly(p []byte, x byte) byte {
	var result byte
	for j := len(p) - 1; j >= 0; j-- {
		result = Multiply(result, x) ^ p[j]
	}
	return result
}
