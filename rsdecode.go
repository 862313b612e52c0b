// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// erasurePoint is one claimed (code-word position, evaluation) pair fed to
// reedSolomonDecodeROU. The point set is built without deduplication:
// §4.12 point 1 requires a duplicate or out-of-range position to propagate
// as a decode error rather than be silently dropped or overwritten.
type erasurePoint struct {
	Pos uint64
	Val fr.Element
}

// reedSolomonDecodeROU recovers the chunkSize coefficients of a
// degree-(chunkSize-1) polynomial from a set of (code-word position,
// evaluation) pairs on multiOpenDomain, by Lagrange interpolation: the
// decoder named in §1/§4.12. Every point is checked against the domain's
// cardinality and against every other point's position: an out-of-range
// position, or a position claimed more than once, is an argument error,
// not a value to discard (this is what makes recovery fail when every
// share index is shifted out of range, §8.2's last negative property, and
// what makes an equivocating duplicate share fail loudly instead of
// silently picking whichever copy came first). Fewer than chunkSize points
// after that check is likewise an argument error: the system is
// under-determined.
func reedSolomonDecodeROU(points []erasurePoint, chunkSize int, domain *fft.Domain) ([]fr.Element, error) {
	seen := make(map[uint64]bool, len(points))
	xs := make([]fr.Element, 0, chunkSize)
	ys := make([]fr.Element, 0, chunkSize)
	for _, p := range points {
		if p.Pos >= domain.Cardinality {
			return nil, newArgumentError("reed-solomon decode: position %d out of range for domain of size %d", p.Pos, domain.Cardinality)
		}
		if seen[p.Pos] {
			return nil, newArgumentError("reed-solomon decode: duplicate position %d", p.Pos)
		}
		seen[p.Pos] = true
		if len(xs) < chunkSize {
			xs = append(xs, domainElement(domain, p.Pos))
			ys = append(ys, p.Val)
		}
	}
	if len(xs) < chunkSize {
		return nil, newArgumentError("reed-solomon decode: only %d usable points, need %d", len(xs), chunkSize)
	}
	return lagrangeInterpolate(xs, ys), nil
}

// lagrangeInterpolate returns the coefficient-form polynomial of degree
// < len(xs) through the given points, using the standard
// vanishing-polynomial-and-synthetic-division construction (O(t^2) for t
// points, t = len(xs)).
func lagrangeInterpolate(xs, ys []fr.Element) []fr.Element {
	t := len(xs)
	full := make([]fr.Element, 1, t+1)
	full[0].SetOne()
	for i := 0; i < t; i++ {
		full = polyMulLinear(full, xs[i])
	}

	result := make([]fr.Element, t)
	for i := 0; i < t; i++ {
		quotient := syntheticDivide(full, xs[i])
		denom := hornerEval(quotient, xs[i])
		var denomInv fr.Element
		denomInv.Inverse(&denom)

		var coeff fr.Element
		coeff.Mul(&ys[i], &denomInv)

		for d := 0; d < t; d++ {
			var term fr.Element
			term.Mul(&quotient[d], &coeff)
			result[d].Add(&result[d], &term)
		}
	}
	return result
}

// polyMulLinear returns p(x)·(x-r) in coefficient form.
func polyMulLinear(p []fr.Element, r fr.Element) []fr.Element {
	out := make([]fr.Element, len(p)+1)
	for i := range p {
		var t fr.Element
		t.Mul(&p[i], &r)
		out[i].Sub(&out[i], &t)
		out[i+1].Add(&out[i+1], &p[i])
	}
	return out
}

// syntheticDivide divides the monic polynomial full by (x-r), where r is
// known to be a root, returning the degree-(len(full)-2) quotient.
func syntheticDivide(full []fr.Element, r fr.Element) []fr.Element {
	deg := len(full) - 1
	q := make([]fr.Element, deg)
	q[deg-1] = full[deg]
	for d := deg - 1; d >= 1; d-- {
		var tmp fr.Element
		tmp.Mul(&r, &q[d])
		q[d-1].Add(&full[d], &tmp)
	}
	return q
}

func hornerEval(coeffs []fr.Element, x fr.Element) fr.Element {
	var acc fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &coeffs[i])
	}
	return acc
}
