// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// evaluatePolys evaluates every polynomial on multiOpenDomain, truncated to
// the first codeWordSize points (§4.3), then transposes the result from
// per-polynomial evaluation vectors into per-code-word-position vectors:
// allStorageNodeEvals[i][j] = polys[j](ω^i). Evaluation across polynomials
// is data-parallel per §5.
func (s *Scheme) evaluatePolys(polys [][]fr.Element) [][]fr.Element {
	codeWordSize := int(s.params.codeWordSize())
	numPolys := len(polys)
	perPoly := make([][]fr.Element, numPolys)

	var wg sync.WaitGroup
	wg.Add(numPolys)
	for p := 0; p < numPolys; p++ {
		go func(p int) {
			defer wg.Done()
			padded := make([]fr.Element, s.multiOpenDomain.Cardinality)
			copy(padded, polys[p])
			fftNatural(s.multiOpenDomain, padded)
			perPoly[p] = padded[:codeWordSize]
		}(p)
	}
	wg.Wait()

	allStorageNodeEvals := make([][]fr.Element, codeWordSize)
	for i := 0; i < codeWordSize; i++ {
		row := make([]fr.Element, numPolys)
		for p := 0; p < numPolys; p++ {
			row[p] = perPoly[p][i]
		}
		allStorageNodeEvals[i] = row
	}
	return allStorageNodeEvals
}
