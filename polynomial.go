// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// ifftNatural inverse-transforms a natural-order evaluation vector into a
// natural-order coefficient vector. gnark-crypto's DIF decimation leaves
// the result bit-reversed; BitReverse restores natural order so neither
// caller nor the matching fftNatural ever has to reason about bit-reversal.
func ifftNatural(d *fft.Domain, a []fr.Element) {
	d.FFTInverse(a, fft.DIF)
	fft.BitReverse(a)
}

// fftNatural is the forward counterpart of ifftNatural.
func fftNatural(d *fft.Domain, a []fr.Element) {
	d.FFT(a, fft.DIF)
	fft.BitReverse(a)
}

// bytesToPolys partitions the packed field sequence into chunkSize-element
// chunks (the last zero-padded) and IFFTs each chunk over evalDomain,
// producing P = ceil(len(elems)/chunkSize) coefficient-form polynomials.
// Per §4.2 and §5, the chunks are independent and processed in parallel.
func (s *Scheme) bytesToPolys(elems []fr.Element) [][]fr.Element {
	chunkSize := int(s.params.chunkSize())
	if len(elems) == 0 {
		return nil
	}
	numPolys := (len(elems) + chunkSize - 1) / chunkSize
	polys := make([][]fr.Element, numPolys)

	var wg sync.WaitGroup
	wg.Add(numPolys)
	for p := 0; p < numPolys; p++ {
		go func(p int) {
			defer wg.Done()
			chunk := make([]fr.Element, chunkSize)
			start := p * chunkSize
			for i := 0; i < chunkSize; i++ {
				if idx := start + i; idx < len(elems) {
					chunk[i] = elems[idx]
				}
			}
			ifftNatural(s.evalDomain, chunk)
			polys[p] = chunk
		}(p)
	}
	wg.Wait()
	return polys
}
