// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// isPowerOfTwo reports whether n is a power of two. 0 is not.
func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// buildDomains constructs the two roots-of-unity domains the scheme needs:
// evalDomain of exactly chunkSize elements (used for the per-chunk IFFT and
// the final FFT back to evaluation form) and multiOpenDomain, the smallest
// power-of-two domain at least as large as codeWordSize (used for RS
// evaluation, multi-opening and decode). Both cardinalities are powers of
// two, so evalDomain is automatically a subgroup of multiOpenDomain: §9's
// "domain relationship" design note.
func buildDomains(chunkSize, codeWordSize uint64) (*fft.Domain, *fft.Domain, error) {
	if !isPowerOfTwo(chunkSize) {
		return nil, nil, newArgumentError("chunk_size %d is not a power of two", chunkSize)
	}
	multiOpenSize := ecc.NextPowerOfTwo(codeWordSize)
	evalDomain := fft.NewDomain(chunkSize)
	multiOpenDomain := fft.NewDomain(multiOpenSize)
	return evalDomain, multiOpenDomain, nil
}

// domainElement returns ω^i for the domain's generator ω.
func domainElement(d *fft.Domain, i uint64) fr.Element {
	var out fr.Element
	out.Exp(d.Generator, new(big.Int).SetUint64(i))
	return out
}
