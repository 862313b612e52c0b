// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"hash"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// fiatShamirChallenge derives α = H(commit || allEvalsDigest), interpreted
// as a scalar by reducing the hash output, read as a little-endian
// integer, modulo the field order: §4.7 (mirroring from_le_bytes_mod_order
// in the reference construction). gnark-crypto's fr.Element.SetBytes reads
// its input big-endian, so the digest is byte-reversed first. Uniformity
// is not required, only unpredictability to a party that has already
// committed to commit and allEvalsDigest.
func fiatShamirChallenge(newHash func() hash.Hash, commit Commit, allEvalsDigest MerkleNode) fr.Element {
	h := newHash()
	h.Write(commit[:])
	h.Write(allEvalsDigest[:])
	digest := h.Sum(nil)
	for i, j := 0, len(digest)-1; i < j; i, j = i+1, j-1 {
		digest[i], digest[j] = digest[j], digest[i]
	}
	var alpha fr.Element
	alpha.SetBytes(digest)
	return alpha
}

// aggregatePolys folds [p0, ..., p_{P-1}] via Horner's method at α:
// (((p_{P-1}·α + p_{P-2})·α + ...)·α + p0). All polynomials must share the
// same (coefficient) length.
func aggregatePolys(polys [][]fr.Element, alpha fr.Element) []fr.Element {
	if len(polys) == 0 {
		return nil
	}
	deg := len(polys[0])
	acc := make([]fr.Element, deg)
	copy(acc, polys[len(polys)-1])
	for j := len(polys) - 2; j >= 0; j-- {
		for d := 0; d < deg; d++ {
			acc[d].Mul(&acc[d], &alpha)
			acc[d].Add(&acc[d], &polys[j][d])
		}
	}
	return acc
}

// aggregateFieldElements is the same Horner fold over scalars, used to
// combine a share's per-polynomial evaluations into one aggregate
// evaluation.
func aggregateFieldElements(vals []fr.Element, alpha fr.Element) fr.Element {
	var acc fr.Element
	if len(vals) == 0 {
		return acc
	}
	acc = vals[len(vals)-1]
	for j := len(vals) - 2; j >= 0; j-- {
		acc.Mul(&acc, &alpha)
		acc.Add(&acc, &vals[j])
	}
	return acc
}

// aggregateCommitments is the same Horner fold over the curve's additive
// group, used to combine per-polynomial KZG commitments into the
// aggregate commitment that aggregate_proofs opens against.
func aggregateCommitments(commits []kzg.Digest, alpha fr.Element) kzg.Digest {
	var out kzg.Digest
	if len(commits) == 0 {
		return out
	}
	var alphaBig big.Int
	alpha.BigInt(&alphaBig)

	var acc bls12381.G1Jac
	acc.FromAffine(&commits[len(commits)-1])
	for j := len(commits) - 2; j >= 0; j-- {
		acc.ScalarMultiplication(&acc, &alphaBig)
		var next bls12381.G1Jac
		next.FromAffine(&commits[j])
		acc.AddAssign(&next)
	}
	out.FromJacobian(&acc)
	return out
}
