// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// nodeEvals concatenates, for storage node i, the m code-word-position
// evaluation vectors it owns (positions i*m..(i+1)*m-1) into the single
// m*P vector that becomes both a Merkle leaf and share.Evals: invariant 2
// of §3, and §4.9's sub-batch layout ("for a fixed ℓ, polynomials 0..P-1
// appear in order").
func nodeEvals(allStorageNodeEvals [][]fr.Element, node int, m int) []fr.Element {
	if len(allStorageNodeEvals) == 0 {
		return nil
	}
	polyCount := len(allStorageNodeEvals[0])
	out := make([]fr.Element, 0, m*polyCount)
	for l := 0; l < m; l++ {
		out = append(out, allStorageNodeEvals[node*m+l]...)
	}
	return out
}

// assembleShares builds the per-node Share values: §4.9.
func assembleShares(
	allStorageNodeEvals [][]fr.Element,
	multiOpenProofs []kzg.OpeningProof,
	numStorageNodes, multiplicity uint32,
	tree *merkleTree,
) []Share {
	n := int(numStorageNodes)
	m := int(multiplicity)
	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		evals := nodeEvals(allStorageNodeEvals, i, m)
		proofs := make([]kzg.OpeningProof, m)
		for l := 0; l < m; l++ {
			proofs[l] = multiOpenProofs[i*m+l]
		}
		shares[i] = Share{
			Index:           uint32(i),
			Evals:           evals,
			AggregateProofs: proofs,
			EvalsProof:      tree.proof(uint32(i)),
		}
	}
	return shares
}
