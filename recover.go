// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// RecoverPayload reconstructs the original payload from any ≥ k shares:
// §4.12. It does not re-verify the shares; a corrupted but in-bounds
// share silently yields the wrong payload bytes rather than an error
// (§7's propagation policy), since the erasure decoder has no oracle to
// detect it.
func (s *Scheme) RecoverPayload(shares []Share, common Common) ([]byte, error) {
	k := int(s.params.RecoveryThreshold)
	if len(shares) < k {
		return nil, newArgumentError("only %d shares given, need at least %d", len(shares), k)
	}
	if common.NumStorageNodes != s.params.NumStorageNodes {
		return nil, newArgumentError("common.num_storage_nodes %d != scheme's %d", common.NumStorageNodes, s.params.NumStorageNodes)
	}

	m := int(common.Multiplicity)
	if m == 0 {
		m = 1
	}
	numPolys := len(common.PolyCommits)
	expectedLen := m * numPolys
	for i, sh := range shares {
		if len(sh.Evals) != expectedLen {
			return nil, newArgumentError("share %d has %d evals, expected %d", i, len(sh.Evals), expectedLen)
		}
	}

	chunkSize := int(s.params.chunkSize())
	out := make([]fr.Element, 0, numPolys*chunkSize)

	for p := 0; p < numPolys; p++ {
		points := make([]erasurePoint, 0, len(shares)*m)
		for _, sh := range shares {
			for l := 0; l < m; l++ {
				pos := uint64(sh.Index)*uint64(m) + uint64(l)
				val := sh.Evals[l*numPolys+p]
				points = append(points, erasurePoint{Pos: pos, Val: val})
			}
		}
		coeffs, err := reedSolomonDecodeROU(points, chunkSize, s.multiOpenDomain)
		if err != nil {
			return nil, err
		}
		fftNatural(s.evalDomain, coeffs)
		out = append(out, coeffs...)
	}

	payload := fieldToBytes(out)
	if uint32(len(payload)) < common.PayloadByteLen {
		return nil, newInternalError(newArgumentError("decoded payload shorter than declared payload_byte_len"))
	}
	return payload[:common.PayloadByteLen], nil
}
