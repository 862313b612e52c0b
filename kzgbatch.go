// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// BatchCommitter produces one KZG commitment per polynomial, in input
// order: §4.4. The CPU implementation below is always available; callers
// may supply their own (e.g. a GPU-backed one, see gpu.go) via
// WithBatchCommitter.
type BatchCommitter interface {
	BatchCommit(polys [][]fr.Element) ([]kzg.Digest, error)
}

// cpuBatchCommitter commits each polynomial independently against a
// shared, degree-trimmed proving key.
type cpuBatchCommitter struct {
	pk kzg.ProvingKey
}

func newCPUBatchCommitter(pk kzg.ProvingKey) *cpuBatchCommitter {
	return &cpuBatchCommitter{pk: pk}
}

func (c *cpuBatchCommitter) BatchCommit(polys [][]fr.Element) ([]kzg.Digest, error) {
	out := make([]kzg.Digest, len(polys))
	for i, p := range polys {
		d, err := kzg.Commit(p, c.pk)
		if err != nil {
			return nil, fmt.Errorf("kzg commit poly %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// trimProvingKey restricts srs.Pk to exactly chunkSize G1 elements, the
// size needed to commit a degree-(chunkSize-1) polynomial:
// poly_degree = chunk_size - 1, mirroring UnivariateKzgPCS::trim in the
// original.
func trimProvingKey(pk kzg.ProvingKey, chunkSize uint64) (kzg.ProvingKey, error) {
	if uint64(len(pk.G1)) < chunkSize {
		return kzg.ProvingKey{}, newArgumentError(
			"srs has %d G1 elements, need at least chunk_size=%d", len(pk.G1), chunkSize)
	}
	return kzg.ProvingKey{G1: pk.G1[:chunkSize]}, nil
}
