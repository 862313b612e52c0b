// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build cgo

package vid

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// gpuBatchCommitter is the optional GPU-backed BatchCommitter named in
// §4.4 and §9 ("mutability on disperse/commit_only... accommodate device
// buffers"). It follows the same cgo-gated accelerator shape used
// elsewhere for device-backed batch operations, but has no native kernel
// behind it in this module: no GPU MSM library is reachable in vid's
// dependency set, so BatchCommit falls back to the CPU path. The type
// exists so a caller linking a real accelerator can replace the body of
// BatchCommit without changing Scheme's BatchCommitter interface.
type gpuBatchCommitter struct {
	cpu *cpuBatchCommitter
}

func newGPUBatchCommitter(pk kzg.ProvingKey) *gpuBatchCommitter {
	return &gpuBatchCommitter{cpu: newCPUBatchCommitter(pk)}
}

func (g *gpuBatchCommitter) BatchCommit(polys [][]fr.Element) ([]kzg.Digest, error) {
	return g.cpu.BatchCommit(polys)
}
