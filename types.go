// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// Commit is the fixed-size digest binding a dispersal: payload_byte_len,
// num_storage_nodes and every polynomial commitment. It is produced once by
// CommitOnly/Disperse and never mutated.
type Commit [32]byte

// Common is the public auxiliary data describing a dispersal. It is
// immutable once produced by Disperse and is distributed to every
// storage node alongside its Share.
type Common struct {
	PolyCommits     []kzg.Digest
	AllEvalsDigest  MerkleNode
	PayloadByteLen  uint32
	NumStorageNodes uint32
	Multiplicity    uint32
}

// Share is the data handed to a single storage node.
type Share struct {
	Index           uint32
	Evals           []fr.Element
	AggregateProofs []kzg.OpeningProof
	EvalsProof      MerkleProof
}

// VidDisperse is the full output of a dispersal: one Share per storage
// node plus the Common metadata and the binding Commit.
type VidDisperse struct {
	Shares []Share
	Common Common
	Commit Commit
}

// Params fixes the instantiation-time configuration of a Scheme: §6.3.
type Params struct {
	// NumStorageNodes is n, the number of shares produced per dispersal.
	NumStorageNodes uint32
	// RecoveryThreshold is k, the minimum number of shares needed to
	// recover a payload.
	RecoveryThreshold uint32
	// Multiplicity is m, the power-of-two batching factor; each storage
	// node holds m evaluations per polynomial and m aggregate proofs.
	// Zero defaults to 1.
	Multiplicity uint32
}

func (p Params) chunkSize() uint64 {
	m := p.Multiplicity
	if m == 0 {
		m = 1
	}
	return uint64(m) * uint64(p.RecoveryThreshold)
}

func (p Params) codeWordSize() uint64 {
	m := p.Multiplicity
	if m == 0 {
		m = 1
	}
	return uint64(m) * uint64(p.NumStorageNodes)
}
