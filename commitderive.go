// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"encoding/binary"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// deriveCommit computes H(enc(payloadByteLen) || enc(numStorageNodes) ||
// enc(polyCommits[0]) || ...), the binding digest that ties a Common to
// the exact polynomial commitments and declared sizes it was built from:
// §4.6. polyCommits encode via their canonical uncompressed marshaling.
func deriveCommit(newHash func() hash.Hash, polyCommits []kzg.Digest, payloadByteLen, numStorageNodes uint32) Commit {
	h := newHash()
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], payloadByteLen)
	h.Write(lenBuf[:])
	binary.LittleEndian.PutUint32(lenBuf[:], numStorageNodes)
	h.Write(lenBuf[:])
	for i := range polyCommits {
		b := polyCommits[i].Marshal()
		h.Write(b)
	}
	var c Commit
	copy(c[:], h.Sum(nil))
	return c
}
