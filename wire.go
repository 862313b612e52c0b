// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// Wire-level serialization: §6.2. Common and Share both implement
// encoding.BinaryMarshaler/BinaryUnmarshaler rather than pulling in a
// generic serialization framework (gob, protobuf, …): other cryptographic
// types in this codebase's lineage marshal the same way, through
// hand-written canonical encoders rather than a reflection-based codec.
//
// Group elements, field elements and KZG proofs use gnark-crypto's own
// canonical Marshal/Unmarshal; integers are little-endian fixed-width.

func putUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func readUint32(src []byte) (uint32, []byte, error) {
	if len(src) < 4 {
		return 0, nil, fmt.Errorf("truncated uint32")
	}
	return binary.LittleEndian.Uint32(src[:4]), src[4:], nil
}

// MarshalBinary implements encoding.BinaryMarshaler for Common: §6.2.
func (c Common) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 256)
	out = putUint32(out, uint32(len(c.PolyCommits)))
	for i := range c.PolyCommits {
		b := c.PolyCommits[i].Marshal()
		out = putUint32(out, uint32(len(b)))
		out = append(out, b...)
	}
	out = append(out, c.AllEvalsDigest[:]...)
	out = putUint32(out, c.PayloadByteLen)
	out = putUint32(out, c.NumStorageNodes)
	out = putUint32(out, c.Multiplicity)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for Common.
func (c *Common) UnmarshalBinary(data []byte) error {
	n, rest, err := readUint32(data)
	if err != nil {
		return fmt.Errorf("common poly_commits count: %w", err)
	}
	commits := make([]kzg.Digest, n)
	for i := range commits {
		var l uint32
		l, rest, err = readUint32(rest)
		if err != nil {
			return fmt.Errorf("common poly_commits[%d] length: %w", i, err)
		}
		if uint32(len(rest)) < l {
			return fmt.Errorf("common poly_commits[%d]: truncated", i)
		}
		if _, err := commits[i].SetBytes(rest[:l]); err != nil {
			return fmt.Errorf("common poly_commits[%d]: %w", i, err)
		}
		rest = rest[l:]
	}
	if len(rest) < 32 {
		return fmt.Errorf("common all_evals_digest: truncated")
	}
	var digest MerkleNode
	copy(digest[:], rest[:32])
	rest = rest[32:]

	payloadByteLen, rest, err := readUint32(rest)
	if err != nil {
		return fmt.Errorf("common payload_byte_len: %w", err)
	}
	numStorageNodes, rest, err := readUint32(rest)
	if err != nil {
		return fmt.Errorf("common num_storage_nodes: %w", err)
	}
	multiplicity, _, err := readUint32(rest)
	if err != nil {
		return fmt.Errorf("common multiplicity: %w", err)
	}

	c.PolyCommits = commits
	c.AllEvalsDigest = digest
	c.PayloadByteLen = payloadByteLen
	c.NumStorageNodes = numStorageNodes
	c.Multiplicity = multiplicity
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler for Share: §6.2.
func (s Share) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 512)
	out = putUint32(out, s.Index)

	out = putUint32(out, uint32(len(s.Evals)))
	for i := range s.Evals {
		b := s.Evals[i].Bytes()
		out = append(out, b[:]...)
	}

	out = putUint32(out, uint32(len(s.AggregateProofs)))
	for i := range s.AggregateProofs {
		hb := s.AggregateProofs[i].H.Marshal()
		out = putUint32(out, uint32(len(hb)))
		out = append(out, hb...)
		cv := s.AggregateProofs[i].ClaimedValue.Bytes()
		out = append(out, cv[:]...)
	}

	out = putUint32(out, uint32(len(s.EvalsProof.Siblings)))
	for i := range s.EvalsProof.Siblings {
		out = append(out, s.EvalsProof.Siblings[i][:]...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for Share.
func (s *Share) UnmarshalBinary(data []byte) error {
	index, rest, err := readUint32(data)
	if err != nil {
		return fmt.Errorf("share index: %w", err)
	}

	numEvals, rest, err := readUint32(rest)
	if err != nil {
		return fmt.Errorf("share evals count: %w", err)
	}
	evals := make([]fr.Element, numEvals)
	for i := range evals {
		if len(rest) < fr.Bytes {
			return fmt.Errorf("share evals[%d]: truncated", i)
		}
		var b [fr.Bytes]byte
		copy(b[:], rest[:fr.Bytes])
		evals[i].SetBytes(b[:])
		rest = rest[fr.Bytes:]
	}

	numProofs, rest, err := readUint32(rest)
	if err != nil {
		return fmt.Errorf("share aggregate_proofs count: %w", err)
	}
	proofs := make([]kzg.OpeningProof, numProofs)
	for i := range proofs {
		var l uint32
		l, rest, err = readUint32(rest)
		if err != nil {
			return fmt.Errorf("share aggregate_proofs[%d] length: %w", i, err)
		}
		if uint32(len(rest)) < l {
			return fmt.Errorf("share aggregate_proofs[%d]: truncated witness", i)
		}
		if _, err := proofs[i].H.SetBytes(rest[:l]); err != nil {
			return fmt.Errorf("share aggregate_proofs[%d]: %w", i, err)
		}
		rest = rest[l:]
		if len(rest) < fr.Bytes {
			return fmt.Errorf("share aggregate_proofs[%d]: truncated claimed value", i)
		}
		var cv [fr.Bytes]byte
		copy(cv[:], rest[:fr.Bytes])
		proofs[i].ClaimedValue.SetBytes(cv[:])
		rest = rest[fr.Bytes:]
	}

	numSiblings, rest, err := readUint32(rest)
	if err != nil {
		return fmt.Errorf("share evals_proof siblings count: %w", err)
	}
	siblings := make([]MerkleNode, numSiblings)
	for i := range siblings {
		if len(rest) < 32 {
			return fmt.Errorf("share evals_proof siblings[%d]: truncated", i)
		}
		copy(siblings[i][:], rest[:32])
		rest = rest[32:]
	}

	s.Index = index
	s.Evals = evals
	s.AggregateProofs = proofs
	s.EvalsProof = MerkleProof{Siblings: siblings}
	return nil
}
