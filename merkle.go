// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MerkleNode is a tree node digest, fixed size regardless of the hash
// family configured via Option WithHashFamily.
type MerkleNode [32]byte

// MerkleProof is a membership proof for one leaf of an evals Merkle tree
// (§4.5): the sibling digest at each level, leaf first. The leaf's own
// index is not carried here — it is share.Index, supplied by the caller
// at verification time, so the two can never silently drift apart.
type MerkleProof struct {
	Siblings []MerkleNode
}

const (
	leafDomainTag     byte = 0x00
	internalDomainTag byte = 0x01
)

func hashLeaf(newHash func() hash.Hash, leaf []byte) MerkleNode {
	h := newHash()
	h.Write([]byte{leafDomainTag})
	h.Write(leaf)
	return toMerkleNode(h.Sum(nil))
}

func hashInternal(newHash func() hash.Hash, left, right MerkleNode) MerkleNode {
	h := newHash()
	h.Write([]byte{internalDomainTag})
	h.Write(left[:])
	h.Write(right[:])
	return toMerkleNode(h.Sum(nil))
}

func toMerkleNode(b []byte) MerkleNode {
	var n MerkleNode
	copy(n[:], b)
	return n
}

// evalsLeafBytes canonically encodes one storage node's m*P evaluation
// vector (the share.Evals layout, see nodeEvals) for Merkle hashing.
func evalsLeafBytes(evals []fr.Element) []byte {
	out := make([]byte, 0, len(evals)*fr.Bytes)
	for i := range evals {
		b := evals[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}

// merkleTree is a binary tree over exactly len(leaves) evaluation vectors,
// padded up to the next power of two with empty leaves.
type merkleTree struct {
	levels   [][]MerkleNode
	newHash  func() hash.Hash
	numLeafs int
}

func newMerkleTree(leaves [][]byte, newHash func() hash.Hash) *merkleTree {
	n := len(leaves)
	size := 1
	for size < n {
		size <<= 1
	}
	if size == 0 {
		size = 1
	}
	level := make([]MerkleNode, size)
	for i := 0; i < size; i++ {
		if i < n {
			level[i] = hashLeaf(newHash, leaves[i])
		} else {
			level[i] = hashLeaf(newHash, nil)
		}
	}
	levels := [][]MerkleNode{level}
	for len(level) > 1 {
		next := make([]MerkleNode, (len(level)+1)/2)
		for i := range next {
			l := level[2*i]
			r := l
			if 2*i+1 < len(level) {
				r = level[2*i+1]
			}
			next[i] = hashInternal(newHash, l, r)
		}
		levels = append(levels, next)
		level = next
	}
	return &merkleTree{levels: levels, newHash: newHash, numLeafs: n}
}

func (t *merkleTree) root() MerkleNode {
	return t.levels[len(t.levels)-1][0]
}

func (t *merkleTree) proof(index uint32) MerkleProof {
	idx := int(index)
	siblings := make([]MerkleNode, 0, len(t.levels)-1)
	for l := 0; l < len(t.levels)-1; l++ {
		level := t.levels[l]
		sib := level[idx]
		if idx%2 == 0 {
			if idx+1 < len(level) {
				sib = level[idx+1]
			}
		} else {
			sib = level[idx-1]
		}
		siblings = append(siblings, sib)
		idx /= 2
	}
	return MerkleProof{Siblings: siblings}
}

// verifyMerkleProof recomputes the path from leaf to root, walking at
// index, and compares against root: §4.11 authenticates "leaf at index
// share.index", so callers pass share.Index rather than any value carried
// inside proof itself.
func verifyMerkleProof(leaf []byte, index uint32, proof MerkleProof, root MerkleNode, newHash func() hash.Hash) bool {
	cur := hashLeaf(newHash, leaf)
	idx := int(index)
	for _, sib := range proof.Siblings {
		if idx%2 == 0 {
			cur = hashInternal(newHash, cur, sib)
		} else {
			cur = hashInternal(newHash, sib, cur)
		}
		idx /= 2
	}
	return cur == root
}
