// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"crypto/sha256"
	"hash"
	"math"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	log "github.com/luxfi/log"
)

// Scheme is an instantiated ADVZ VID configuration: parameters, domains,
// and a trimmed KZG key pair, reused across dispersals (§4.13). It holds
// no per-dispersal state; CommitOnly/Disperse/VerifyShare/RecoverPayload
// are pure functions of their arguments and the Scheme. Concurrent calls
// on one Scheme are not supported (§5); use one Scheme per goroutine.
type Scheme struct {
	params          Params
	evalDomain      *fft.Domain
	multiOpenDomain *fft.Domain
	pk              kzg.ProvingKey
	vk              kzg.VerifyingKey
	newHash         func() hash.Hash
	committer       BatchCommitter
	log             log.Logger
}

// Option configures a Scheme at construction.
type Option func(*Scheme)

// WithLogger overrides the default test logger.
func WithLogger(l log.Logger) Option {
	return func(s *Scheme) { s.log = l }
}

// WithHashFamily fixes the hash used by the Merkle tree, the commit
// deriver and the Fiat-Shamir challenge (§6.3's hash_family option).
// Defaults to crypto/sha256.
func WithHashFamily(newHash func() hash.Hash) Option {
	return func(s *Scheme) { s.newHash = newHash }
}

// WithBatchCommitter overrides the CPU batch committer, e.g. with a
// GPU-backed implementation (§4.4, gpu.go).
func WithBatchCommitter(c BatchCommitter) Option {
	return func(s *Scheme) { s.committer = c }
}

// New constructs a Scheme with multiplicity 1.
func New(recoveryThreshold, numStorageNodes uint32, srs kzg.SRS, opts ...Option) (*Scheme, error) {
	return newScheme(Params{
		RecoveryThreshold: recoveryThreshold,
		NumStorageNodes:   numStorageNodes,
		Multiplicity:      1,
	}, srs, opts...)
}

// NewWithMultiplicity constructs a Scheme with an explicit multiplicity
// m, the batching factor by which each storage node's share grows:
// §4's with_multiplicity path.
func NewWithMultiplicity(recoveryThreshold, numStorageNodes, multiplicity uint32, srs kzg.SRS, opts ...Option) (*Scheme, error) {
	return newScheme(Params{
		RecoveryThreshold: recoveryThreshold,
		NumStorageNodes:   numStorageNodes,
		Multiplicity:      multiplicity,
	}, srs, opts...)
}

func newScheme(p Params, srs kzg.SRS, opts ...Option) (*Scheme, error) {
	if p.RecoveryThreshold == 0 {
		return nil, newArgumentError("recovery_threshold must be at least 1")
	}
	if p.NumStorageNodes < p.RecoveryThreshold {
		return nil, newArgumentError("num_storage_nodes %d < recovery_threshold %d", p.NumStorageNodes, p.RecoveryThreshold)
	}
	if p.Multiplicity == 0 {
		p.Multiplicity = 1
	}
	if !isPowerOfTwo(uint64(p.Multiplicity)) {
		return nil, newArgumentError("multiplicity %d is not a power of two", p.Multiplicity)
	}

	chunkSize := p.chunkSize()
	codeWordSize := p.codeWordSize()
	evalDomain, multiOpenDomain, err := buildDomains(chunkSize, codeWordSize)
	if err != nil {
		return nil, err
	}

	pk, err := trimProvingKey(srs.Pk, chunkSize)
	if err != nil {
		return nil, err
	}

	s := &Scheme{
		params:          p,
		evalDomain:      evalDomain,
		multiOpenDomain: multiOpenDomain,
		pk:              pk,
		vk:              srs.Vk,
		newHash:         sha256.New,
		log:             log.NewTestLogger(log.InfoLevel),
	}
	s.committer = newCPUBatchCommitter(s.pk)
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CommitOnly performs §4.1→4.2→4.4→4.6 and returns only the binding
// commit, without building shares or the Merkle tree: cheaper than
// Disperse when the caller only needs to check commit determinism or
// precompute a commit ahead of full dispersal.
func (s *Scheme) CommitOnly(payload []byte) (Commit, error) {
	if len(payload) > math.MaxUint32 {
		return Commit{}, newArgumentError("payload of %d bytes exceeds u32 length", len(payload))
	}
	elems := bytesToField(payload)
	polys := s.bytesToPolys(elems)
	polyCommits, err := s.committer.BatchCommit(polys)
	if err != nil {
		return Commit{}, newInternalError(err)
	}
	return deriveCommit(s.newHash, polyCommits, uint32(len(payload)), s.params.NumStorageNodes), nil
}

// Disperse runs the full pipeline of §4 and returns a VidDisperse holding
// one Share per storage node, the Common metadata, and the binding
// Commit.
func (s *Scheme) Disperse(payload []byte) (VidDisperse, error) {
	if len(payload) > math.MaxUint32 {
		return VidDisperse{}, newArgumentError("payload of %d bytes exceeds u32 length", len(payload))
	}
	s.log.Debug("vid disperse starting", "num_storage_nodes", s.params.NumStorageNodes, "payload_len", len(payload))

	elems := bytesToField(payload)
	polys := s.bytesToPolys(elems)
	polyCommits, err := s.committer.BatchCommit(polys)
	if err != nil {
		return VidDisperse{}, newInternalError(err)
	}
	commit := deriveCommit(s.newHash, polyCommits, uint32(len(payload)), s.params.NumStorageNodes)

	allStorageNodeEvals := s.evaluatePolys(polys)

	n := int(s.params.NumStorageNodes)
	m := int(s.params.Multiplicity)
	leaves := make([][]byte, n)
	for i := 0; i < n; i++ {
		leaves[i] = evalsLeafBytes(nodeEvals(allStorageNodeEvals, i, m))
	}
	tree := newMerkleTree(leaves, s.newHash)
	allEvalsDigest := tree.root()

	alpha := fiatShamirChallenge(s.newHash, commit, allEvalsDigest)
	aggPoly := aggregatePolys(polys, alpha)

	codeWordSize := int(s.params.codeWordSize())
	multiOpenProofs, err := s.multiOpenAggregate(aggPoly, codeWordSize)
	if err != nil {
		return VidDisperse{}, newInternalError(err)
	}

	shares := assembleShares(allStorageNodeEvals, multiOpenProofs, s.params.NumStorageNodes, s.params.Multiplicity, tree)

	common := Common{
		PolyCommits:     polyCommits,
		AllEvalsDigest:  allEvalsDigest,
		PayloadByteLen:  uint32(len(payload)),
		NumStorageNodes: s.params.NumStorageNodes,
		Multiplicity:    s.params.Multiplicity,
	}

	return VidDisperse{Shares: shares, Common: common, Commit: commit}, nil
}

// GetPayloadByteLen returns the payload length recorded in common.
func (s *Scheme) GetPayloadByteLen(common Common) uint32 { return common.PayloadByteLen }

// GetNumStorageNodes returns the storage node count recorded in common.
func (s *Scheme) GetNumStorageNodes(common Common) uint32 { return common.NumStorageNodes }

// GetMultiplicity returns the multiplicity recorded in common.
func (s *Scheme) GetMultiplicity(common Common) uint32 { return common.Multiplicity }
