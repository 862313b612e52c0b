// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	"github.com/stretchr/testify/require"
)

// scenario 1 of §8.3: n=6, k=4, m=1, a 4000-byte random payload.
func TestRoundTripBasic(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)
	require.Len(t, disperse.Shares, n)

	for i, sh := range disperse.Shares {
		ok, err := s.VerifyShare(sh, disperse.Common, disperse.Commit)
		require.NoError(t, err, "share %d", i)
		require.True(t, ok, "share %d should verify", i)
	}

	recovered, err := s.RecoverPayload(disperse.Shares[:k], disperse.Common)
	require.NoError(t, err)
	require.Equal(t, payload, recovered)
}

// scenario 2 of §8.3: a flipped evaluation is rejected, others still accept.
func TestVerifyShareRejectsFlippedEval(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	tampered := disperse.Shares[0]
	tampered.Evals = append([]fr.Element{}, tampered.Evals...)
	tampered.Evals[0].Double(&tampered.Evals[0])

	ok, err := s.VerifyShare(tampered, disperse.Common, disperse.Commit)
	require.NoError(t, err)
	require.False(t, ok)

	for i := 1; i < n; i++ {
		ok, err := s.VerifyShare(disperse.Shares[i], disperse.Common, disperse.Commit)
		require.NoError(t, err)
		require.True(t, ok, "share %d should still verify", i)
	}
}

// scenario 3 of §8.3: popping a poly commit makes verification an
// argument error.
func TestVerifyShareArgumentErrorOnTruncatedPolyCommits(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	common := disperse.Common
	common.PolyCommits = common.PolyCommits[:len(common.PolyCommits)-1]

	_, err = s.VerifyShare(disperse.Shares[0], common, disperse.Commit)
	require.Error(t, err)
	require.True(t, isArgument(err))
}

// scenario 4 of §8.3: shifting every index by +n shifts code-word
// positions out of range and recovery fails.
func TestRecoverPayloadFailsOnShiftedIndices(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	shifted := append([]Share{}, disperse.Shares[:k]...)
	for i := range shifted {
		shifted[i].Index += n
	}

	_, err = s.RecoverPayload(shifted, disperse.Common)
	require.Error(t, err)
}

// scenario 6 of §8.3: n=4, k=4, m=2, a 200-byte payload.
func TestMultiplicityTwo(t *testing.T) {
	const n, k, m = 4, 4, 2
	srs := testSRS(t, k*m)
	s, err := NewWithMultiplicity(k, n, m, srs)
	require.NoError(t, err)

	payload := make([]byte, 200)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)
	require.Len(t, disperse.Shares, n)

	numPolys := len(disperse.Common.PolyCommits)
	for _, sh := range disperse.Shares {
		require.Len(t, sh.Evals, m*numPolys)
		require.Len(t, sh.AggregateProofs, m)
		ok, err := s.VerifyShare(sh, disperse.Common, disperse.Commit)
		require.NoError(t, err)
		require.True(t, ok)
	}

	recovered, err := s.RecoverPayload(disperse.Shares, disperse.Common)
	require.NoError(t, err)
	require.Equal(t, payload, recovered)
}

// commit determinism: disperse(payload).commit == commit_only(payload).
func TestCommitOnlyMatchesDisperseCommit(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 777)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	commitOnly, err := s.CommitOnly(payload)
	require.NoError(t, err)
	require.Equal(t, disperse.Commit, commitOnly)
}

// subset monotonicity: recovery succeeds from any k..n shares, always
// equal to the original.
func TestRecoverPayloadSubsetMonotonicity(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 1500)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	for subsetSize := k; subsetSize <= n; subsetSize++ {
		recovered, err := s.RecoverPayload(disperse.Shares[:subsetSize], disperse.Common)
		require.NoError(t, err)
		require.Equal(t, payload, recovered)
	}
}

// recovery with k-1 shares is an argument error.
func TestRecoverPayloadTooFewSharesIsArgumentError(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 100)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	_, err = s.RecoverPayload(disperse.Shares[:k-1], disperse.Common)
	require.Error(t, err)
	require.True(t, isArgument(err))
}

// metadata fidelity.
func TestMetadataFidelity(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 333)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	require.Equal(t, uint32(len(payload)), s.GetPayloadByteLen(disperse.Common))
	require.Equal(t, uint32(n), s.GetNumStorageNodes(disperse.Common))
	require.Equal(t, uint32(1), s.GetMultiplicity(disperse.Common))

	require.NoError(t, s.IsConsistent(disperse.Commit, disperse.Common))
}

// a share missing one eval is rejected before any cryptography runs.
func TestVerifyShareArgumentErrorOnDroppedEval(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	tampered := disperse.Shares[0]
	tampered.Evals = tampered.Evals[:len(tampered.Evals)-1]

	_, err = s.VerifyShare(tampered, disperse.Common, disperse.Commit)
	require.Error(t, err)
	require.True(t, isArgument(err))
}

// a share's evals/proofs belong to a different, in-bounds index: the
// Merkle leaf no longer matches the path walked at the claimed index.
func TestVerifyShareRejectsPermutedIndex(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	permuted := disperse.Shares[0]
	permuted.Index = disperse.Shares[1].Index

	ok, err := s.VerifyShare(permuted, disperse.Common, disperse.Commit)
	require.NoError(t, err)
	require.False(t, ok)
}

// an index at or beyond num_storage_nodes is rejected, not an error: the
// call was well-formed, the share just doesn't belong to this scheme.
func TestVerifyShareRejectsOutOfBoundsIndex(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	outOfBounds := disperse.Shares[0]
	outOfBounds.Index = n

	ok, err := s.VerifyShare(outOfBounds, disperse.Common, disperse.Commit)
	require.NoError(t, err)
	require.False(t, ok)
}

// swapping one share's evals_proof for another's leaves the claimed
// evals unauthenticated against the tree root.
func TestVerifyShareRejectsSwappedEvalsProof(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	swapped := disperse.Shares[0]
	swapped.EvalsProof = disperse.Shares[1].EvalsProof

	ok, err := s.VerifyShare(swapped, disperse.Common, disperse.Commit)
	require.NoError(t, err)
	require.False(t, ok)
}

// a poly_commits entry zeroed out no longer derives the bound commit.
func TestVerifyShareArgumentErrorOnZeroedPolyCommit(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	common := disperse.Common
	common.PolyCommits = append([]kzg.Digest{}, common.PolyCommits...)
	common.PolyCommits[0].X.SetZero()
	common.PolyCommits[0].Y.SetZero()

	_, err = s.VerifyShare(disperse.Shares[0], common, disperse.Commit)
	require.Error(t, err)
	require.True(t, isArgument(err))
}

// a single flipped byte of all_evals_digest breaks the Merkle path for
// every share dispersed under it.
func TestVerifyShareRejectsTamperedAllEvalsDigest(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	common := disperse.Common
	common.AllEvalsDigest[0] ^= 0x01

	ok, err := s.VerifyShare(disperse.Shares[0], common, disperse.Commit)
	require.NoError(t, err)
	require.False(t, ok)
}

// recovery over shares with inconsistent eval-vector lengths is an
// argument error, not a best-effort decode.
func TestRecoverPayloadArgumentErrorOnUnequalEvalLengths(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 4000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	shares := append([]Share{}, disperse.Shares[:k]...)
	shares[0].Evals = shares[0].Evals[:len(shares[0].Evals)-1]

	_, err = s.RecoverPayload(shares, disperse.Common)
	require.Error(t, err)
	require.True(t, isArgument(err))
}

// scenario 5 of §8.3: n=512, k=256, m=1, a 2^25-byte random payload. Skipped
// under -short since the O(chunk_size^2) Lagrange decode and the sheer
// payload size make it the slowest scenario by a wide margin.
func TestRoundTripLargePayload(t *testing.T) {
	if testing.Short() {
		t.Skip("large-payload round trip skipped in -short mode")
	}
	const n, k = 512, 256
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 1<<25)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	commitOnly, err := s.CommitOnly(payload)
	require.NoError(t, err)
	require.Equal(t, disperse.Commit, commitOnly)

	recovered, err := s.RecoverPayload(disperse.Shares[:k], disperse.Common)
	require.NoError(t, err)
	require.Equal(t, payload, recovered)
}
