// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonWireRoundTrip(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 1000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	buf, err := disperse.Common.MarshalBinary()
	require.NoError(t, err)

	var got Common
	require.NoError(t, got.UnmarshalBinary(buf))
	require.Equal(t, disperse.Common.PayloadByteLen, got.PayloadByteLen)
	require.Equal(t, disperse.Common.NumStorageNodes, got.NumStorageNodes)
	require.Equal(t, disperse.Common.Multiplicity, got.Multiplicity)
	require.Equal(t, disperse.Common.AllEvalsDigest, got.AllEvalsDigest)
	require.Len(t, got.PolyCommits, len(disperse.Common.PolyCommits))
	for i := range got.PolyCommits {
		require.True(t, got.PolyCommits[i].Equal(&disperse.Common.PolyCommits[i]))
	}

	derived := deriveCommit(s.newHash, got.PolyCommits, got.PayloadByteLen, got.NumStorageNodes)
	require.Equal(t, disperse.Commit, derived)
}

func TestShareWireRoundTrip(t *testing.T) {
	const n, k = 6, 4
	srs := testSRS(t, k)
	s, err := New(k, n, srs)
	require.NoError(t, err)

	payload := make([]byte, 1000)
	_, err = rand.Read(payload)
	require.NoError(t, err)

	disperse, err := s.Disperse(payload)
	require.NoError(t, err)

	for _, original := range disperse.Shares {
		buf, err := original.MarshalBinary()
		require.NoError(t, err)

		var got Share
		require.NoError(t, got.UnmarshalBinary(buf))

		require.Equal(t, original.Index, got.Index)
		require.Len(t, got.Evals, len(original.Evals))
		for i := range got.Evals {
			require.True(t, got.Evals[i].Equal(&original.Evals[i]))
		}
		require.Len(t, got.AggregateProofs, len(original.AggregateProofs))
		for i := range got.AggregateProofs {
			require.True(t, got.AggregateProofs[i].H.Equal(&original.AggregateProofs[i].H))
			require.True(t, got.AggregateProofs[i].ClaimedValue.Equal(&original.AggregateProofs[i].ClaimedValue))
		}
		require.Equal(t, original.EvalsProof, got.EvalsProof)

		ok, err := s.VerifyShare(got, disperse.Common, disperse.Commit)
		require.NoError(t, err)
		require.True(t, ok)
	}
}
