// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

// IsConsistent reports whether commit could have been derived from
// common, i.e. commit == deriveCommit(common.PolyCommits,
// common.PayloadByteLen, common.NumStorageNodes): invariant 1 of §3.
// Unlike VerifyShare this has no cryptographic-reject layer: a mismatch
// here always means common/commit were never paired by an honest
// disperse, so it is reported as an ArgumentError.
func (s *Scheme) IsConsistent(commit Commit, common Common) error {
	if common.NumStorageNodes != s.params.NumStorageNodes {
		return newArgumentError("common.num_storage_nodes %d != scheme's %d", common.NumStorageNodes, s.params.NumStorageNodes)
	}
	derived := deriveCommit(s.newHash, common.PolyCommits, common.PayloadByteLen, common.NumStorageNodes)
	if derived != commit {
		return newArgumentError("commit is inconsistent with common")
	}
	return nil
}

// VerifyShare checks share against common and commit: §4.11. The first
// return value is the cryptographic accept/reject result and is only
// meaningful when err is nil; a non-nil error means the call could not be
// carried out at all (malformed share/common, or common inconsistent
// with commit), distinct from a false accept/reject.
func (s *Scheme) VerifyShare(share Share, common Common, commit Commit) (bool, error) {
	m := int(common.Multiplicity)
	if m == 0 {
		m = 1
	}
	numPolys := len(common.PolyCommits)
	if len(share.Evals) != m*numPolys {
		return false, newArgumentError("|share.evals| = %d does not match m*|common.poly_commits| = %d", len(share.Evals), m*numPolys)
	}
	if common.NumStorageNodes != s.params.NumStorageNodes {
		return false, newArgumentError("common.num_storage_nodes %d != scheme's %d", common.NumStorageNodes, s.params.NumStorageNodes)
	}
	if err := s.IsConsistent(commit, common); err != nil {
		return false, err
	}

	if share.Index >= common.NumStorageNodes {
		s.log.Warn("vid share rejected", "reason", "index out of range", "index", share.Index)
		return false, nil
	}

	leaf := evalsLeafBytes(share.Evals)
	if !verifyMerkleProof(leaf, share.Index, share.EvalsProof, common.AllEvalsDigest, s.newHash) {
		s.log.Warn("vid share rejected", "reason", "merkle proof failed", "index", share.Index)
		return false, nil
	}

	alpha := fiatShamirChallenge(s.newHash, commit, common.AllEvalsDigest)
	aggCommit := aggregateCommitments(common.PolyCommits, alpha)

	for l := 0; l < m; l++ {
		subBatch := share.Evals[l*numPolys : (l+1)*numPolys]
		aggEval := aggregateFieldElements(subBatch, alpha)
		position := uint64(share.Index)*uint64(m) + uint64(l)
		if !s.verifyAggregateOpening(aggCommit, position, share.AggregateProofs[l], aggEval) {
			s.log.Warn("vid share rejected", "reason", "kzg opening failed", "index", share.Index, "sub_batch", l)
			return false, nil
		}
	}
	return true, nil
}
