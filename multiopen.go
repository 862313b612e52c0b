// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// multiOpenAggregate produces one KZG opening proof of the aggregate
// polynomial at each of the first codeWordSize points of multiOpenDomain:
// §4.8. Proof j binds to code-word position j. gnark-crypto exposes no
// single-polynomial/many-distinct-points batch primitive for this curve
// (BatchOpenSinglePoint batches many polynomials at one shared point,
// the opposite shape), so this loops the single-point Open primitive;
// see DESIGN.md.
func (s *Scheme) multiOpenAggregate(aggPoly []fr.Element, codeWordSize int) ([]kzg.OpeningProof, error) {
	proofs := make([]kzg.OpeningProof, codeWordSize)
	for i := 0; i < codeWordSize; i++ {
		point := domainElement(s.multiOpenDomain, uint64(i))
		proof, err := kzg.Open(aggPoly, point, s.pk)
		if err != nil {
			return nil, fmt.Errorf("kzg open position %d: %w", i, err)
		}
		proofs[i] = proof
	}
	return proofs, nil
}

// verifyAggregateOpening checks that witness (from the share's stored
// proof) attests that the aggregate commitment opens to expectedValue at
// multiOpenDomain.element(position). expectedValue is recomputed by the
// verifier from the share's own evals (aggregateFieldElements), not
// trusted from the prover: that is what catches a flipped evaluation
// whose witness was never updated to match.
func (s *Scheme) verifyAggregateOpening(aggCommit kzg.Digest, position uint64, witness kzg.OpeningProof, expectedValue fr.Element) bool {
	point := domainElement(s.multiOpenDomain, position)
	proof := kzg.OpeningProof{H: witness.H, ClaimedValue: expectedValue}
	err := kzg.Verify(&aggCommit, &proof, point, s.vk)
	return err == nil
}
