// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"errors"
	"fmt"
)

// ArgumentError reports a call that cannot be carried out as given:
// malformed parameters, a payload too long for a u32 length, a share or
// common whose sizes don't fit the scheme, too few shares to recover, or a
// common that is inconsistent with its commit (see IsConsistent). A
// well-formed share that fails its Merkle or KZG check, or whose index is
// out of range, is not an ArgumentError: VerifyShare reports it as a
// reject.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func newArgumentError(format string, args ...interface{}) error {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

// InternalError reports a failure in a collaborator the scheme trusts by
// construction: the KZG backend, the hash function, the FFT domain. It
// signals a bug or a misconfigured dependency, not an adversarial share.
type InternalError struct {
	err error
}

func (e *InternalError) Error() string { return fmt.Sprintf("vid: internal error: %v", e.err) }
func (e *InternalError) Unwrap() error { return e.err }

func newInternalError(err error) error {
	return &InternalError{err: err}
}

// VerifyShare reports cryptographic rejection through a boolean return
// value, not through an error: an ArgumentError/InternalError means the
// call itself couldn't be carried out; a false return with a nil error
// means it was carried out and the share failed verification.
// IsConsistent returns only an error: a mismatch is an ArgumentError.

func isArgument(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}
