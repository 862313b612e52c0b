// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"hash"

	"github.com/zeebo/blake3"
)

// NewBlake3Hash adapts blake3.New to the func() hash.Hash shape
// WithHashFamily expects, so a Scheme can be instantiated with blake3 in
// place of the sha256 default: §6.3's hash_family option.
func NewBlake3Hash() hash.Hash {
	return blake3.New()
}
