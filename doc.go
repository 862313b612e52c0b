// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vid implements ADVZ, a verifiable information dispersal (VID)
// scheme built from a KZG polynomial commitment, a Merkle vector
// commitment, and a Fiat-Shamir aggregated multi-point opening.
//
// A dealer disperses a payload into per-storage-node shares such that any
// recovery_threshold of the n shares reconstruct the original payload, while
// every share independently verifies against a constant-size commitment
// derived at dispersal time.
package vid
