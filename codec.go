// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vid

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// fieldByteCapacity is the largest C such that every C-byte big-endian
// string fits injectively into the scalar field: §4.1. For bls12-381 Fr
// (a 255-bit modulus) this is 31.
func fieldByteCapacity() int {
	bits := fr.Modulus().BitLen()
	return (bits - 1) / 8
}

// bytesToField packs payload into field elements, fieldByteCapacity()
// bytes per element, the last element zero-padded on the right.
func bytesToField(payload []byte) []fr.Element {
	capLen := fieldByteCapacity()
	if len(payload) == 0 {
		return nil
	}
	n := (len(payload) + capLen - 1) / capLen
	elems := make([]fr.Element, n)
	buf := make([]byte, capLen)
	for i := 0; i < n; i++ {
		start := i * capLen
		end := start + capLen
		if end > len(payload) {
			end = len(payload)
		}
		for j := range buf {
			buf[j] = 0
		}
		copy(buf, payload[start:end])
		var bi big.Int
		bi.SetBytes(buf)
		elems[i].SetBigInt(&bi)
	}
	return elems
}

// fieldToBytes is the inverse of bytesToField: it is length-extending, so
// callers truncate the result to the recorded payload_byte_len.
func fieldToBytes(elems []fr.Element) []byte {
	capLen := fieldByteCapacity()
	out := make([]byte, 0, len(elems)*capLen)
	buf := make([]byte, capLen)
	for i := range elems {
		var bi big.Int
		elems[i].BigInt(&bi)
		b := bi.Bytes()
		for j := range buf {
			buf[j] = 0
		}
		copy(buf[capLen-len(b):], b)
		out = append(out, buf...)
	}
	return out
}
