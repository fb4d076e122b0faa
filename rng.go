// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// RNG produces uniform random bytes. It is the sole source of randomness
// consumed by every gadget in this package (fresh masks in New, RefreshMasks,
// the DOM AND/MUL gadget's r_{i,j}, and the B→A recursion's refresh step).
// No gadget ever seeds or reads process-wide environment state; callers
// inject the RNG they want at construction time (see Design Notes,
// "RNG as a collaborator").
type RNG interface {
	// FillBytes fills b entirely with uniform random bytes.
	FillBytes(b []byte) error
}

// CryptoRNG is the default RNG, backed by the platform CSPRNG
// (crypto/rand). It is what every non-test MaskedUint construction should
// use, and is the only RNG the statistical side-channel harnesses in
// spec.md §8 (P9-P11) may validate against.
type CryptoRNG struct{}

// FillBytes fills b with bytes from crypto/rand.
func (CryptoRNG) FillBytes(b []byte) error {
	_, err := cryptorand.Read(b)
	return err
}

// ChaChaRNG is a seedable, deterministic RNG collaborator for tests and
// benchmarks. It streams ChaCha20 keystream bytes from a fixed key and
// nonce, so two ChaChaRNGs constructed with the same seed produce
// identical mask sequences — useful for reproducing a failing property
// test, but never a substitute for CryptoRNG in the library's default
// path or in the security-statistics harness.
type ChaChaRNG struct {
	cipher *chacha20.Cipher
}

// NewChaChaRNG seeds a deterministic RNG from a 32-byte key and a 12-byte
// (or chacha20.NonceSizeX-byte) nonce.
func NewChaChaRNG(key, nonce []byte) (*ChaChaRNG, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("domask: new ChaChaRNG: %w", err)
	}
	return &ChaChaRNG{cipher: c}, nil
}

// FillBytes XORs the ChaCha20 keystream into a zeroed buffer of len(b),
// producing the next len(b) keystream bytes.
func (r *ChaChaRNG) FillBytes(b []byte) error {
	for i := range b {
		b[i] = 0
	}
	r.cipher.XORKeyStream(b, b)
	return nil
}

// randomWord draws a uniform T from rng.
func randomWord[T Word](rng RNG) (T, error) {
	buf := make([]byte, bitWidth[T]()/8)
	if err := rng.FillBytes(buf); err != nil {
		return T(0), fmt.Errorf("domask: randomWord: %w", err)
	}
	u, err := UintFromBytes[T](buf, binary.BigEndian)
	if err != nil {
		return T(0), err
	}
	return u.Value(), nil
}
