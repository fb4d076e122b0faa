// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testOrders are the masking orders exercised across the gadget test suite.
var testOrders = []int{1, 2, 3, 5}

// newTestRNG returns a deterministic RNG seeded from a fixed key/nonce, so
// masked test fixtures reproduce identically across runs without relying on
// the platform CSPRNG.
func newTestRNG(t testing.TB) RNG {
	t.Helper()
	key := make([]byte, 32)
	nonce := make([]byte, 12)
	for i := range key {
		key[i] = byte(i*7 + 1)
	}
	for i := range nonce {
		nonce[i] = byte(i*3 + 1)
	}
	rng, err := NewChaChaRNG(key, nonce)
	require.NoError(t, err, "seed deterministic test RNG")
	return rng
}

// testMask masks secret at the given order/domain with a fresh deterministic
// RNG.
func testMask[T Word](t testing.TB, secret T, order int, domain Domain) *MaskedUint[T] {
	t.Helper()
	m, err := New[T](secret, order, domain, newTestRNG(t))
	require.NoError(t, err, "mask %v at order %d", secret, order)
	return m
}

// testUnmaskEqual asserts m unmasks to want.
func testUnmaskEqual[T Word](t testing.TB, want T, m *MaskedUint[T], msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, want, m.Unmask(), msgAndArgs...)
}
