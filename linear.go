// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// mapShares applies f to every share of m and returns a fresh MaskedUint
// in the same domain. Every linear gadget below is this shape: apply the
// same public, no-randomness operation to each share independently. This
// generalizes the teacher's addCiphertexts/negateCiphertext/
// doubleCiphertext helpers (evaluator.go), which do the same thing across
// a ciphertext's two RLWE components instead of d+1 masked shares.
func mapShares[T Word](m *MaskedUint[T], f func(T) T) *MaskedUint[T] {
	shares := m.Shares()
	out := make([]T, len(shares))
	for i, s := range shares {
		out[i] = f(s)
	}
	return cloneWith[T](out, m.domain, m.rng)
}

// mapShares2 applies f share-wise across two same-shaped MaskedUints.
func mapShares2[T Word](op string, x, y *MaskedUint[T], domain Domain, f func(a, b T) T) (*MaskedUint[T], error) {
	if err := requireSameOrder(op, x, y); err != nil {
		return nil, err
	}
	if err := requireDomain(op, x, domain); err != nil {
		return nil, err
	}
	if err := requireDomain(op, y, domain); err != nil {
		return nil, err
	}
	xs, ys := x.Shares(), y.Shares()
	out := make([]T, len(xs))
	for i := range xs {
		out[i] = f(xs[i], ys[i])
	}
	return cloneWith[T](out, domain, x.rng), nil
}

// Xor is the Boolean share-wise XOR gadget: outᵢ = aᵢ ⊕ bᵢ.
func Xor[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	return mapShares2[T]("Xor", a, b, Boolean, func(x, y T) T { return x ^ y })
}

// Not flips every bit of masked_value only; masks are untouched. This is
// correct under fixed width w because ~(x ⊕ m) = ~x ⊕ m, so the result
// unmasks to ~secret.
func Not[T Word](a *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := requireDomain[T]("Not", a, Boolean); err != nil {
		return nil, err
	}
	shares := a.Shares()
	out := make([]T, len(shares))
	copy(out, shares)
	out[0] = ^out[0]
	return cloneWith[T](out, Boolean, a.rng), nil
}

// xorValueShare XORs a plaintext constant into masked_value only, leaving
// every other share untouched. This is algebraically equivalent to XORing
// the constant into the secret because the other shares are unchanged —
// the single-share negation the comparator gadgets rely on (Design Notes).
// It must never broadcast the constant across all shares.
func xorValueShare[T Word](a *MaskedUint[T], c T) *MaskedUint[T] {
	shares := a.Shares()
	out := make([]T, len(shares))
	copy(out, shares)
	out[0] = out[0] ^ c
	return cloneWith[T](out, a.domain, a.rng)
}

// Shl shifts every Boolean share left by k bits; correct because XOR
// commutes with any fixed linear bit-position map.
func Shl[T Word](a *MaskedUint[T], k int) (*MaskedUint[T], error) {
	if err := requireDomain[T]("Shl", a, Boolean); err != nil {
		return nil, err
	}
	return mapShares(a, func(v T) T { return Uint[T]{v}.Shl(k).Value() }), nil
}

// Shr shifts every Boolean share right by k bits (logical shift).
func Shr[T Word](a *MaskedUint[T], k int) (*MaskedUint[T], error) {
	if err := requireDomain[T]("Shr", a, Boolean); err != nil {
		return nil, err
	}
	return mapShares(a, func(v T) T { return Uint[T]{v}.Shr(k).Value() }), nil
}

// Rotl rotates every Boolean share left by k bits.
func Rotl[T Word](a *MaskedUint[T], k int) (*MaskedUint[T], error) {
	if err := requireDomain[T]("Rotl", a, Boolean); err != nil {
		return nil, err
	}
	return mapShares(a, func(v T) T { return Uint[T]{v}.Rotl(k).Value() }), nil
}

// Rotr rotates every Boolean share right by k bits.
func Rotr[T Word](a *MaskedUint[T], k int) (*MaskedUint[T], error) {
	if err := requireDomain[T]("Rotr", a, Boolean); err != nil {
		return nil, err
	}
	return mapShares(a, func(v T) T { return Uint[T]{v}.Rotr(k).Value() }), nil
}

// ArithAdd is the share-wise Arithmetic addition gadget: outᵢ = aᵢ + bᵢ.
func ArithAdd[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	return mapShares2[T]("ArithAdd", a, b, Arithmetic, func(x, y T) T { return x + y })
}

// ArithSub is the share-wise Arithmetic subtraction gadget.
func ArithSub[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	return mapShares2[T]("ArithSub", a, b, Arithmetic, func(x, y T) T { return x - y })
}

// ArithNeg negates every Arithmetic share.
func ArithNeg[T Word](a *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := requireDomain[T]("ArithNeg", a, Arithmetic); err != nil {
		return nil, err
	}
	return mapShares(a, func(v T) T { return ^v + 1 }), nil
}
