// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHomomorphismAcrossGadgets is P4: for every binary gadget G with
// reference semantic op, unmask(G(m_x,m_y)) = unmask(m_x) op unmask(m_y)
// (mod 2^w), swept across a spread of orders and secret pairs.
func TestHomomorphismAcrossGadgets(t *testing.T) {
	pairs := []struct{ a, b uint32 }{
		{0, 0}, {1, 0}, {0xFFFF_FFFF, 1}, {0x1234_5678, 0xCAFEBABE}, {12345, 6789},
	}
	gates := []struct {
		name string
		fn   func(a, b *MaskedUint[uint32]) (*MaskedUint[uint32], error)
		ref  func(a, b uint32) uint32
	}{
		{"And", And, func(a, b uint32) uint32 { return a & b }},
		{"Or", Or, func(a, b uint32) uint32 { return a | b }},
		{"Xor", Xor, func(a, b uint32) uint32 { return a ^ b }},
		{"BoolAdd", BoolAdd, func(a, b uint32) uint32 { return a + b }},
		{"BoolSub", BoolSub, func(a, b uint32) uint32 { return a - b }},
	}

	for _, order := range testOrders {
		for _, gate := range gates {
			for _, p := range pairs {
				a := testMask[uint32](t, p.a, order, Boolean)
				b := testMask[uint32](t, p.b, order, Boolean)
				out, err := gate.fn(a, b)
				require.NoError(t, err, "%s order=%d", gate.name, order)
				testUnmaskEqual(t, gate.ref(p.a, p.b), out, "%s order=%d a=%#x b=%#x", gate.name, order, p.a, p.b)
			}
		}
	}

	for _, order := range testOrders {
		for _, p := range pairs {
			a := testMask[uint32](t, p.a, order, Arithmetic)
			b := testMask[uint32](t, p.b, order, Arithmetic)

			sum, err := ArithAdd(a, b)
			require.NoError(t, err)
			testUnmaskEqual(t, p.a+p.b, sum, "ArithAdd order=%d", order)

			diff, err := ArithSub(a, b)
			require.NoError(t, err)
			testUnmaskEqual(t, p.a-p.b, diff, "ArithSub order=%d", order)

			mul, err := Mul(a, b)
			require.NoError(t, err)
			testUnmaskEqual(t, p.a*p.b, mul, "Mul order=%d", order)
		}
	}
}

// TestShiftRotateHomomorphism covers the unary shift/rotate gadgets'
// share of P4.
func TestShiftRotateHomomorphism(t *testing.T) {
	secret := uint32(0xAABBCCDD)
	for _, order := range testOrders {
		m := testMask[uint32](t, secret, order, Boolean)
		for _, k := range []int{0, 1, 7, 16, 31} {
			shl, err := Shl(m, k)
			require.NoError(t, err)
			testUnmaskEqual(t, NewUint(secret).Shl(k).Value(), shl, "Shl k=%d order=%d", k, order)

			shr, err := Shr(m, k)
			require.NoError(t, err)
			testUnmaskEqual(t, NewUint(secret).Shr(k).Value(), shr, "Shr k=%d order=%d", k, order)

			rotl, err := Rotl(m, k)
			require.NoError(t, err)
			testUnmaskEqual(t, NewUint(secret).Rotl(k).Value(), rotl, "Rotl k=%d order=%d", k, order)

			rotr, err := Rotr(m, k)
			require.NoError(t, err)
			testUnmaskEqual(t, NewUint(secret).Rotr(k).Value(), rotr, "Rotr k=%d order=%d", k, order)
		}
	}
}

// TestAutoDomainComposition is P8: evaluating
// (a+b) xor (b*(a|c).rotr(w/2)) - (c and (a<<w/2))
// on unmasked vs. masked operands (with auto_domain=true) yields equal
// results.
func TestAutoDomainComposition(t *testing.T) {
	const w = 32
	av, bv, cv := uint32(0x1111_2222), uint32(0x3333_4444), uint32(0x5555_6666)

	// Reference: plain unmasked arithmetic, matching the fixed-width wrap
	// semantics of Uint[T].
	or := NewUint(av).Or(NewUint(cv))
	rotated := or.Rotr(w / 2)
	mulTerm := NewUint(bv).Mul(rotated)
	sum := NewUint(av).Add(NewUint(bv))
	xorTerm := sum.Xor(mulTerm)
	shifted := NewUint(av).Shl(w / 2)
	andTerm := NewUint(cv).And(shifted)
	want := xorTerm.Sub(andTerm).Value()

	for _, order := range testOrders {
		ev, err := NewEvaluator[uint32](order, newTestRNG(t), true)
		require.NoError(t, err)

		a, err := ev.NewMasked(av, Arithmetic)
		require.NoError(t, err)
		b, err := ev.NewMasked(bv, Arithmetic)
		require.NoError(t, err)
		c, err := ev.NewMasked(cv, Boolean)
		require.NoError(t, err)

		sumM, err := ev.Add(a, b)
		require.NoError(t, err)

		// a is Arithmetic-masked but feeds Or/Shl, which require Boolean:
		// this is exactly the mismatch auto_domain=true is meant to repair.
		orM, err := ev.Or(a, c)
		require.NoError(t, err)
		rotM, err := Rotr(orM, w/2)
		require.NoError(t, err)
		mulM, err := ev.Mul(b, rotM)
		require.NoError(t, err)

		xorM, err := ev.Xor(sumM, mulM)
		require.NoError(t, err)

		aBoolean, err := ev.ToBoolean(a)
		require.NoError(t, err)
		shlM, err := Shl(aBoolean, w/2)
		require.NoError(t, err)
		andM, err := ev.And(c, shlM)
		require.NoError(t, err)

		outM, err := ev.Sub(xorM, andM)
		require.NoError(t, err)

		testUnmaskEqual(t, want, outM, "order=%d", order)
	}
}
