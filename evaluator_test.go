// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatorAutoDomainConvertsMismatchedOperand(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), true)
	require.NoError(t, err)

	a, err := ev.NewMasked(5, Arithmetic)
	require.NoError(t, err)
	b, err := ev.NewMasked(7, Boolean)
	require.NoError(t, err)

	// Xor requires Boolean; a is Arithmetic, so auto_domain should convert
	// it rather than fail.
	out, err := ev.Xor(a, b)
	require.NoError(t, err)
	testUnmaskEqual(t, uint32(5^7), out)
}

func TestEvaluatorRejectsDomainMismatchWithoutAutoDomain(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), false)
	require.NoError(t, err)

	a, err := ev.NewMasked(5, Arithmetic)
	require.NoError(t, err)
	b, err := ev.NewMasked(7, Boolean)
	require.NoError(t, err)

	_, err = ev.Xor(a, b)
	require.ErrorIs(t, err, ErrDomain)
}

func TestEvaluatorRejectsOrderMismatch(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), true)
	require.NoError(t, err)

	wrongOrder := testMask[uint32](t, 1, 3, Boolean)
	right := testMask[uint32](t, 1, 2, Boolean)
	_, err = ev.Xor(wrongOrder, right)
	require.ErrorIs(t, err, ErrOrder)
}

func TestEvaluatorRejectsBadOrder(t *testing.T) {
	_, err := NewEvaluator[uint32](0, newTestRNG(t), true)
	require.ErrorIs(t, err, ErrOrder)
}

func TestEvaluatorComparatorsAndSelect(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), true)
	require.NoError(t, err)

	a, err := ev.NewMasked(3, Boolean)
	require.NoError(t, err)
	b, err := ev.NewMasked(5, Boolean)
	require.NoError(t, err)

	lt, err := ev.Lt(a, b, true)
	require.NoError(t, err)
	testUnmaskEqual(t, uint32(0xFFFF_FFFF), lt)

	tVal, err := ev.NewMasked(11, Boolean)
	require.NoError(t, err)
	fVal, err := ev.NewMasked(22, Boolean)
	require.NoError(t, err)
	sel, err := ev.Select(tVal, fVal, lt)
	require.NoError(t, err)
	testUnmaskEqual(t, uint32(11), sel)
}

func TestEvaluatorArithmeticGatesAutoConvert(t *testing.T) {
	ev, err := NewEvaluator[uint64](3, newTestRNG(t), true)
	require.NoError(t, err)

	a, err := ev.NewMasked(40, Boolean) // wrong domain for Add
	require.NoError(t, err)
	b, err := ev.NewMasked(2, Arithmetic)
	require.NoError(t, err)

	sum, err := ev.Add(a, b)
	require.NoError(t, err)
	testUnmaskEqual(t, uint64(42), sum)

	prod, err := ev.Mul(a, b)
	require.NoError(t, err)
	testUnmaskEqual(t, uint64(80), prod)
}

func TestEvaluatorRefresh(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), true)
	require.NoError(t, err)

	m, err := ev.NewMasked(0x5A5A, Boolean)
	require.NoError(t, err)
	before := append([]uint32(nil), m.Shares()...)
	require.NoError(t, ev.Refresh(m))
	require.NotEqual(t, before, m.Shares())
	testUnmaskEqual(t, uint32(0x5A5A), m)
}

func TestEvaluatorShares(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), true)
	require.NoError(t, err)

	m, err := ev.NewMasked(0x5A5A, Boolean)
	require.NoError(t, err)

	shares, err := ev.Shares(m)
	require.NoError(t, err)
	require.Equal(t, m.Shares(), shares)
	require.Len(t, shares, m.Order()+1)

	wrongOrder := testMask[uint32](t, 1, 3, Boolean)
	_, err = ev.Shares(wrongOrder)
	require.ErrorIs(t, err, ErrOrder)
}

func TestEvaluatorToArithmeticToBoolean(t *testing.T) {
	ev, err := NewEvaluator[uint32](2, newTestRNG(t), true)
	require.NoError(t, err)

	m, err := ev.NewMasked(0xDEADBEEF, Boolean)
	require.NoError(t, err)

	arith, err := ev.ToArithmetic(m)
	require.NoError(t, err)
	require.Equal(t, Arithmetic, arith.DomainOf())

	back, err := ev.ToBoolean(arith)
	require.NoError(t, err)
	testUnmaskEqual(t, uint32(0xDEADBEEF), back)
}
