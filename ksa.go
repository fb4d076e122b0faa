// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// KSACarry computes the masked parallel-prefix carry word between two
// Boolean-masked summands (Liu et al., 2024), via a Kogge-Stone doubling-
// stride network of depth ceil(log2 w). The doubling-stride loop shape
// (`for k := 1; k < w; k *= 2`) generalizes the butterfly-stage loop in the
// teacher's gpu/ntt.go NTT implementation from GPU tensor stages to
// share-wise masked-word rounds.
//
// The returned MaskedUint's secret, at bit position i+1, is the carry out
// of bit i of unmask(a)+unmask(b).
func KSACarry[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	p, err := Xor(a, b)
	if err != nil {
		return nil, err
	}
	g, err := And(a, b)
	if err != nil {
		return nil, err
	}

	w := bitWidth[T]()
	for k := 1; k < w; k *= 2 {
		pShift, err := Shl(p, k)
		if err != nil {
			return nil, err
		}
		gShift, err := Shl(g, k)
		if err != nil {
			return nil, err
		}
		pAndG, err := And(p, gShift)
		if err != nil {
			return nil, err
		}
		g, err = Xor(g, pAndG)
		if err != nil {
			return nil, err
		}
		p, err = And(p, pShift)
		if err != nil {
			return nil, err
		}
	}
	return Shl(g, 1)
}

// KSABorrow computes the masked borrow word for Boolean-masked subtraction,
// following the same Kogge-Stone network as KSACarry but seeded from
// ā = NOT(a) and accumulating Liu et al.'s extra second-conjunction term
// into G each round.
func KSABorrow[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	notA, err := Not(a)
	if err != nil {
		return nil, err
	}
	p, err := Xor(notA, b)
	if err != nil {
		return nil, err
	}
	g, err := And(notA, b)
	if err != nil {
		return nil, err
	}

	w := bitWidth[T]()
	for k := 1; k < w; k *= 2 {
		pShift, err := Shl(p, k)
		if err != nil {
			return nil, err
		}
		gShift, err := Shl(g, k)
		if err != nil {
			return nil, err
		}
		tmp1, err := And(p, gShift)
		if err != nil {
			return nil, err
		}
		tmp2, err := And(g, tmp1)
		if err != nil {
			return nil, err
		}
		g, err = Xor(g, tmp1)
		if err != nil {
			return nil, err
		}
		g, err = Xor(g, tmp2)
		if err != nil {
			return nil, err
		}
		p, err = And(p, pShift)
		if err != nil {
			return nil, err
		}
	}
	return Shl(g, 1)
}
