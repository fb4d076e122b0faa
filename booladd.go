// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// BoolAdd is masked Boolean addition: bool_add(a,b) = XOR(XOR(a,b),
// ksa_carry(a,b)).
func BoolAdd[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	ab, err := Xor(a, b)
	if err != nil {
		return nil, err
	}
	carry, err := KSACarry(a, b)
	if err != nil {
		return nil, err
	}
	return Xor(ab, carry)
}

// BoolSub is masked Boolean subtraction: bool_sub(a,b) = XOR(XOR(a,b),
// ksa_borrow(a,b)).
func BoolSub[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	ab, err := Xor(a, b)
	if err != nil {
		return nil, err
	}
	borrow, err := KSABorrow(a, b)
	if err != nil {
		return nil, err
	}
	return Xor(ab, borrow)
}
