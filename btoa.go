// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// psiBtoA is the affine map ψ(u,v) = (u ⊕ v) − v (mod 2^w) at the heart of
// the Bettale et al. (2018) Boolean-to-arithmetic recursion.
func psiBtoA[T Word](u, v T) T { return (u ^ v) - v }

// btoaConvert implements the recursive B→A step on a slice of n+1 Boolean
// shares, returning n arithmetic shares of the same secret. The recursion
// terminates at n=1 (two input shares, one output share): XOR them and the
// job is done. Otherwise it refreshes, builds the affine-ψ sibling array y,
// recurses on both x[1:] and y, and recombines — the shape described
// verbatim in spec.md §4.C8, grounded additionally in the recursive
// encode/decode fold over tuneinsight/lattigo's
// dckks.MaskedTransformProtocol and original_source's converters.py.
func btoaConvert[T Word](x []T, rng RNG) ([]T, error) {
	if len(x) == 2 {
		return []T{x[0] ^ x[1]}, nil
	}

	n := len(x) - 1 // n >= 2 here

	// Refresh: sample n-1 fresh masks, XOR each into both x[0] and x[i].
	for i := 1; i <= n-1; i++ {
		mi, err := randomWord[T](rng)
		if err != nil {
			return nil, err
		}
		x[0] ^= mi
		x[i] ^= mi
	}

	y := make([]T, n)
	var lead T
	if (n-1)%2 == 1 {
		lead = x[0]
	}
	y[0] = lead ^ psiBtoA(x[0], x[1])
	for i := 1; i <= n-1; i++ {
		y[i] = psiBtoA(x[0], x[i+1])
	}

	first, err := btoaConvert[T](x[1:], rng)
	if err != nil {
		return nil, err
	}
	second, err := btoaConvert[T](y, rng)
	if err != nil {
		return nil, err
	}

	result := make([]T, n)
	for i := 0; i <= n-3; i++ {
		result[i] = first[i] + second[i]
	}
	result[n-2] = first[n-2]
	result[n-1] = second[n-2]
	return result, nil
}

// ToArithmetic converts a Boolean-masked MaskedUint into an Arithmetic-
// masked MaskedUint representing the same secret, via the affine-ψ
// recursion of Bettale et al. (2018). Complexity is O(2^d·w) in the
// masking order d (spec.md §9, "Order bound").
func ToArithmetic[T Word](m *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := requireDomain[T]("ToArithmetic", m, Boolean); err != nil {
		return nil, err
	}
	shares := append(m.Shares(), 0)
	result, err := btoaConvert[T](shares, m.rng)
	if err != nil {
		return nil, err
	}
	return cloneWith[T](result, Arithmetic, m.rng), nil
}
