// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// csa is the carry-save-adder reduction: three Boolean-masked wires in,
// two out, with no carry propagation.
func csa[T Word](x, y, z *MaskedUint[T]) (s, c *MaskedUint[T], err error) {
	a, err := Xor(x, y)
	if err != nil {
		return nil, nil, err
	}
	s, err = Xor(a, z)
	if err != nil {
		return nil, nil, err
	}
	wv, err := Xor(x, z)
	if err != nil {
		return nil, nil, err
	}
	v, err := And(a, wv)
	if err != nil {
		return nil, nil, err
	}
	xv, err := Xor(x, v)
	if err != nil {
		return nil, nil, err
	}
	c, err = Shl(xv, 1)
	if err != nil {
		return nil, nil, err
	}
	return s, c, nil
}

// csaTree folds k >= 3 Boolean-masked wires down to two via repeated csa,
// generalizing the teacher's RGSW-decomposition reduction loop in
// gpu/external_product.go from a GPU array reduction to a slice of
// MaskedUint wires.
func csaTree[T Word](wires []*MaskedUint[T]) (s, c *MaskedUint[T], err error) {
	k := len(wires)
	if k == 3 {
		return csa(wires[0], wires[1], wires[2])
	}
	s, c, err = csaTree[T](wires[:k-1])
	if err != nil {
		return nil, nil, err
	}
	return csa(s, c, wires[k-1])
}

// ToBoolean converts an Arithmetic-masked MaskedUint into a Boolean-masked
// MaskedUint representing the same secret (Liu et al., 2024). Each of the
// d+1 arithmetic shares is first reinterpreted as a fresh order-d Boolean
// mask of itself, the resulting d+1 Boolean-masked wires are reduced to two
// via a carry-save-adder tree (skipped when d=1, since there are already
// only two wires), and the final pair is combined with the masked
// Kogge-Stone full adder (BoolAdd). Complexity is O(d²·log w) (spec.md §9,
// "Order bound").
func ToBoolean[T Word](m *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := requireDomain[T]("ToBoolean", m, Arithmetic); err != nil {
		return nil, err
	}

	order := m.order
	shares := m.Shares()
	wires := make([]*MaskedUint[T], len(shares))
	for i, share := range shares {
		w, err := New[T](share, order, Boolean, m.rng)
		if err != nil {
			return nil, err
		}
		wires[i] = w
	}

	var s, c *MaskedUint[T]
	var err error
	if len(wires) == 2 {
		s, c = wires[0], wires[1]
	} else {
		s, c, err = csaTree[T](wires)
		if err != nil {
			return nil, err
		}
	}
	return BoolAdd(s, c)
}
