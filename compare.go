// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// Or is the masked Boolean OR gadget: OR(a,b) = XOR(AND(a,b), XOR(a,b)).
// It needs the DOM AND gadget internally and therefore consumes fresh
// randomness, unlike the no-randomness linear gadgets in linear.go.
func Or[T Word](a, b *MaskedUint[T]) (*MaskedUint[T], error) {
	axorb, err := Xor(a, b)
	if err != nil {
		return nil, err
	}
	aandb, err := And(a, b)
	if err != nil {
		return nil, err
	}
	return Xor(aandb, axorb)
}

// cmpNegate implements the comparator gadgets' "NOT": a flip of masked_value
// only via XOR with a plaintext constant, never broadcast across all
// shares (Design Notes). fullMask selects which constant: 1 toggles a
// single-bit 0/1 result, 2^w-1 toggles a full-width 0/all-ones result.
func cmpNegate[T Word](m *MaskedUint[T], fullMask bool) *MaskedUint[T] {
	var c T
	if fullMask {
		c = ^c
	} else {
		c = 1
	}
	return xorValueShare(m, c)
}

// Lt is the masked less-than comparator: unmask(Lt(a,b)) is 1 iff
// unmask(a) < unmask(b). With fullMask=false the result occupies only bit
// 0; with fullMask=true it is broadcast to a full-width 0 or 2^w-1 mask
// suitable for Select. The result is always RefreshMasks()'d before
// return — per spec.md §4.C10, "the sign-bit leak window is the most
// delicate point in the gadget".
func Lt[T Word](a, b *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	diff, err := BoolSub(a, b)
	if err != nil {
		return nil, err
	}
	t0, err := Xor(a, b)
	if err != nil {
		return nil, err
	}
	t1, err := Xor(diff, b)
	if err != nil {
		return nil, err
	}
	tmp, err := Or(t0, t1)
	if err != nil {
		return nil, err
	}
	tmp, err = Xor(a, tmp)
	if err != nil {
		return nil, err
	}
	out, err := Shr(tmp, bitWidth[T]()-1)
	if err != nil {
		return nil, err
	}

	if fullMask {
		one, err := New[T](1, out.order, Boolean, out.rng)
		if err != nil {
			return nil, err
		}
		sub, err := BoolSub(out, one)
		if err != nil {
			return nil, err
		}
		out, err = Not(sub)
		if err != nil {
			return nil, err
		}
	}

	if err := out.RefreshMasks(); err != nil {
		return nil, err
	}
	return out, nil
}

// Gt is the masked greater-than comparator: Gt(a,b) = Lt(b,a).
func Gt[T Word](a, b *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	return Lt(b, a, fullMask)
}

// Le is the masked less-or-equal comparator: Le(a,b) = NOT(Lt(b,a)), where
// NOT is the single-share constant negation (cmpNegate), not a full
// bitwise complement.
func Le[T Word](a, b *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	gt, err := Lt(b, a, fullMask)
	if err != nil {
		return nil, err
	}
	return cmpNegate(gt, fullMask), nil
}

// Ge is the masked greater-or-equal comparator: Ge(a,b) = NOT(Lt(a,b)).
func Ge[T Word](a, b *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	lt, err := Lt(a, b, fullMask)
	if err != nil {
		return nil, err
	}
	return cmpNegate(lt, fullMask), nil
}

// Ne is the masked not-equal comparator: Ne(a,b) = OR(Lt(a,b), Lt(b,a)) —
// true exactly when a is strictly ordered against b in either direction.
func Ne[T Word](a, b *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	lt, err := Lt(a, b, fullMask)
	if err != nil {
		return nil, err
	}
	gt, err := Lt(b, a, fullMask)
	if err != nil {
		return nil, err
	}
	return Or(lt, gt)
}

// Eq is the masked equality comparator: Eq(a,b) = NOT(Ne(a,b)).
func Eq[T Word](a, b *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	ne, err := Ne(a, b, fullMask)
	if err != nil {
		return nil, err
	}
	return cmpNegate(ne, fullMask), nil
}

// Select is the constant-time multiplexer: if unmask(mask) is the full
// 2^w-1 mask, the result unmasks to unmask(t); if unmask(mask) is 0, it
// unmasks to unmask(f). mask must be a fullMask-style Boolean-masked word
// (e.g. from Lt(..., true)). No data-dependent branching is performed.
func Select[T Word](t, f, mask *MaskedUint[T]) (*MaskedUint[T], error) {
	d, err := Xor(t, f)
	if err != nil {
		return nil, err
	}
	d, err = And(mask, d)
	if err != nil {
		return nil, err
	}
	out, err := Xor(d, f)
	if err != nil {
		return nil, err
	}
	if err := out.RefreshMasks(); err != nil {
		return nil, err
	}
	return out, nil
}
