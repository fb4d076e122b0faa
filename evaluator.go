// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

// Evaluator is the auto-domain-adaptation dispatcher of spec.md §4.C11: it
// owns a masking order and an RNG, validates operands before invoking a
// gadget, and — when AutoDomain is set — calls ToBoolean/ToArithmetic to
// repair a mismatched operand before the gadget runs. This directly
// generalizes the teacher's Evaluator in evaluator.go (constructor
// NewEvaluator, gate methods AND/OR/XOR/MUX/Refresh operating on RLWE
// ciphertexts) to gadgets operating on masked share tuples.
type Evaluator[T Word] struct {
	// Order is the masking order every operand passed to this Evaluator
	// is expected to carry.
	Order int
	// AutoDomain, when true, silently converts a mismatched operand to
	// the domain a gadget requires instead of failing with DomainError.
	AutoDomain bool
	// RNG is the randomness source NewMasked installs in the MaskedUints
	// it constructs. Gadgets invoked through this Evaluator draw their
	// fresh randomness from their operands' own RNG (MaskedUint.RNGSource),
	// not from this field.
	RNG RNG
}

// NewEvaluator constructs an Evaluator for masking order d with the given
// RNG. It fails with OrderError if order < 1.
func NewEvaluator[T Word](order int, rng RNG, autoDomain bool) (*Evaluator[T], error) {
	if order < 1 {
		return nil, newError(KindOrder, "NewEvaluator", "order must be >= 1, got %d", order)
	}
	return &Evaluator[T]{Order: order, AutoDomain: autoDomain, RNG: rng}, nil
}

// NewMasked constructs a fresh MaskedUint at this Evaluator's order, using
// its RNG.
func (e *Evaluator[T]) NewMasked(secret T, domain Domain) (*MaskedUint[T], error) {
	return New[T](secret, e.Order, domain, e.RNG)
}

// checkOrder validates that m carries this Evaluator's configured order.
func (e *Evaluator[T]) checkOrder(op string, m *MaskedUint[T]) error {
	if m.order != e.Order {
		return newError(KindOrder, op, "operand order %d does not match evaluator order %d", m.order, e.Order)
	}
	return nil
}

// adapt validates m's order and, if its domain doesn't match want, either
// converts it (AutoDomain) or fails with DomainError.
func (e *Evaluator[T]) adapt(op string, m *MaskedUint[T], want Domain) (*MaskedUint[T], error) {
	if err := e.checkOrder(op, m); err != nil {
		return nil, err
	}
	if m.domain == want {
		return m, nil
	}
	if !e.AutoDomain {
		return nil, newError(KindDomain, op, "operand in %s domain, want %s (auto_domain disabled)", m.domain, want)
	}
	if want == Boolean {
		return ToBoolean(m)
	}
	return ToArithmetic(m)
}

func (e *Evaluator[T]) adapt2(op string, x, y *MaskedUint[T], want Domain) (*MaskedUint[T], *MaskedUint[T], error) {
	x, err := e.adapt(op, x, want)
	if err != nil {
		return nil, nil, err
	}
	y, err = e.adapt(op, y, want)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// And is the DOM AND gadget (C4), auto-adapting both operands to Boolean.
func (e *Evaluator[T]) And(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("And", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return And(x, y)
}

// Mul is the DOM multiplication gadget (C4), auto-adapting both operands
// to Arithmetic.
func (e *Evaluator[T]) Mul(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Mul", x, y, Arithmetic)
	if err != nil {
		return nil, err
	}
	return Mul(x, y)
}

// Xor is the Boolean XOR gadget, auto-adapting both operands to Boolean.
func (e *Evaluator[T]) Xor(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Xor", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Xor(x, y)
}

// Or is the Boolean OR gadget, auto-adapting both operands to Boolean.
func (e *Evaluator[T]) Or(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Or", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Or(x, y)
}

// Not flips masked_value's bits (Boolean only), auto-adapting its operand.
func (e *Evaluator[T]) Not(x *MaskedUint[T]) (*MaskedUint[T], error) {
	x, err := e.adapt("Not", x, Boolean)
	if err != nil {
		return nil, err
	}
	return Not(x)
}

// Add is the masked addition gadget, auto-adapting both operands to
// Arithmetic and returning their share-wise sum.
func (e *Evaluator[T]) Add(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Add", x, y, Arithmetic)
	if err != nil {
		return nil, err
	}
	return ArithAdd(x, y)
}

// Sub is the masked subtraction gadget, auto-adapting both operands to
// Arithmetic.
func (e *Evaluator[T]) Sub(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Sub", x, y, Arithmetic)
	if err != nil {
		return nil, err
	}
	return ArithSub(x, y)
}

// Neg negates every Arithmetic share of x, auto-adapting its operand.
func (e *Evaluator[T]) Neg(x *MaskedUint[T]) (*MaskedUint[T], error) {
	x, err := e.adapt("Neg", x, Arithmetic)
	if err != nil {
		return nil, err
	}
	return ArithNeg(x)
}

// BoolAdd is the Boolean domain addition gadget (XOR + masked Kogge-Stone
// carry), auto-adapting both operands to Boolean.
func (e *Evaluator[T]) BoolAdd(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("BoolAdd", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return BoolAdd(x, y)
}

// BoolSub is the Boolean domain subtraction gadget, auto-adapting both
// operands to Boolean.
func (e *Evaluator[T]) BoolSub(x, y *MaskedUint[T]) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("BoolSub", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return BoolSub(x, y)
}

// Lt, Le, Gt, Ge, Eq, Ne are the comparator gadgets, auto-adapting both
// operands to Boolean.
func (e *Evaluator[T]) Lt(x, y *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Lt", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Lt(x, y, fullMask)
}

func (e *Evaluator[T]) Le(x, y *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Le", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Le(x, y, fullMask)
}

func (e *Evaluator[T]) Gt(x, y *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Gt", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Gt(x, y, fullMask)
}

func (e *Evaluator[T]) Ge(x, y *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Ge", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Ge(x, y, fullMask)
}

func (e *Evaluator[T]) Eq(x, y *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Eq", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Eq(x, y, fullMask)
}

func (e *Evaluator[T]) Ne(x, y *MaskedUint[T], fullMask bool) (*MaskedUint[T], error) {
	x, y, err := e.adapt2("Ne", x, y, Boolean)
	if err != nil {
		return nil, err
	}
	return Ne(x, y, fullMask)
}

// Select is the constant-time multiplexer: t if unmask(mask) is all ones, f
// if it is 0. mask must
// be a full-mask Boolean comparator result (e.g. from Evaluator.Lt with
// fullMask=true).
func (e *Evaluator[T]) Select(t, f, mask *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := e.checkOrder("Select", t); err != nil {
		return nil, err
	}
	if err := e.checkOrder("Select", f); err != nil {
		return nil, err
	}
	if err := e.checkOrder("Select", mask); err != nil {
		return nil, err
	}
	t, err := e.adapt("Select", t, Boolean)
	if err != nil {
		return nil, err
	}
	f, err = e.adapt("Select", f, Boolean)
	if err != nil {
		return nil, err
	}
	mask, err = e.adapt("Select", mask, Boolean)
	if err != nil {
		return nil, err
	}
	return Select(t, f, mask)
}

// ToArithmetic and ToBoolean are the explicit domain-conversion gadgets
// (C8/C9), exposed through the Evaluator for callers that want to control
// domain conversion without relying on AutoDomain.
func (e *Evaluator[T]) ToArithmetic(x *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := e.checkOrder("ToArithmetic", x); err != nil {
		return nil, err
	}
	return ToArithmetic(x)
}

func (e *Evaluator[T]) ToBoolean(x *MaskedUint[T]) (*MaskedUint[T], error) {
	if err := e.checkOrder("ToBoolean", x); err != nil {
		return nil, err
	}
	return ToBoolean(x)
}

// Shares returns x's raw share tuple — the accessor a statistical
// side-channel harness (P9-P11) would read Hamming weights from. It is a
// pure pass-through to MaskedUint.Shares, kept on Evaluator so callers that
// already thread an Evaluator through a computation have a single place to
// reach for it.
func (e *Evaluator[T]) Shares(x *MaskedUint[T]) ([]T, error) {
	if err := e.checkOrder("Shares", x); err != nil {
		return nil, err
	}
	return x.Shares(), nil
}

// Refresh re-randomizes x's masks in place, preserving its secret.
func (e *Evaluator[T]) Refresh(x *MaskedUint[T]) error {
	if err := e.checkOrder("Refresh", x); err != nil {
		return err
	}
	return x.RefreshMasks()
}
