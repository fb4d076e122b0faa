// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package domask implements higher-order masked unsigned-integer gadgets
// for side-channel-resistant computation: Domain-Oriented Masking AND/MUL,
// a masked Kogge-Stone adder, affine-psi Boolean-to-arithmetic conversion
// and carry-save-adder arithmetic-to-Boolean conversion, and the derived
// comparator/select gadgets built on top of them.
//
// A secret w-bit value is represented as a tuple of d+1 shares that
// recombine under XOR (the Boolean domain) or modular addition (the
// arithmetic domain). Every gadget in this package consumes and produces
// share tuples without ever materializing the secret, and without any
// intermediate wire whose distribution depends on the secret at probing
// orders at or below d.
//
// Basic usage:
//
//	rng := domask.CryptoRNG{}
//	a, err := domask.New[uint32](7, 2, domask.Boolean, rng)
//	b, err := domask.New[uint32](5, 2, domask.Boolean, rng)
//	sum, err := domask.BoolAdd(a, b)
//	sum.Unmask() // == 12
//
// Or through the auto-domain-adapting Evaluator:
//
//	ev, err := domask.NewEvaluator[uint32](2, rng, true)
//	lt, err := ev.Lt(a, b, true)
package domask
