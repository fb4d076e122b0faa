// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package domask

import (
	"encoding/binary"
	"math/bits"
)

// Word is the set of native unsigned integer widths this package supports:
// 8, 32 and 64 bits. Mixing widths at a call boundary is rejected by the Go
// compiler because MaskedUint[uint8] and MaskedUint[uint32] are distinct,
// non-unifiable instantiations — see DESIGN.md, "width-mismatch
// enforcement".
type Word interface {
	~uint8 | ~uint32 | ~uint64
}

// bitWidth returns the bit width of T. T is always one of the three Word
// instantiations, so the switch is exhaustive; the panic is unreachable
// post-compile.
func bitWidth[T Word]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("domask: unsupported Word instantiation")
	}
}

// Uint wraps a fixed-width unsigned integer of type T, reducing every
// result modulo 2^w the way a hardware register would. Go's native
// integer wraparound already gives this for free: uint8/uint32/uint64
// arithmetic never needs an explicit "mod 2^w" step.
type Uint[T Word] struct {
	v T
}

// NewUint wraps v as a Uint[T]. Values are never out of range for a native
// Go integer type, so there is no truncation step to perform here; values
// arriving via FromBytes or arithmetic are already reduced by construction.
func NewUint[T Word](v T) Uint[T] { return Uint[T]{v: v} }

// Value returns the underlying native integer.
func (u Uint[T]) Value() T { return u.v }

// Width returns the bit width w of this Uint instantiation.
func (u Uint[T]) Width() int { return bitWidth[T]() }

func (u Uint[T]) Add(o Uint[T]) Uint[T] { return Uint[T]{u.v + o.v} }
func (u Uint[T]) Sub(o Uint[T]) Uint[T] { return Uint[T]{u.v - o.v} }
func (u Uint[T]) Mul(o Uint[T]) Uint[T] { return Uint[T]{u.v * o.v} }
func (u Uint[T]) Mod(o Uint[T]) Uint[T] { return Uint[T]{u.v % o.v} }
func (u Uint[T]) Neg() Uint[T]          { return Uint[T]{^u.v + 1} }
func (u Uint[T]) And(o Uint[T]) Uint[T] { return Uint[T]{u.v & o.v} }
func (u Uint[T]) Or(o Uint[T]) Uint[T]  { return Uint[T]{u.v | o.v} }
func (u Uint[T]) Xor(o Uint[T]) Uint[T] { return Uint[T]{u.v ^ o.v} }
func (u Uint[T]) Not() Uint[T]          { return Uint[T]{^u.v} }

// Pow raises u to the o-th power by exponentiation-by-squaring. Every
// multiplication wraps natively mod 2^w, so the result is u^o mod 2^w
// without any explicit reduction step.
func (u Uint[T]) Pow(o Uint[T]) Uint[T] {
	result, base, exp := T(1), u.v, o.v
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return Uint[T]{result}
}

// Shl shifts left by n bits. Bits shifted past the top of the register are
// discarded, matching fixed-width hardware semantics.
func (u Uint[T]) Shl(n int) Uint[T] {
	w := u.Width()
	if n >= w {
		return Uint[T]{}
	}
	n = n % w
	if n < 0 {
		n += w
	}
	return Uint[T]{u.v << uint(n)}
}

// Shr is the logical (unsigned) right shift by n bits.
func (u Uint[T]) Shr(n int) Uint[T] {
	w := u.Width()
	if n >= w {
		return Uint[T]{}
	}
	n = n % w
	if n < 0 {
		n += w
	}
	return Uint[T]{u.v >> uint(n)}
}

// Rotl rotates left by n bits: rotl(n) = ((v << (n mod w)) | (v >> (w - n
// mod w))) mod 2^w.
func (u Uint[T]) Rotl(n int) Uint[T] {
	w := u.Width()
	n = ((n % w) + w) % w
	if n == 0 {
		return u
	}
	return Uint[T]{(u.v << uint(n)) | (u.v >> uint(w-n))}
}

// Rotr rotates right by n bits, symmetric with Rotl.
func (u Uint[T]) Rotr(n int) Uint[T] {
	w := u.Width()
	n = ((n % w) + w) % w
	if n == 0 {
		return u
	}
	return Uint[T]{(u.v >> uint(n)) | (u.v << uint(w-n))}
}

func (u Uint[T]) Eq(o Uint[T]) bool { return u.v == o.v }
func (u Uint[T]) Ne(o Uint[T]) bool { return u.v != o.v }
func (u Uint[T]) Lt(o Uint[T]) bool { return u.v < o.v }
func (u Uint[T]) Le(o Uint[T]) bool { return u.v <= o.v }
func (u Uint[T]) Gt(o Uint[T]) bool { return u.v > o.v }
func (u Uint[T]) Ge(o Uint[T]) bool { return u.v >= o.v }

// HammingWeight returns popcount(v); used by the statistical side-channel
// harnesses described in spec.md §8 (P9-P11) as the per-share leakage
// model. Those harnesses are external validators and are not implemented
// in this package, but this accessor is the seam they attach to.
func (u Uint[T]) HammingWeight() int {
	switch v := any(u.v).(type) {
	case uint8:
		return bits.OnesCount8(v)
	case uint32:
		return bits.OnesCount32(v)
	case uint64:
		return bits.OnesCount64(v)
	default:
		panic("domask: unsupported Word instantiation")
	}
}

// ToBytes encodes u as exactly w/8 bytes in the requested byte order.
func (u Uint[T]) ToBytes(order binary.ByteOrder) []byte {
	buf := make([]byte, bitWidth[T]()/8)
	switch v := any(u.v).(type) {
	case uint8:
		buf[0] = v
	case uint32:
		order.PutUint32(buf, v)
	case uint64:
		order.PutUint64(buf, v)
	}
	return buf
}

// UintFromBytes decodes exactly w/8 bytes in the given byte order into a
// Uint[T]. It fails with ArgumentError if len(b) does not equal w/8.
func UintFromBytes[T Word](b []byte, order binary.ByteOrder) (Uint[T], error) {
	want := bitWidth[T]() / 8
	if len(b) != want {
		return Uint[T]{}, newError(KindArgument, "UintFromBytes",
			"expected %d bytes, got %d", want, len(b))
	}
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint[T]{T(b[0])}, nil
	case uint32:
		return Uint[T]{T(order.Uint32(b))}, nil
	case uint64:
		return Uint[T]{T(order.Uint64(b))}, nil
	}
	panic("domask: unsupported Word instantiation")
}

// Concrete-width aliases, mirroring the original Python source's
// per-width subclasses (original_source/sec_eval/src/uint_subclasses.py).
type (
	Uint8  = Uint[uint8]
	Uint32 = Uint[uint32]
	Uint64 = Uint[uint64]
)
