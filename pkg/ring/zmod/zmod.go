// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package zmod implements the ring of integers modulo a fixed modulus.
// Unlike fields with a pinned prime order, the modulus here is arbitrary
// runtime data carried by every element, so residues of different moduli
// are never confused.
package zmod

import (
	"fmt"
	"math/bits"

	"github.com/inttik/polylib/pkg/ring"
)

// Element is a residue modulo a fixed modulus, always held in
// [0, modulus).  A modulus of zero denotes the degenerate ring of raw
// uint64 values (arithmetic modulo 2^64); it has no multiplicative
// identity and One fails explicitly for it.
type Element struct {
	value   uint64
	modulus uint64
}

// New returns the residue of value modulo the given modulus.
func New(value, modulus uint64) Element {
	if modulus == 0 {
		return Element{value, 0}
	}
	//
	return Element{value % modulus, modulus}
}

// Value returns the held residue.
func (x Element) Value() uint64 {
	return x.value
}

// Modulus returns the modulus this residue lives under.
func (x Element) Modulus() uint64 {
	return x.modulus
}

// Zero implementation for the ring.Zero capability.
func (x Element) Zero() Element {
	return Element{0, x.modulus}
}

// IsZero implementation for the ring.Zero capability.
func (x Element) IsZero() bool {
	return x.value == 0
}

// One implementation for the ring.One capability.  Fails for modulus 0,
// where no multiplicative identity exists.
func (x Element) One() (Element, error) {
	if x.modulus == 0 {
		return Element{}, fmt.Errorf("zmod: %w for modulus 0", ring.ErrNoOne)
	}
	//
	return Element{1 % x.modulus, x.modulus}, nil
}

// IsOne implementation for the ring.One capability.
func (x Element) IsOne() bool {
	if x.modulus == 0 {
		return false
	}
	//
	return x.value == 1%x.modulus
}

// Add x + y
func (x Element) Add(y Element) Element {
	x.checkModulus(y)
	//
	v := x.value + y.value
	// Both operands are below the modulus, so a single conditional
	// subtraction restores the range (also correct when the raw sum wrapped).
	if x.modulus != 0 && (v < x.value || v >= x.modulus) {
		v -= x.modulus
	}
	//
	return Element{v, x.modulus}
}

// Neg -x
func (x Element) Neg() Element {
	if x.value == 0 {
		return x
	}
	//
	return Element{x.modulus - x.value, x.modulus}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	x.checkModulus(y)
	//
	return x.Add(y.Neg())
}

// Mul x * y.  The product is taken through a 128-bit intermediate, so the
// reduction is exact for any uint64 modulus.
func (x Element) Mul(y Element) Element {
	x.checkModulus(y)
	//
	hi, lo := bits.Mul64(x.value, y.value)
	if x.modulus == 0 {
		return Element{lo, 0}
	}
	// hi < modulus always holds for operands below the modulus.
	_, rem := bits.Div64(hi, lo, x.modulus)
	//
	return Element{rem, x.modulus}
}

// MulInt implementation for the ring.Element interface.  Negative scalars
// multiply by the absolute value, then negate.
func (x Element) MulInt(k int64) Element {
	var (
		neg bool
		kv  uint64
	)
	//
	if k < 0 {
		neg = true
		kv = uint64(-(k + 1)) + 1
	} else {
		kv = uint64(k)
	}
	//
	res := x.Mul(New(kv, x.modulus))
	if neg {
		res = res.Neg()
	}
	//
	return res
}

// String implementation for the fmt.Stringer interface.
func (x Element) String() string {
	return fmt.Sprintf("<Z%d %d>", x.modulus, x.value)
}

// checkModulus panics when two residues of different moduli are combined.
// This is a programmer error, not a recoverable condition.
func (x Element) checkModulus(y Element) {
	if x.modulus != y.modulus {
		panic(fmt.Sprintf("zmod: mixing moduli %d and %d", x.modulus, y.modulus))
	}
}
