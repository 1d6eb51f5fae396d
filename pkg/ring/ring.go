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

// Package ring defines the algebraic capability contracts consumed by the
// polynomial engine.  A ring-like operand is any self-contained value which
// can produce its own identity elements and supports the four basic
// arithmetic operations.  Identity construction is receiver-based: the
// receiver supplies whatever runtime data the identity needs, such as a
// modulus or a matrix shape, which a bare type could not.
package ring

import (
	"errors"
	"fmt"
)

// ErrNoOne signals that no multiplicative identity exists for the shape of
// the receiver (e.g. residues modulo zero).  Operations which materialise
// identities (exponentiation, substitution, unit-coefficient construction)
// propagate this error rather than panicking, so callers can branch on it
// with errors.Is.
var ErrNoOne = errors.New("ring: multiplicative identity undefined")

// Zero is the capability of producing an additive identity, together with
// the corresponding membership test.
type Zero[E any] interface {
	// Zero returns the additive identity matching the shape of the receiver.
	Zero() E
	// IsZero checks whether this value is the additive identity.
	IsZero() bool
}

// One is the capability of producing a multiplicative identity, together
// with the corresponding membership test.  The two identity capabilities are
// independently satisfiable, though every ring-like type should implement
// both.
type One[E any] interface {
	// One returns the multiplicative identity matching the shape of the
	// receiver, or ErrNoOne when the receiver's shape has none.
	One() (E, error)
	// IsOne checks whether this value is the multiplicative identity.
	IsOne() bool
}

// Element of a ring.  This is the full contract required of polynomial
// coefficients: both identity capabilities plus closed arithmetic.  All
// operations are pure, returning fresh values.
type Element[E any] interface {
	fmt.Stringer
	Zero[E]
	One[E]
	// Add x + y
	Add(y E) E
	// Sub x - y
	Sub(y E) E
	// Neg -x
	Neg() E
	// Mul x * y
	Mul(y E) E
	// MulInt returns x scaled by a small machine integer.  This is the
	// scalar-multiplication path used when integer-coefficient polynomials
	// act on values of a different ring.
	MulInt(k int64) E
}
