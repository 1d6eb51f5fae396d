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
package poly

import (
	"fmt"
)

// Operand captures the minimal contract a substitution point must satisfy:
// it can be multiplied with itself and can produce a multiplicative
// identity.  Ring elements, square matrices and polynomials all qualify.
type Operand[X any] interface {
	// Mul x * y
	Mul(y X) X
	// One returns the multiplicative identity, or an error when the
	// operand's ring has none.
	One() (X, error)
}

// Sum captures the minimal contract a substitution result must satisfy:
// values can be accumulated and an additive identity exists.
type Sum[Y any] interface {
	// Add x + y
	Add(y Y) Y
	// Zero returns the additive identity.
	Zero() Y
}

// Power represents the variable raised to a fixed exponent, e.g. x^3.  It
// carries no coefficient; terms pair it with one.  The variable tag V keeps
// powers of different variables apart at the type level.
type Power[V Variable] struct {
	exponent uint64
}

// NewPower constructs the power v^exp for the variable tag V.
func NewPower[V Variable](exp uint64) Power[V] {
	return Power[V]{exp}
}

// Exponent returns the exponent of this power.
func (p Power[V]) Exponent() uint64 {
	return p.exponent
}

// Add combines two powers of the same variable by adding their exponents,
// since v^n * v^m = v^(n+m).
func (p Power[V]) Add(o Power[V]) Power[V] {
	return Power[V]{p.exponent + o.exponent}
}

// Apply evaluates the power at a given point by repeated squaring.
func Apply[X Operand[X], V Variable](p Power[V], point X) (X, error) {
	return Raise(point, p.exponent)
}

// String implementation for the fmt.Stringer interface
func (p Power[V]) String() string {
	var v V
	//
	switch p.exponent {
	case 0:
		return ""
	case 1:
		return v.Symbol()
	default:
		return fmt.Sprintf("%s^%d", v.Symbol(), p.exponent)
	}
}

// Raise computes base^exp by iterative square-and-multiply, costing
// O(log exp) multiplications.  This makes astronomically large exponents
// practical, in particular for nilpotent or cyclic bases where the result
// stays small.  By convention base^0 is the multiplicative identity, even
// for a zero base; raising within a ring that has no identity fails.
func Raise[X Operand[X]](base X, exp uint64) (X, error) {
	acc, err := base.One()
	//
	if err != nil {
		return acc, err
	}
	//
	for exp > 0 {
		if exp&1 == 1 {
			acc = acc.Mul(base)
		}
		//
		base = base.Mul(base)
		exp >>= 1
	}
	//
	return acc, nil
}
