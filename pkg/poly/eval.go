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
	"github.com/inttik/polylib/pkg/ring"
)

// Eval substitutes a point of the coefficient ring into the polynomial,
// multiplying each coefficient on the left of the raised point.
func (p Polynomial[E, V]) Eval(point E) (E, error) {
	return EvalWith(p, point, func(c E, x E) E { return c.Mul(x) })
}

// RevEval is Eval with the operands swapped: each raised point multiplies
// on the left of its coefficient.  Over commutative rings the two agree;
// over matrices or polynomial points they generally do not.
func (p Polynomial[E, V]) RevEval(point E) (E, error) {
	return RevEvalWith(p, point, func(x E, c E) E { return x.Mul(c) })
}

// EvalWith substitutes a point of an arbitrary operand type X into the
// polynomial, producing results of type Y.  Each term's power is applied to
// the point by repeated squaring and the result is combined with the
// coefficient by mul, coefficient first.  The caller's mul bridges the
// coefficient ring and the point's ring; ring.Element.MulInt is a common
// choice when coefficients are plain integers.
func EvalWith[E ring.Element[E], V Variable, X Operand[X], Y Sum[Y]](
	p Polynomial[E, V], point X, mul func(E, X) Y) (Y, error) {
	//
	var (
		acc   Y
		first = true
	)
	//
	for _, t := range p.terms {
		raised, err := Apply(t.power, point)
		//
		if err != nil {
			return acc, err
		}
		//
		value := mul(t.coefficient, raised)
		//
		// The accumulator starts from the first term rather than from an
		// additive identity, since Y's zero value need not carry the right
		// shape for shape-dependent rings.
		if first {
			acc, first = value, false
		} else {
			acc = acc.Add(value)
		}
	}
	//
	if first {
		var empty Y
		//
		return empty.Zero(), nil
	}
	//
	return acc, nil
}

// RevEvalWith is EvalWith with the operands of mul swapped: the raised
// point comes first, the coefficient second.
func RevEvalWith[E ring.Element[E], V Variable, X Operand[X], Y Sum[Y]](
	p Polynomial[E, V], point X, mul func(X, E) Y) (Y, error) {
	//
	return EvalWith(p, point, func(c E, x X) Y { return mul(x, c) })
}
