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

// Package poly implements sparse single-variable polynomials over arbitrary
// coefficient rings.  Arithmetic is lazy: add, subtract and multiply only
// build term lists and never merge like powers, so repeated exponents and
// zero coefficients can accumulate until Reduce is called explicitly.
// Substitution accepts points of a different type than the coefficients,
// including matrices and other polynomials.
package poly

import (
	"cmp"
	"slices"
	"strings"

	"github.com/inttik/polylib/pkg/ring"
	"github.com/inttik/polylib/pkg/util"
)

// Term pairs a coefficient with a power of the variable.
type Term[E ring.Element[E], V Variable] struct {
	coefficient E
	power       Power[V]
}

// NewTerm constructs the term coefficient * v^exp.
func NewTerm[V Variable, E ring.Element[E]](coefficient E, exp uint64) Term[E, V] {
	return Term[E, V]{coefficient, NewPower[V](exp)}
}

// Coefficient returns the coefficient of this term.
func (t Term[E, V]) Coefficient() E {
	return t.coefficient
}

// Power returns the power of this term.
func (t Term[E, V]) Power() Power[V] {
	return t.power
}

// Mul multiplies two terms: coefficients multiply, exponents add.
func (t Term[E, V]) Mul(o Term[E, V]) Term[E, V] {
	return Term[E, V]{t.coefficient.Mul(o.coefficient), t.power.Add(o.power)}
}

// Polynomial is a sparse polynomial held as an unordered term list.  The
// list is not kept canonical: duplicate exponents and zero coefficients may
// be present after arithmetic, and only Reduce normalises them away.  The
// zero Polynomial value is the empty (zero) polynomial.
type Polynomial[E ring.Element[E], V Variable] struct {
	terms []Term[E, V]
}

// New constructs a polynomial from explicit terms, kept as given.
func New[V Variable, E ring.Element[E]](terms ...Term[E, V]) Polynomial[E, V] {
	return Polynomial[E, V]{slices.Clone(terms)}
}

// FromCoeffs constructs a polynomial from a dense coefficient list, where
// coeffs[i] is the coefficient of v^i.  Zero coefficients are skipped.
func FromCoeffs[V Variable, E ring.Element[E]](coeffs []E) Polynomial[E, V] {
	var terms []Term[E, V]
	//
	for i, c := range coeffs {
		if !c.IsZero() {
			terms = append(terms, NewTerm[V](c, uint64(i)))
		}
	}
	//
	return Polynomial[E, V]{terms}
}

// Constant constructs the degree-zero polynomial with the given value.
func Constant[V Variable, E ring.Element[E]](value E) Polynomial[E, V] {
	return Polynomial[E, V]{[]Term[E, V]{NewTerm[V](value, 0)}}
}

// Monomial constructs the single-term polynomial coefficient * v^exp.
func Monomial[V Variable, E ring.Element[E]](coefficient E, exp uint64) Polynomial[E, V] {
	return Polynomial[E, V]{[]Term[E, V]{NewTerm[V](coefficient, exp)}}
}

// Var constructs the polynomial v^exp with a unit coefficient taken from
// E's zero value.  This fails for rings whose identity needs runtime shape
// (e.g. matrices, or modular integers with modulus zero); construct those
// via Monomial with an explicit coefficient instead.
func Var[V Variable, E ring.Element[E]](exp uint64) (Polynomial[E, V], error) {
	var empty E
	//
	one, err := empty.One()
	if err != nil {
		return Polynomial[E, V]{}, err
	}
	//
	return Monomial[V](one, exp), nil
}

// Len returns the number of terms in the current representation, counting
// duplicates and zero-coefficient terms.
func (p Polynomial[E, V]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term of the current representation.
func (p Polynomial[E, V]) Term(i uint) Term[E, V] {
	return p.terms[i]
}

// Coefficient returns the coefficient of the first term with the given
// exponent in the current representation, or nothing when the exponent is
// absent.  Call Reduce first to make the answer canonical.
func (p Polynomial[E, V]) Coefficient(exp uint64) util.Option[E] {
	for _, t := range p.terms {
		if t.power.Exponent() == exp {
			return util.Some(t.coefficient)
		}
	}
	//
	return util.None[E]()
}

// Degree returns the largest exponent present in the current
// representation, or nothing for an empty polynomial.  Zero-coefficient
// terms count until reduced away.
func (p Polynomial[E, V]) Degree() util.Option[uint64] {
	if len(p.terms) == 0 {
		return util.None[uint64]()
	}
	//
	deg := uint64(0)
	for _, t := range p.terms {
		deg = max(deg, t.power.Exponent())
	}
	//
	return util.Some(deg)
}

// Clone returns a copy sharing no term storage with the original.
func (p Polynomial[E, V]) Clone() Polynomial[E, V] {
	return Polynomial[E, V]{slices.Clone(p.terms)}
}

// Add x + y by concatenating term lists.  Like powers are not merged.
func (p Polynomial[E, V]) Add(o Polynomial[E, V]) Polynomial[E, V] {
	terms := make([]Term[E, V], 0, len(p.terms)+len(o.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, o.terms...)
	//
	return Polynomial[E, V]{terms}
}

// AddConst appends a degree-zero term with the given value.
func (p Polynomial[E, V]) AddConst(value E) Polynomial[E, V] {
	return p.Add(Constant[V](value))
}

// Neg -x (every coefficient negated).
func (p Polynomial[E, V]) Neg() Polynomial[E, V] {
	terms := make([]Term[E, V], len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term[E, V]{t.coefficient.Neg(), t.power}
	}
	//
	return Polynomial[E, V]{terms}
}

// Sub x - y, as x + (-y).
func (p Polynomial[E, V]) Sub(o Polynomial[E, V]) Polynomial[E, V] {
	return p.Add(o.Neg())
}

// SubConst appends a degree-zero term with the negated value.
func (p Polynomial[E, V]) SubConst(value E) Polynomial[E, V] {
	return p.AddConst(value.Neg())
}

// Scale multiplies every coefficient by v (coefficient on the left).
func (p Polynomial[E, V]) Scale(value E) Polynomial[E, V] {
	terms := make([]Term[E, V], len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term[E, V]{t.coefficient.Mul(value), t.power}
	}
	//
	return Polynomial[E, V]{terms}
}

// MulInt implementation for the ring.Element interface: every coefficient
// scaled by a small integer.
func (p Polynomial[E, V]) MulInt(k int64) Polynomial[E, V] {
	terms := make([]Term[E, V], len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term[E, V]{t.coefficient.MulInt(k), t.power}
	}
	//
	return Polynomial[E, V]{terms}
}

// Mul x * y as the full Cartesian product of term lists.  The result has
// Len(x)*Len(y) terms; like powers are not merged.
func (p Polynomial[E, V]) Mul(o Polynomial[E, V]) Polynomial[E, V] {
	terms := make([]Term[E, V], 0, len(p.terms)*len(o.terms))
	//
	for _, t := range p.terms {
		for _, u := range o.terms {
			terms = append(terms, t.Mul(u))
		}
	}
	//
	return Polynomial[E, V]{terms}
}

// Pow raises the polynomial to a non-negative power by repeated squaring,
// since polynomials are themselves multiplicative operands.  p^0 is the
// constant one, which fails only when the coefficient ring has no identity.
func (p Polynomial[E, V]) Pow(exp uint64) (Polynomial[E, V], error) {
	return Raise(p, exp)
}

// Reduce returns the canonical form: terms sorted by ascending exponent,
// like powers merged by coefficient addition and zero coefficients dropped.
// The receiver is left untouched.
func (p Polynomial[E, V]) Reduce() Polynomial[E, V] {
	sorted := slices.Clone(p.terms)
	//
	slices.SortStableFunc(sorted, func(l, r Term[E, V]) int {
		return cmp.Compare(l.power.Exponent(), r.power.Exponent())
	})
	//
	var terms []Term[E, V]
	//
	for _, t := range sorted {
		n := len(terms)
		//
		if n > 0 && terms[n-1].power.Exponent() == t.power.Exponent() {
			terms[n-1].coefficient = terms[n-1].coefficient.Add(t.coefficient)
		} else {
			terms = append(terms, t)
		}
	}
	//
	terms = slices.DeleteFunc(terms, func(t Term[E, V]) bool {
		return t.coefficient.IsZero()
	})
	//
	return Polynomial[E, V]{terms}
}

// Equal reports whether two polynomials denote the same reduced form.
func (p Polynomial[E, V]) Equal(o Polynomial[E, V]) bool {
	return len(p.Sub(o).Reduce().terms) == 0
}

// Zero implementation for the ring.Zero capability: the empty polynomial.
func (p Polynomial[E, V]) Zero() Polynomial[E, V] {
	return Polynomial[E, V]{}
}

// IsZero checks whether or not this polynomial is syntactically zero in its
// current representation.  This is sound but incomplete: res is meaningful
// only when ok holds, and an unreduced polynomial whose terms merely cancel
// answers ok=false rather than claiming either way.
func (p Polynomial[E, V]) IsZero() (res bool, ok bool) {
	for _, t := range p.terms {
		if !t.coefficient.IsZero() {
			return false, false
		}
	}
	//
	return true, true
}

// One implementation for the ring.One capability: the constant one, with
// the unit taken from an existing coefficient where possible so that
// shape-carrying rings keep their shape.
func (p Polynomial[E, V]) One() (Polynomial[E, V], error) {
	var exemplar E
	//
	if len(p.terms) > 0 {
		exemplar = p.terms[0].coefficient
	}
	//
	one, err := exemplar.One()
	if err != nil {
		return Polynomial[E, V]{}, err
	}
	//
	return Constant[V](one), nil
}

// IsOne checks whether or not this polynomial is syntactically the constant
// one.  As with IsZero, res is meaningful only when ok holds.
func (p Polynomial[E, V]) IsOne() (res bool, ok bool) {
	if len(p.terms) == 1 && p.terms[0].power.Exponent() == 0 && p.terms[0].coefficient.IsOne() {
		return true, true
	}
	//
	return false, false
}

// String implementation for the fmt.Stringer interface.  Zero-coefficient
// terms are skipped, unit coefficients print as the bare power, and an
// all-zero polynomial prints as the ring's zero.
func (p Polynomial[E, V]) String() string {
	var parts []string
	//
	for _, t := range p.terms {
		if t.coefficient.IsZero() {
			continue
		}
		//
		switch {
		case t.power.Exponent() == 0:
			parts = append(parts, t.coefficient.String())
		case t.coefficient.IsOne():
			parts = append(parts, t.power.String())
		default:
			parts = append(parts, t.coefficient.String()+"*"+t.power.String())
		}
	}
	//
	if len(parts) == 0 {
		if len(p.terms) > 0 {
			return p.terms[0].coefficient.Zero().String()
		}
		//
		var empty E
		//
		return empty.Zero().String()
	}
	//
	return strings.Join(parts, " + ")
}
