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
	"errors"
	"testing"

	"github.com/inttik/polylib/pkg/ring"
	"github.com/inttik/polylib/pkg/ring/zmod"
)

func Test_Poly_Constant(t *testing.T) {
	p := Constant[X](ring.Int(5))
	//
	checkCoeffs(t, p, 5)
	//
	if p.Len() != 1 {
		t.Errorf("unexpected length %d", p.Len())
	}
}

func Test_Poly_FromCoeffs(t *testing.T) {
	p := FromCoeffs[X](ints(3, 0, 1, 2))
	// Zero coefficients are skipped on construction.
	if p.Len() != 3 {
		t.Errorf("unexpected length %d", p.Len())
	}
	//
	checkCoeffs(t, p, 3, 0, 1, 2)
	//
	if c := p.Coefficient(1); c.HasValue() {
		t.Errorf("expected no coefficient at exponent 1, got %s", c.Unwrap())
	}
	//
	if c := p.Coefficient(2); c.IsEmpty() || c.Unwrap() != 1 {
		t.Errorf("unexpected coefficient at exponent 2")
	}
}

func Test_Poly_Var(t *testing.T) {
	p, err := Var[X, ring.Int](3)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkCoeffs(t, p, 0, 0, 0, 1)
}

func Test_Poly_Var_NoOne(t *testing.T) {
	// The zero value of a modulus-0 element has no multiplicative identity,
	// so the variable cannot be materialised.
	_, err := Var[X, zmod.Element](1)
	//
	if !errors.Is(err, ring.ErrNoOne) {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_Poly_Add(t *testing.T) {
	lhs := FromCoeffs[X](ints(1, 2))
	rhs := FromCoeffs[X](ints(3, 0, 4))
	sum := lhs.Add(rhs)
	// Unreduced: term lists concatenate.
	if sum.Len() != 4 {
		t.Errorf("unexpected length %d", sum.Len())
	}
	//
	checkCoeffs(t, sum, 4, 2, 4)
}

func Test_Poly_AddConst(t *testing.T) {
	p := FromCoeffs[X](ints(1, 2)).AddConst(8)
	//
	checkCoeffs(t, p, 9, 2)
}

func Test_Poly_Sub(t *testing.T) {
	lhs := FromCoeffs[X](ints(5, 2, 7))
	rhs := FromCoeffs[X](ints(1, 2))
	//
	checkCoeffs(t, lhs.Sub(rhs), 4, 0, 7)
}

func Test_Poly_SubConst(t *testing.T) {
	p := FromCoeffs[X](ints(5, 1)).SubConst(3)
	//
	checkCoeffs(t, p, 2, 1)
}

func Test_Poly_Neg(t *testing.T) {
	p := FromCoeffs[X](ints(1, -2, 3))
	//
	checkCoeffs(t, p.Neg(), -1, 2, -3)
}

func Test_Poly_Scale(t *testing.T) {
	p := FromCoeffs[X](ints(1, -2, 3)).Scale(4)
	//
	checkCoeffs(t, p, 4, -8, 12)
}

func Test_Poly_MulInt(t *testing.T) {
	p := FromCoeffs[X](ints(1, -2, 3)).MulInt(-2)
	//
	checkCoeffs(t, p, -2, 4, -6)
}

func Test_Poly_Mul(t *testing.T) {
	lhs := FromCoeffs[X](ints(1, 1))
	rhs := FromCoeffs[X](ints(-1, 1))
	prod := lhs.Mul(rhs)
	// Cartesian product of term lists.
	if prod.Len() != 4 {
		t.Errorf("unexpected length %d", prod.Len())
	}
	// (x+1)(x-1) = x^2 - 1
	checkCoeffs(t, prod, -1, 0, 1)
}

func Test_Poly_Pow_Const(t *testing.T) {
	p, err := FromCoeffs[X](ints(2)).Pow(10)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkCoeffs(t, p, 1024)
}

func Test_Poly_Pow_Cube(t *testing.T) {
	// (x-1)^3 = x^3 - 3x^2 + 3x - 1
	p, err := FromCoeffs[X](ints(-1, 1)).Pow(3)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkCoeffs(t, p, -1, 3, -3, 1)
}

func Test_Poly_Pow_Zero(t *testing.T) {
	p, err := FromCoeffs[X](ints(7, 5)).Pow(0)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkCoeffs(t, p, 1)
}

func Test_Poly_Pow_One(t *testing.T) {
	p, err := FromCoeffs[X](ints(7, 5)).Pow(1)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkCoeffs(t, p, 7, 5)
}

func Test_Poly_Reduce(t *testing.T) {
	// 2x^2 + 1 - 1 - x^2 - x^2 + 1 reduces to the constant 1.
	p := Monomial[X](ring.Int(2), 2).
		AddConst(1).
		SubConst(1).
		Sub(Monomial[X](ring.Int(1), 2)).
		Sub(Monomial[X](ring.Int(1), 2)).
		AddConst(1)
	//
	if p.Len() != 6 {
		t.Errorf("unexpected length %d before reduction", p.Len())
	}
	//
	reduced := p.Reduce()
	//
	if reduced.Len() != 1 {
		t.Errorf("unexpected length %d after reduction", reduced.Len())
	}
	//
	checkCoeffs(t, reduced, 1)
	// Reduction leaves the receiver untouched.
	if p.Len() != 6 {
		t.Errorf("receiver mutated by reduction")
	}
	// Reduction is idempotent.
	if again := reduced.Reduce(); again.Len() != 1 {
		t.Errorf("reduction not idempotent")
	}
}

func Test_Poly_Reduce_Cancellation(t *testing.T) {
	p := FromCoeffs[X](ints(1, 2)).Sub(FromCoeffs[X](ints(1, 2)))
	//
	if reduced := p.Reduce(); reduced.Len() != 0 {
		t.Errorf("unexpected length %d after reduction", reduced.Len())
	}
}

func Test_Poly_Equal(t *testing.T) {
	lhs := FromCoeffs[X](ints(1, 1)).Mul(FromCoeffs[X](ints(-1, 1)))
	rhs := FromCoeffs[X](ints(-1, 0, 1))
	//
	if !lhs.Equal(rhs) {
		t.Errorf("expected %s == %s", lhs, rhs)
	}
	//
	if lhs.Equal(rhs.AddConst(1)) {
		t.Errorf("expected %s != %s + 1", lhs, rhs)
	}
}

func Test_Poly_Degree(t *testing.T) {
	if d := FromCoeffs[X](ints(3, 0, 1, 2)).Degree(); d.IsEmpty() || d.Unwrap() != 3 {
		t.Errorf("unexpected degree")
	}
	//
	var empty Polynomial[ring.Int, X]
	//
	if d := empty.Degree(); d.HasValue() {
		t.Errorf("empty polynomial has degree %d", d.Unwrap())
	}
}

func Test_Poly_IsZero(t *testing.T) {
	var empty Polynomial[ring.Int, X]
	//
	if res, ok := empty.IsZero(); !res || !ok {
		t.Errorf("empty polynomial not recognised as zero")
	}
	//
	if _, ok := FromCoeffs[X](ints(0, 1)).IsZero(); ok {
		t.Errorf("x decided as zero without reduction")
	}
	// Cancelling terms are indistinguishable from non-zero ones without
	// reduction, so the check must abstain.
	cancelling := Constant[X](ring.Int(1)).SubConst(1)
	//
	if _, ok := cancelling.IsZero(); ok {
		t.Errorf("unreduced cancellation decided without reduction")
	}
	//
	if res, ok := cancelling.Reduce().IsZero(); !res || !ok {
		t.Errorf("reduced cancellation not recognised as zero")
	}
}

func Test_Poly_IsOne(t *testing.T) {
	if res, ok := Constant[X](ring.Int(1)).IsOne(); !res || !ok {
		t.Errorf("constant one not recognised")
	}
	//
	if _, ok := FromCoeffs[X](ints(2)).IsOne(); ok {
		t.Errorf("constant two decided as one")
	}
	//
	if _, ok := Constant[X](ring.Int(1)).AddConst(0).IsOne(); ok {
		t.Errorf("two-term polynomial decided without reduction")
	}
}

func Test_Poly_ZeroOne(t *testing.T) {
	p := FromCoeffs[X](ints(3, 1))
	//
	if res, ok := p.Zero().IsZero(); !res || !ok {
		t.Errorf("Zero() not recognised as zero")
	}
	//
	one, err := p.One()
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if res, ok := one.IsOne(); !res || !ok {
		t.Errorf("One() not recognised as one")
	}
	// Additive identity law.
	if !p.Add(p.Zero()).Equal(p) {
		t.Errorf("p + 0 != p")
	}
	// Multiplicative identity law.
	if !p.Mul(one).Equal(p) {
		t.Errorf("p * 1 != p")
	}
}

func Test_Poly_Build(t *testing.T) {
	// 1 + x^2 * 3 - x + 8, built operator by operator.
	p := Constant[X](ring.Int(1)).
		Add(Monomial[X](ring.Int(3), 2)).
		Sub(Monomial[X](ring.Int(1), 1)).
		AddConst(8)
	//
	checkCoeffs(t, p, 9, -1, 3)
}

func Test_Poly_String(t *testing.T) {
	checkString(t, FromCoeffs[X](ints(9, -1, 3)), "9 + -1*x + 3*x^2")
	checkString(t, FromCoeffs[X](ints(0, 1)), "x")
	checkString(t, Monomial[X](ring.Int(1), 4), "x^4")
	checkString(t, Constant[X](ring.Int(-5)), "-5")
	checkString(t, Monomial[X](ring.Int(0), 3), "0")
	//
	var empty Polynomial[ring.Int, X]
	//
	checkString(t, empty, "0")
}

func checkString(t *testing.T, p Polynomial[ring.Int, X], expected string) {
	if s := p.String(); s != expected {
		t.Errorf("unexpected rendering %q (expected %q)", s, expected)
	}
}

// checkCoeffs reduces p and checks its coefficients against a dense list,
// where expected[i] is the coefficient of x^i.
func checkCoeffs(t *testing.T, p Polynomial[ring.Int, X], expected ...int64) {
	reduced := p.Reduce()
	//
	for i, e := range expected {
		c := reduced.Coefficient(uint64(i)).UnwrapOr(0)
		//
		if int64(c) != e {
			t.Errorf("coefficient of x^%d == %d != %d (in %s)", i, c, e, reduced)
		}
	}
	//
	if d := reduced.Degree(); d.HasValue() && d.Unwrap() >= uint64(len(expected)) {
		t.Errorf("unexpected degree %d (in %s)", d.Unwrap(), reduced)
	}
}

func ints(vs ...int64) []ring.Int {
	res := make([]ring.Int, len(vs))
	for i, v := range vs {
		res[i] = ring.Int(v)
	}

	return res
}
