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

// Package bls12_377 adapts the scalar field of the BLS12-377 curve to the
// ring.Element interface, giving polynomials a large prime-field coefficient
// ring backed by gnark-crypto.
package bls12_377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform
// to the ring.Element interface.
type Element struct {
	fr.Element
}

// New constructs a field element from a small non-negative value.
func New(val uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// MulInt implementation for the ring.Element interface
func (x Element) MulInt(k int64) Element {
	var elem fr.Element
	//
	elem.SetInt64(k)
	elem.Mul(&elem, &x.Element)
	//
	return Element{elem}
}

// Zero implementation for the ring.Zero capability
func (x Element) Zero() Element {
	return Element{}
}

// IsZero implementation for the ring.Zero capability
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// One implementation for the ring.One capability
func (x Element) One() (Element, error) {
	var elem fr.Element
	//
	elem.SetOne()
	//
	return Element{elem}, nil
}

// IsOne implementation for the ring.One capability
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

func (x Element) String() string {
	return x.Element.String()
}
