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
package ring

import "strconv"

// Int is the ring of machine integers.  It exists because primitive types
// cannot carry methods; wrapping is the explicit opt-in which lets plain
// integers flow through the generic polynomial engine.  Overflow behaviour
// is that of int64.
type Int int64

// Zero implementation for the Zero capability.
func (x Int) Zero() Int {
	return 0
}

// IsZero implementation for the Zero capability.
func (x Int) IsZero() bool {
	return x == 0
}

// One implementation for the One capability.  Always defined.
func (x Int) One() (Int, error) {
	return 1, nil
}

// IsOne implementation for the One capability.
func (x Int) IsOne() bool {
	return x == 1
}

// Add x + y
func (x Int) Add(y Int) Int {
	return x + y
}

// Sub x - y
func (x Int) Sub(y Int) Int {
	return x - y
}

// Neg -x
func (x Int) Neg() Int {
	return -x
}

// Mul x * y
func (x Int) Mul(y Int) Int {
	return x * y
}

// MulInt implementation for the Element interface.
func (x Int) MulInt(k int64) Int {
	return x * Int(k)
}

// String implementation for the fmt.Stringer interface.
func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
