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

// Variable identifies the formal variable of a polynomial at the type level.
// Two polynomials over different variable tags are distinct types, so mixing
// them is rejected at compile time rather than at runtime.
type Variable interface {
	// Symbol returns the name this variable prints as.
	Symbol() string
}

// X is the default variable tag.
type X struct{}

// Symbol implementation for the Variable interface
func (X) Symbol() string {
	return "x"
}

// Y is a second variable tag, for keeping two families of polynomials apart.
type Y struct{}

// Symbol implementation for the Variable interface
func (Y) Symbol() string {
	return "y"
}
