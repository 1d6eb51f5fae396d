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

// Package matrix implements a dense matrix over an arbitrary ring element
// type.  Matrices are themselves ring-like operands: a square matrix can be
// a polynomial coefficient or a substitution point.  Dimensions are runtime
// data; construction and indexing validate them with sentinel errors, while
// arithmetic on incompatible shapes is treated as a programmer error and
// panics.
package matrix

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/inttik/polylib/pkg/ring"
)

// ErrShape is returned when a matrix is constructed or refilled from a value
// list whose length does not match rows*cols.
var ErrShape = errors.New("matrix: shape mismatch")

// ErrBounds is returned when an index lies outside [0,rows)×[0,cols).
var ErrBounds = errors.New("matrix: index out of bounds")

// Dense is a rows×cols matrix over a ring element type E, stored row-major
// in a flat slice.  The zero Dense value is the empty 0×0 matrix.
type Dense[E ring.Element[E]] struct {
	rows, cols uint
	data       []E
}

// New builds a rows×cols matrix from a flat row-major value list.  The list
// length must equal rows*cols.
func New[E ring.Element[E]](rows, cols uint, values []E) (Dense[E], error) {
	if uint(len(values)) != rows*cols {
		return Dense[E]{}, fmt.Errorf("cannot build %dx%d matrix from %d values: %w",
			rows, cols, len(values), ErrShape)
	}
	//
	return Dense[E]{rows, cols, slices.Clone(values)}, nil
}

// Full returns the rows×cols matrix with every entry set to v.
func Full[E ring.Element[E]](rows, cols uint, v E) Dense[E] {
	data := make([]E, rows*cols)
	for i := range data {
		data[i] = v
	}
	//
	return Dense[E]{rows, cols, data}
}

// Eye returns the rows×cols matrix with v on the main diagonal (up to
// min(rows,cols)) and additive identities elsewhere.
func Eye[E ring.Element[E]](rows, cols uint, v E) Dense[E] {
	m := Full(rows, cols, v.Zero())
	//
	for i := uint(0); i < min(rows, cols); i++ {
		m.data[i*cols+i] = v
	}
	//
	return m
}

// Rows returns the number of rows.
func (m Dense[E]) Rows() uint {
	return m.rows
}

// Cols returns the number of columns.
func (m Dense[E]) Cols() uint {
	return m.cols
}

// At returns the entry at (row, col), or ErrBounds.
func (m Dense[E]) At(row, col uint) (E, error) {
	if row >= m.rows || col >= m.cols {
		var empty E
		return empty, fmt.Errorf("cannot access [%d,%d] of %dx%d matrix: %w",
			row, col, m.rows, m.cols, ErrBounds)
	}
	//
	return m.data[row*m.cols+col], nil
}

// Set assigns the entry at (row, col), or returns ErrBounds.
func (m *Dense[E]) Set(row, col uint, v E) error {
	if row >= m.rows || col >= m.cols {
		return fmt.Errorf("cannot assign [%d,%d] of %dx%d matrix: %w",
			row, col, m.rows, m.cols, ErrBounds)
	}
	//
	m.data[row*m.cols+col] = v
	//
	return nil
}

// Data returns a copy of the flat row-major entries.
func (m Dense[E]) Data() []E {
	return slices.Clone(m.data)
}

// SetData refills the matrix from a flat row-major value list, which must
// match the matrix shape.
func (m *Dense[E]) SetData(values []E) error {
	if uint(len(values)) != m.rows*m.cols {
		return fmt.Errorf("cannot refill %dx%d matrix from %d values: %w",
			m.rows, m.cols, len(values), ErrShape)
	}
	//
	m.data = slices.Clone(values)
	//
	return nil
}

// Zero implementation for the ring.Zero capability: the all-zero matrix of
// the same shape.
func (m Dense[E]) Zero() Dense[E] {
	if len(m.data) == 0 {
		return m
	}
	//
	return Full(m.rows, m.cols, m.data[0].Zero())
}

// IsZero implementation for the ring.Zero capability.
func (m Dense[E]) IsZero() bool {
	for _, v := range m.data {
		if !v.IsZero() {
			return false
		}
	}
	//
	return true
}

// One implementation for the ring.One capability: the identity-on-diagonal
// matrix of the same shape.  Fails only when the element ring itself has no
// multiplicative identity.
func (m Dense[E]) One() (Dense[E], error) {
	if len(m.data) == 0 {
		return m, nil
	}
	//
	one, err := m.data[0].One()
	if err != nil {
		return Dense[E]{}, err
	}
	//
	return Eye(m.rows, m.cols, one), nil
}

// IsOne implementation for the ring.One capability.
func (m Dense[E]) IsOne() bool {
	for i := uint(0); i < m.rows; i++ {
		for j := uint(0); j < m.cols; j++ {
			v := m.data[i*m.cols+j]
			//
			if i == j && !v.IsOne() {
				return false
			} else if i != j && !v.IsZero() {
				return false
			}
		}
	}
	//
	return true
}

// Add x + y (entrywise, shapes must match).
func (m Dense[E]) Add(o Dense[E]) Dense[E] {
	m.checkShape(o, "add")
	//
	data := make([]E, len(m.data))
	for i := range data {
		data[i] = m.data[i].Add(o.data[i])
	}
	//
	return Dense[E]{m.rows, m.cols, data}
}

// Sub x - y (entrywise, shapes must match).
func (m Dense[E]) Sub(o Dense[E]) Dense[E] {
	m.checkShape(o, "subtract")
	//
	data := make([]E, len(m.data))
	for i := range data {
		data[i] = m.data[i].Sub(o.data[i])
	}
	//
	return Dense[E]{m.rows, m.cols, data}
}

// Neg -x (entrywise).
func (m Dense[E]) Neg() Dense[E] {
	data := make([]E, len(m.data))
	for i := range data {
		data[i] = m.data[i].Neg()
	}
	//
	return Dense[E]{m.rows, m.cols, data}
}

// Mul x * y by the standard triple-loop accumulation.  The inner dimensions
// must match; the result is rows(x)×cols(y).
func (m Dense[E]) Mul(o Dense[E]) Dense[E] {
	if m.cols != o.rows {
		panic(fmt.Sprintf("matrix: multiplying %dx%d by %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	//
	res := Dense[E]{m.rows, o.cols, make([]E, m.rows*o.cols)}
	//
	for i := uint(0); i < m.rows; i++ {
		for j := uint(0); j < o.cols; j++ {
			acc := m.zeroEntry()
			//
			for k := uint(0); k < m.cols; k++ {
				acc = acc.Add(m.data[i*m.cols+k].Mul(o.data[k*o.cols+j]))
			}
			//
			res.data[i*o.cols+j] = acc
		}
	}
	//
	return res
}

// Scale multiplies every entry by v (entry on the left).
func (m Dense[E]) Scale(v E) Dense[E] {
	data := make([]E, len(m.data))
	for i := range data {
		data[i] = m.data[i].Mul(v)
	}
	//
	return Dense[E]{m.rows, m.cols, data}
}

// MulInt implementation for the ring.Element interface: every entry scaled
// by a small integer.
func (m Dense[E]) MulInt(k int64) Dense[E] {
	data := make([]E, len(m.data))
	for i := range data {
		data[i] = m.data[i].MulInt(k)
	}
	//
	return Dense[E]{m.rows, m.cols, data}
}

// String implementation for the fmt.Stringer interface.
func (m Dense[E]) String() string {
	var buf strings.Builder
	//
	buf.WriteString("[")
	//
	for i := uint(0); i < m.rows; i++ {
		if i != 0 {
			buf.WriteString(", ")
		}
		//
		buf.WriteString("[")
		//
		for j := uint(0); j < m.cols; j++ {
			if j != 0 {
				buf.WriteString(", ")
			}
			//
			buf.WriteString(m.data[i*m.cols+j].String())
		}
		//
		buf.WriteString("]")
	}
	//
	buf.WriteString("]")
	//
	return buf.String()
}

// zeroEntry produces an additive identity of the element ring, preferring an
// existing entry as exemplar (degenerate shapes fall back to E's zero value).
func (m Dense[E]) zeroEntry() E {
	if len(m.data) > 0 {
		return m.data[0].Zero()
	}
	//
	var empty E
	//
	return empty.Zero()
}

// checkShape panics when two matrices of different shapes are combined
// entrywise.  This is a programmer error, not a recoverable condition.
func (m Dense[E]) checkShape(o Dense[E], op string) {
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("matrix: %s of %dx%d and %dx%d", op, m.rows, m.cols, o.rows, o.cols))
	}
}
