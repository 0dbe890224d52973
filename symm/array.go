// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package symm

// Numeric is the set of element types the reduction datatype matrix covers
// (§3): the integer widths bitwise ops apply to, the floating widths,
// and the complex widths SUM/PROD apply to.
type Numeric interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Array is a symmetric, typed scratch object: target, source and pWrk for
// a reduction are all an *Array[T] over the same PE count and length.
type Array[T Numeric] struct {
	length int
	data   []T
}

// NewArray allocates a symmetric array of peCount rows of length elements
// each, zero-valued.
func NewArray[T Numeric](peCount, length int) *Array[T] {
	return &Array[T]{length: length, data: make([]T, peCount*length)}
}

// Local returns PE pe's row.
func (a *Array[T]) Local(pe int) []T {
	return a.data[pe*a.length : (pe+1)*a.length]
}

// Len returns the row length in elements.
func (a *Array[T]) Len() int {
	return a.length
}

// PE returns PE pe's row reinterpreted as bytes, for transport use.
// Implements [Symmetric].
func (a *Array[T]) PE(pe int) []byte {
	return AsBytes(a.Local(pe))
}

// Zero clears the first n elements of PE pe's row back to the zero value,
// re-establishing the pWrk-reset invariant (§8, property 3).
func (a *Array[T]) Zero(pe int, n int) {
	clear(a.Local(pe)[:n])
}
