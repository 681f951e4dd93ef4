// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "iter"

// Vector is a contiguous, dynamically-growable sequence of T.
// It owns exactly one [RawStorage] block plus a count of live elements:
// slots [0, Len()) hold live elements, slots [Len(), Cap()) hold zero
// values. The zero value is a ready-to-use empty vector of capacity 0.
//
// Vector is single-owner and performs no internal synchronization.
type Vector[T any] struct {
	data RawStorage[T]
	size int
}

// New returns an empty vector of capacity 0.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector holding n zero-valued elements with capacity
// exactly n. Panics on negative n.
func WithSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vec: negative size")
	}
	return &Vector[T]{data: NewRawStorage[T](n), size: n}
}

// Collect builds a vector from seq in encounter order.
// On a growth failure the partially-built vector is torn down and the
// error is returned.
func Collect[T any](seq iter.Seq[T]) (*Vector[T], error) {
	v := New[T]()
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Len returns the count of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the element capacity of the backing block.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. Panics unless 0 <= i < Len().
// The pointer is invalidated by any operation that grows or swaps storage.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.At(i)
}

// Front returns the address of the first element. Panics on an empty vector.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		panic("vec: Front on empty vector")
	}
	return v.data.At(0)
}

// Back returns the address of the last element. Panics on an empty vector.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		panic("vec: Back on empty vector")
	}
	return v.data.At(v.size - 1)
}

// All returns a forward iterator over index/element pairs.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values returns a forward iterator over elements.
// The vector must not be mutated during iteration.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// live returns the live prefix of the backing block.
func (v *Vector[T]) live() []T {
	return v.data.Off(0)[:v.size]
}

// Swap exchanges the contents of v and other in constant time with no
// element operations. Swap is also the move-assignment primitive: swapping
// with a fresh vector moves contents out infallibly.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Move transfers the contents of v into the returned vector, leaving v
// empty with capacity 0. No element is touched.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data.Move(), size: v.size}
	v.size = 0
	return out
}

// Clone returns an independent copy of v with capacity exactly Len().
// Cloner elements are copied via Clone; a Clone error unwinds the copy and
// leaves v untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{data: NewRawStorage[T](v.size)}
	n, err := copyRange(out.data.Off(0), v.live())
	if err != nil {
		destroyRange(out.data.Off(0)[:n])
		out.data.Release()
		return nil, err
	}
	out.size = v.size
	return out, nil
}

// Assign replaces the contents of v with a copy of src.
//
// When src does not fit in the current capacity the copy is built in full
// and swapped in, giving the strong guarantee. Otherwise elements are
// assigned over the overlapping prefix, trailing extras are copy-constructed
// or trailing excess destroyed; a Clone error mid-loop leaves the prefix
// updated and the rest untouched (weak guarantee).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		if err := assignSlot(v.data.At(i), src.data.At(i)); err != nil {
			return err
		}
	}
	for v.size < src.size {
		if err := copySlot(v.data.At(v.size), src.data.At(v.size)); err != nil {
			return err
		}
		v.size++
	}
	if v.size > src.size {
		destroyRange(v.live()[src.size:])
		v.size = src.size
	}
	return nil
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
	destroySlot(v.data.At(v.size))
}

// Clear destroys all live elements, keeping the backing block.
func (v *Vector[T]) Clear() {
	destroyRange(v.live())
	v.size = 0
}

// Release destroys all live elements and drops the backing block, returning
// v to the zero state. Use Release to run Disposer teardown deterministically
// when a vector goes out of use.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}
