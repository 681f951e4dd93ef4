// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// RawStorage owns a block of memory sized for a fixed element capacity.
// It has no notion of which slots hold live elements: it allocates, releases,
// and transfers ownership of the block, nothing else. Element lifecycle is
// the owner's responsibility.
//
// Slots the owner does not currently use must be kept at the zero value so
// the block retains no references through dead slots.
//
// RawStorage is move-only. Copying the struct value aliases the block and
// must not be done; transfer ownership with [RawStorage.Swap] or
// [RawStorage.Move] instead. The zero value is an empty storage of
// capacity 0.
type RawStorage[T any] struct {
	buf []T
}

// NewRawStorage allocates storage for capacity elements.
// A capacity of 0 allocates nothing. Panics on negative capacity.
// Heap exhaustion aborts the program; allocation failure is not a locally
// recoverable condition.
func NewRawStorage[T any](capacity int) RawStorage[T] {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	if capacity == 0 {
		return RawStorage[T]{}
	}
	return RawStorage[T]{buf: make([]T, capacity)}
}

// Cap returns the element capacity of the block.
func (s *RawStorage[T]) Cap() int {
	return len(s.buf)
}

// At returns the address of slot i.
// Panics unless 0 <= i < Cap().
func (s *RawStorage[T]) At(i int) *T {
	if i < 0 || i >= len(s.buf) {
		panic("vec: storage index out of range")
	}
	return &s.buf[i]
}

// Off returns the block from offset i onward. An offset equal to Cap() is
// permitted and yields the empty tail, usable as a one-past-end boundary but
// never dereferenced. Panics unless 0 <= i <= Cap().
func (s *RawStorage[T]) Off(i int) []T {
	if i < 0 || i > len(s.buf) {
		panic("vec: storage offset out of range")
	}
	return s.buf[i:]
}

// Swap exchanges the blocks and capacities of s and other in constant time.
// No element is touched.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// Move transfers ownership of the block to the returned storage and resets
// s to capacity 0, leaving s inert.
func (s *RawStorage[T]) Move() RawStorage[T] {
	out := RawStorage[T]{buf: s.buf}
	s.buf = nil
	return out
}

// Release drops the block. Releasing an empty storage is a no-op.
// The memory itself is reclaimed by the runtime once unreferenced.
func (s *RawStorage[T]) Release() {
	s.buf = nil
}
