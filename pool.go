// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "sync"

// Vector pools for hot paths that build and discard vectors repeatedly.
// Pooled vectors come back empty with their capacity retained, amortizing
// block allocations across uses. The pool itself is safe for concurrent
// Get/Put; each vector remains single-owner between Get and Put.

// Pool recycles cleared vectors through a sync.Pool.
type Pool[T any] struct {
	p sync.Pool
}

// NewPool returns a pool producing empty vectors on demand.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{p: sync.Pool{New: func() any { return New[T]() }}}
}

// Get returns an empty vector, reusing a pooled one when available.
// Reused vectors keep the capacity they grew to before Put.
func (p *Pool[T]) Get() *Vector[T] {
	return p.p.Get().(*Vector[T])
}

// Put clears v, running Disposer teardown on its elements, and returns it
// to the pool with capacity retained. v must not be used after Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	v.Clear()
	p.p.Put(v)
}
