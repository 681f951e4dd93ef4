// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// Element lifecycle hooks.
// Hooks are structural interfaces detected per type by assertion on *T,
// so both value- and pointer-receiver implementations are found. Detection
// is a type-level property: it never depends on the element value.
//
// Types owning resources should implement Cloner and Disposer together;
// plain assignment of a Disposer-only type aliases the resource and the
// aliasing semantics are the element type's own contract.

// Cloner is the fallible copy hook. A type implementing Cloner is copied by
// Clone wherever the container duplicates elements: Vector.Clone,
// Vector.Assign, and every relocation that must preserve its sources.
// A Clone error propagates to the caller unmodified.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is the never-failing ownership-transfer hook. Move returns the
// transferred value and must reset the receiver to an inert state that is
// safe to discard. Implementing Mover on *T declares that transfer cannot
// fail, which lets relocation move elements instead of cloning them.
type Mover[T any] interface {
	Move() T
}

// Disposer is the teardown hook, run exactly once per logically destroyed
// element. Dispose must not fail; element destruction is infallible.
type Disposer interface {
	Dispose()
}

// movable reports whether *T implements Mover[T].
func movable[T any]() bool {
	var zero T
	_, ok := any(&zero).(Mover[T])
	return ok
}

// cloneable reports whether T implements Cloner[T].
func cloneable[T any]() bool {
	var zero T
	_, ok := any(&zero).(Cloner[T])
	return ok
}

// disposable reports whether T implements Disposer.
func disposable[T any]() bool {
	var zero T
	_, ok := any(&zero).(Disposer)
	return ok
}

// relocateByClone reports whether relocation must preserve its sources:
// T has a fallible copy and no declared never-failing move. Every other
// type relocates by move — Mover types explicitly, plain types by
// assignment, which cannot fail.
func relocateByClone[T any]() bool {
	return cloneable[T]() && !movable[T]()
}

// copyRange copies src into dst slot by slot, via Clone for Cloner types
// and by assignment otherwise. Returns the count of slots populated before
// the first Clone error; the populated prefix is the caller's to unwind.
func copyRange[T any](dst, src []T) (int, error) {
	if cloneable[T]() {
		for i := range src {
			c, err := any(&src[i]).(Cloner[T]).Clone()
			if err != nil {
				return i, err
			}
			dst[i] = c
		}
		return len(src), nil
	}
	copy(dst, src)
	return len(src), nil
}

// relocate transfers src into dst using the per-type relocation strategy:
// Clone when sources must stay intact until commit, move otherwise.
// The move arms cannot fail; only the Clone arm can return an error.
func relocate[T any](dst, src []T) (int, error) {
	if relocateByClone[T]() {
		return copyRange(dst, src)
	}
	if movable[T]() {
		for i := range src {
			dst[i] = any(&src[i]).(Mover[T]).Move()
		}
	} else {
		copy(dst, src)
	}
	return len(src), nil
}

// moveSlot transfers the element in src into dst and leaves src zeroed.
func moveSlot[T any](dst, src *T) {
	if m, ok := any(src).(Mover[T]); ok {
		*dst = m.Move()
	} else {
		*dst = *src
	}
	var zero T
	*src = zero
}

// copySlot constructs a copy of src in dst, via Clone for Cloner types.
// dst must not hold a live element.
func copySlot[T any](dst, src *T) error {
	if c, ok := any(src).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = *src
	return nil
}

// assignSlot overwrites the live element in dst with a copy of src.
// The copy is built first so a Clone error leaves dst untouched.
func assignSlot[T any](dst, src *T) error {
	if c, ok := any(src).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return err
		}
		destroySlot(dst)
		*dst = v
		return nil
	}
	*dst = *src
	return nil
}

// destroySlot tears down the live element in p: Dispose if implemented,
// then zero the slot so it retains no references.
func destroySlot[T any](p *T) {
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
	}
	var zero T
	*p = zero
}

// destroyRange tears down every live element in s. Teardown order is
// unspecified.
func destroyRange[T any](s []T) {
	if disposable[T]() {
		for i := range s {
			any(&s[i]).(Disposer).Dispose()
		}
	}
	clear(s)
}
