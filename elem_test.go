// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"errors"

	"code.hybscloud.com/vec"
)

// Shared element types exercising the lifecycle hooks.

var errCloneFailed = errors.New("clone failed")

// ledger records lifecycle events across the elements of one test.
type ledger struct {
	clones   int
	moves    int
	disposes int
	failAt   int // clone number (1-based) that fails; 0 means never
}

// elem is a fallible-copy element: Cloner + Disposer without Mover, so the
// container relocates it by Clone and copies can be made to fail on demand.
type elem struct {
	v   int
	led *ledger
}

func (e elem) Clone() (elem, error) {
	if e.led != nil {
		e.led.clones++
		if e.led.failAt != 0 && e.led.clones == e.led.failAt {
			return elem{}, errCloneFailed
		}
	}
	return elem{v: e.v, led: e.led}, nil
}

func (e *elem) Dispose() {
	if e.led != nil {
		e.led.disposes++
	}
}

// handle is a move-aware element: Mover + Disposer, so the container
// relocates it by Move and never copies it.
type handle struct {
	v   int
	led *ledger
}

func (h *handle) Move() handle {
	if h.led != nil {
		h.led.moves++
	}
	out := handle{v: h.v, led: h.led}
	*h = handle{}
	return out
}

func (h *handle) Dispose() {
	if h.led != nil {
		h.led.disposes++
	}
}

// dual implements both Cloner and Mover: the declared never-failing move
// must win over Clone in relocation.
type dual struct {
	v   int
	led *ledger
}

func (d dual) Clone() (dual, error) {
	if d.led != nil {
		d.led.clones++
	}
	return dual{v: d.v, led: d.led}, nil
}

func (d *dual) Move() dual {
	if d.led != nil {
		d.led.moves++
	}
	out := dual{v: d.v, led: d.led}
	*d = dual{}
	return out
}

// elems builds a vector of elem values sharing led, pre-reserving capacity
// so construction itself records no clones.
func elems(led *ledger, vals ...int) *vec.Vector[elem] {
	v := vec.New[elem]()
	if err := v.Reserve(len(vals)); err != nil {
		panic(err)
	}
	for _, x := range vals {
		if err := v.PushBack(elem{v: x, led: led}); err != nil {
			panic(err)
		}
	}
	return v
}

// ints builds a vector of plain ints.
func ints(vals ...int) *vec.Vector[int] {
	v := vec.New[int]()
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			panic(err)
		}
	}
	return v
}

// elemValues extracts the payloads of an elem vector.
func elemValues(v *vec.Vector[elem]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x.v)
	}
	return out
}

// intValues extracts the contents of an int vector.
func intValues(v *vec.Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

// mustPanic asserts that fn panics with the given message.
func mustPanic(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want %q", want)
		}
		if s, ok := r.(string); !ok || s != want {
			t.Fatalf("panic %v, want %q", r, want)
		}
	}()
	fn()
}
