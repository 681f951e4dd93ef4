// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// Growth and relocation machinery. Every growth path follows one structural
// rule: populate the new block completely, then commit with a single
// non-failing storage swap. Failure before the commit discards the new
// block and leaves the container exactly as it was.

// grownCap returns the next capacity for a vector of the given size:
// 0 grows to 1, everything else doubles.
func grownCap(size int) int {
	if size == 0 {
		return 1
	}
	return size * 2
}

// Reserve grows the capacity to at least n, relocating all live elements
// into a fresh block and committing by swap. A no-op when n <= Cap().
// Panics on negative n. On a relocation failure the new block is unwound
// and v is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		panic("vec: negative capacity")
	}
	if n <= v.data.Cap() {
		return nil
	}
	newData := NewRawStorage[T](n)
	return v.reallocate(&newData)
}

// Resize sets the element count to n. Growing exposes zero-valued elements
// (reserving capacity first); shrinking destroys the elements beyond n.
// Panics on negative n. Resizing to the current size does nothing.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative size")
	}
	switch {
	case n == v.size:
		return nil
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		// Slots [size, n) already hold zero values: the invariant keeps
		// dead slots zeroed, and the zero value is the default element.
		v.size = n
	default:
		destroyRange(v.live()[n:])
		v.size = n
	}
	return nil
}

// ShrinkToFit reallocates the backing block to capacity exactly Len(),
// through the same commit-by-swap relocation as Reserve. A no-op when the
// capacity already matches.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == v.data.Cap() {
		return nil
	}
	if v.size == 0 {
		v.data.Release()
		return nil
	}
	newData := NewRawStorage[T](v.size)
	return v.reallocate(&newData)
}

// reallocate relocates all live elements into newData and commits.
// newData must hold no pre-placed elements and have capacity >= Len().
func (v *Vector[T]) reallocate(newData *RawStorage[T]) error {
	n, err := relocate(newData.Off(0), v.live())
	if err != nil {
		destroyRange(newData.Off(0)[:n])
		newData.Release()
		return err
	}
	v.commit(newData)
	return nil
}

// reallocAppend relocates all live elements into newData around an element
// already constructed at slot Len(), then commits. Unwinds the pre-placed
// element and the populated prefix on failure.
func (v *Vector[T]) reallocAppend(newData *RawStorage[T]) error {
	n, err := relocate(newData.Off(0), v.live())
	if err != nil {
		destroyRange(newData.Off(0)[:n])
		destroySlot(newData.At(v.size))
		newData.Release()
		return err
	}
	v.commit(newData)
	return nil
}

// reallocAt relocates the prefix [0, pos) and suffix [pos, Len()) into
// newData around an element already constructed at slot pos, as two
// independently unwound phases, then commits.
func (v *Vector[T]) reallocAt(newData *RawStorage[T], pos int) error {
	dst := newData.Off(0)
	n, err := relocate(dst[:pos], v.live()[:pos])
	if err != nil {
		destroyRange(dst[:n])
		destroySlot(newData.At(pos))
		newData.Release()
		return err
	}
	n, err = relocate(dst[pos+1:], v.live()[pos:])
	if err != nil {
		destroyRange(dst[:pos+1])
		destroyRange(dst[pos+1:][:n])
		newData.Release()
		return err
	}
	v.commit(newData)
	return nil
}

// commit is the single non-failing commit point of every growth path:
// swap the fully-populated block in, then tear down the old contents.
// After a clone relocation the old elements still own their resources and
// are destroyed; after a move relocation ownership has already transferred
// and the old slots only need their references dropped.
func (v *Vector[T]) commit(newData *RawStorage[T]) {
	v.data.Swap(newData)
	old := newData.Off(0)[:v.size]
	if relocateByClone[T]() {
		destroyRange(old)
	} else {
		clear(old)
	}
	newData.Release()
}
