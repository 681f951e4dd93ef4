// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// PushBack appends x, taking ownership of the value. Amortized O(1): at
// capacity, x is placed at its final slot in the new block before the
// existing elements relocate around it, and a relocation failure leaves v
// untouched with x unconsumed by the container.
func (v *Vector[T]) PushBack(x T) error {
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](grownCap(v.size))
		*newData.At(v.size) = x
		if err := v.reallocAppend(&newData); err != nil {
			return err
		}
	} else {
		*v.data.At(v.size) = x
	}
	v.size++
	return nil
}

// EmplaceBack appends an element constructed by ctor, constructing directly
// into the destination block: at capacity the constructor runs before any
// relocation, so a constructor error discards the new block with the
// container unchanged. Returns the address of the new element.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](grownCap(v.size))
		x, err := ctor()
		if err != nil {
			newData.Release()
			return nil, err
		}
		*newData.At(v.size) = x
		if err := v.reallocAppend(&newData); err != nil {
			return nil, err
		}
	} else {
		x, err := ctor()
		if err != nil {
			return nil, err
		}
		*v.data.At(v.size) = x
	}
	v.size++
	return v.data.At(v.size - 1), nil
}

// Insert places x at position i, shifting [i, Len()) one slot rightward.
// Panics unless 0 <= i <= Len(); i == Len() appends. Returns the address of
// the inserted element.
//
// At capacity the growth path gives the strong guarantee: x is constructed
// at its final slot in the new block, the prefix and suffix relocate as two
// independently unwound phases, and only then does the swap commit. With
// spare capacity the element shifts in place; a user Move hook that fails
// mid-shift leaves a partially shifted range with no rollback.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](grownCap(v.size))
		*newData.At(i) = x
		if err := v.reallocAt(&newData, i); err != nil {
			return nil, err
		}
	} else {
		v.openAt(i, x)
	}
	v.size++
	return v.data.At(i), nil
}

// Emplace places an element constructed by ctor at position i; otherwise
// identical to [Vector.Insert]. With spare capacity the constructor runs
// before any shifting, so a constructor error leaves v untouched.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](grownCap(v.size))
		x, err := ctor()
		if err != nil {
			newData.Release()
			return nil, err
		}
		*newData.At(i) = x
		if err := v.reallocAt(&newData, i); err != nil {
			return nil, err
		}
	} else {
		x, err := ctor()
		if err != nil {
			return nil, err
		}
		v.openAt(i, x)
	}
	v.size++
	return v.data.At(i), nil
}

// openAt installs x at slot i using the spare trailing slot: the last
// element moves into the new trailing slot, [i, Len()-1) shifts one slot
// rightward back to front, and x lands in slot i.
func (v *Vector[T]) openAt(i int, x T) {
	if i == v.size {
		*v.data.At(i) = x
		return
	}
	moveSlot(v.data.At(v.size), v.data.At(v.size-1))
	for j := v.size - 1; j > i; j-- {
		moveSlot(v.data.At(j), v.data.At(j-1))
	}
	*v.data.At(i) = x
}

// Erase destroys the element at position i and shifts [i+1, Len()) one slot
// leftward by move assignment; the element formerly at i+1 ends up at i.
// Panics unless 0 <= i < Len(). Move hooks are assumed not to fail; no
// rollback is attempted.
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	destroySlot(v.data.At(i))
	for j := i + 1; j < v.size; j++ {
		moveSlot(v.data.At(j-1), v.data.At(j))
	}
	v.size--
}
