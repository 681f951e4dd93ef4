// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vec provides a contiguous, dynamically-growable sequence container
// with explicit element lifecycle control in Go.
//
// The core type [Vector] is a generic dynamic array: amortized O(1) append,
// random-access indexing, positional insertion/removal, and value-semantics
// copy and move. What distinguishes it from a plain Go slice is its memory
// lifecycle discipline: backing storage is managed separately from the
// elements living in it, every growth operation commits by swapping in a
// fully-populated replacement block, and element copy, move, and teardown
// run through per-type lifecycle hooks so that fallible copies never leave
// the container half-built.
//
// # Design Philosophy
//
// vec provides:
//   - Separation of storage lifetime ([RawStorage]) from element lifetime ([Vector])
//   - A strong failure guarantee on every growth path via commit-by-swap
//   - Structural lifecycle hooks for per-type copy/move/teardown dispatch
//
// # Storage Layering
//
// [RawStorage] owns a block sized for a fixed element capacity and knows
// nothing about which slots are live. It allocates, releases, and transfers
// ownership of the block and does nothing else. [Vector] owns exactly one
// RawStorage plus a count of live elements, and is solely responsible for
// constructing and destroying elements inside it. Slots at index < Len()
// hold live elements; slots beyond hold zero values and no references.
//
// # Lifecycle Hooks
//
// Element types opt into non-trivial lifecycle behavior through structural
// interfaces, detected per type by assertion:
//
//   - [Cloner]: Clone() (T, error) — fallible deep copy
//   - [Mover]: Move() T — never-failing ownership transfer, resets the source
//   - [Disposer]: Dispose() — teardown hook, run once per destroyed element
//
// Types implementing none of these are trivial: they copy and move by
// assignment and need no teardown.
//
// # Relocation Strategy
//
// When growth relocates elements into a new block, the strategy is chosen
// per type: relocate by move when *T implements [Mover], or when T does not
// implement [Cloner] (plain assignment cannot fail); otherwise relocate by
// Clone, leaving the originals untouched until the new block is fully
// populated. A failed Clone unwinds the partially-populated new block and
// the container is exactly as it was before the call.
//
// # Commit-by-Swap
//
// Every growing mutation follows one structural rule: construct everything
// the new block needs first, and commit by a single non-failing
// [RawStorage.Swap] only after every construction step succeeded. The old
// contents are torn down after the swap. Failure before the swap discards
// the new block; the container never observes a partial growth.
//
// # Core Operations
//
// Construction:
//
//   - [New]: Empty vector (the zero value is equally usable)
//   - [WithSize]: n zero-valued elements
//   - [Collect]: Build from an iterator sequence
//   - [Vector.Clone]: Independent copy with exact capacity
//   - [Vector.Move]: Transfer contents, leaving the source empty
//
// Capacity management:
//
//   - [Vector.Reserve]: Grow capacity, relocating via commit-by-swap
//   - [Vector.Resize]: Grow with zero-valued elements or shrink with teardown
//   - [Vector.ShrinkToFit]: Reallocate to exact size
//
// Mutation:
//
//   - [Vector.PushBack], [Vector.EmplaceBack]: Append; doubling growth 0→1→2→4…
//   - [Vector.Insert], [Vector.Emplace]: Positional insertion
//   - [Vector.Erase]: Positional removal
//   - [Vector.PopBack]: Remove the last element (panics on empty)
//   - [Vector.Assign]: Copy assignment (copy-and-swap when capacity is exceeded)
//   - [Vector.Swap]: O(1) exchange; also the move-assignment primitive
//   - [Vector.Clear], [Vector.Release]: Tear down elements, keeping or
//     dropping the storage block
//
// Access and iteration:
//
//   - [Vector.At], [Vector.Front], [Vector.Back]: Panic-asserted element access
//   - [Vector.Len], [Vector.Cap]
//   - [Vector.All], [Vector.Values]: Forward iteration via iter.Seq
//
// # Failure Semantics
//
// Fallible operations return error. Errors produced by user [Cloner] Clone
// implementations or emplace constructors propagate unmodified; vec never
// retries, logs, or substitutes defaults. Precondition violations — index
// out of range, popping an empty vector, negative sizes — panic with a
// "vec: "-prefixed message. Growth paths give the strong guarantee; the
// in-place insert/erase shift paths assume user Move hooks do not fail and
// provide no rollback (see [Vector.Insert]).
//
// Any operation that grows or swaps storage invalidates all pointers
// previously obtained from At, Front, Back, EmplaceBack, Insert, or Emplace.
//
// # Pooling
//
// [Pool] recycles cleared vectors through a sync.Pool, retaining their
// capacity across uses. The pool is safe for concurrent Get/Put; each vector
// remains single-owner between Get and Put.
//
// # Concurrency
//
// Vector and RawStorage are single-owner, single-writer types with no
// internal synchronization. Sharing one across goroutines requires external
// synchronization.
//
// # Example
//
//	v := vec.New[int]()
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.PushBack(3)
//	_, _ = v.Insert(1, 99) // [1 99 2 3]
//	v.Erase(0)             // [99 2 3]
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
package vec
