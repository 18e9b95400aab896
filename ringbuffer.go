// Package ringbuffer provides a fixed-capacity generic ring buffer that
// overwrites the oldest element when full.
//
// A Buffer holds at most Cap elements in one slot array allocated at
// construction; no operation allocates afterwards. Elements keep their
// insertion (oldest-first) order under logical indexing, independent of where
// they physically live in the array. Pushing into a full buffer silently
// evicts the oldest element, which makes the type suitable for sliding
// windows and lookback buffers.
//
// The buffer performs no internal locking; callers sharing one across
// goroutines must serialize access themselves.
//
// Traversal is done with the bidirectional Iterator and ConstIterator types
// and the generic ReverseIterator adaptor. Iterators are small comparable
// values, so the classic pre/post increment distinction collapses into
// copy-then-step: tmp := it; it = it.Next().
package ringbuffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a checked index outside the buffer's capacity.
var ErrOutOfRange = errors.New("ringbuffer: index out of range")

// Buffer is a fixed-capacity ring that overwrites the oldest element when
// full. Zero value is not ready; use New.
//
// Logical index 0 is the oldest live element; index Len()-1 is the newest.
// The translation from logical index i to a physical slot is
// (oldest + i) mod Cap(), recomputed on every access.
type Buffer[T any] struct {
	slots  []T
	count  int // live elements, 0 <= count <= len(slots)
	newest int // physical slot of the most recent insert
	oldest int // physical slot of logical index 0
}

// New creates a buffer with the given capacity. The capacity is fixed for
// the buffer's lifetime. New panics when capacity < 1: a zero-capacity ring
// has no well-defined slot translation, so the configuration is rejected at
// construction rather than patched over.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("ringbuffer: capacity must be at least 1, got %d", capacity))
	}
	b := &Buffer[T]{slots: make([]T, capacity)}
	b.resetCursors()
	return b
}

// resetCursors puts both cursors at their initial offsets so the next
// PushBack lands in physical slot 0.
func (b *Buffer[T]) resetCursors() {
	b.oldest = 0
	b.newest = len(b.slots) - 1
}

// physical translates a logical index to a slot index. The result is
// normalized into [0, cap) so that out-of-contract indices degrade to a
// stale read instead of a bounds fault.
func (b *Buffer[T]) physical(i int) int {
	p := (b.oldest + i) % len(b.slots)
	if p < 0 {
		p += len(b.slots)
	}
	return p
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the capacity of the buffer.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool { return b.count == 0 }

// IsFull reports whether the buffer is at capacity.
func (b *Buffer[T]) IsFull() bool { return b.count == len(b.slots) }

// Get returns a pointer to the element at logical index i without any bounds
// check. The caller must guarantee 0 <= i < Len(); for any other index the
// returned pointer refers to a live-or-stale slot chosen by the wraparound
// translation, and what it holds is unspecified.
func (b *Buffer[T]) Get(i int) *T {
	return &b.slots[b.physical(i)]
}

// At returns a pointer to the element at logical index i, validating i
// against the capacity. A wrapped ErrOutOfRange carrying the index is
// returned for i < 0 or i >= Cap().
//
// Note the bound: indices in [Len(), Cap()) pass the check and read a slot
// that holds no live element. This mirrors the historical contract of the
// structure; use Get with a Len() check when staleness matters.
func (b *Buffer[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(b.slots) {
		return nil, fmt.Errorf("%w: index %d, capacity %d", ErrOutOfRange, i, len(b.slots))
	}
	return &b.slots[b.physical(i)], nil
}

// Front returns a pointer to the oldest live element. Calling Front on an
// empty buffer is a caller error; the result refers to unspecified storage.
func (b *Buffer[T]) Front() *T { return b.Begin().Item() }

// Back returns a pointer to the newest live element. Calling Back on an
// empty buffer is a caller error; the result refers to unspecified storage.
func (b *Buffer[T]) Back() *T { return b.End().Prev().Item() }

// PushBack appends v as the newest element. When the buffer is already full
// the oldest element is evicted to make room. PushBack never fails.
func (b *Buffer[T]) PushBack(v T) {
	b.advanceNewest()
	if b.count == len(b.slots)+1 {
		// Buffer was full before the insert: evict the oldest element.
		b.advanceOldest()
	}
	b.slots[b.newest] = v
}

// PopFront removes the oldest element by advancing the oldest cursor. It
// performs no emptiness check: calling it on an empty buffer drives Len()
// negative and leaves the buffer unusable. Callers must check IsEmpty first,
// or use Pop.
func (b *Buffer[T]) PopFront() {
	b.advanceOldest()
}

// Pop removes and returns the oldest element. ok=false when empty. The
// vacated slot is zeroed so reference types are not pinned.
func (b *Buffer[T]) Pop() (out T, ok bool) {
	if b.count == 0 {
		var z T
		return z, false
	}
	out = b.slots[b.oldest]
	var z T
	b.slots[b.oldest] = z
	b.advanceOldest()
	return out, true
}

// Peek returns the oldest element without removing it. ok=false when empty.
func (b *Buffer[T]) Peek() (T, bool) {
	if b.count == 0 {
		var z T
		return z, false
	}
	return b.slots[b.oldest], true
}

// Clear removes all elements and resets both cursors to their initial
// offsets. Slot storage is not zeroed, to keep it fast.
func (b *Buffer[T]) Clear() {
	b.count = 0
	b.resetCursors()
}

// Fill overwrites each of the current Len() live elements with v. Capacity
// slots beyond the live range are left untouched; Len() does not change.
func (b *Buffer[T]) Fill(v T) {
	for i := 0; i < b.count; i++ {
		b.slots[b.physical(i)] = v
	}
}

// ToSlice returns a copy of the live elements, oldest first.
func (b *Buffer[T]) ToSlice() []T {
	out := make([]T, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.slots[b.physical(i)]
	}
	return out
}

// ForEach applies fn to each live element in oldest-first order. i is the
// logical index.
func (b *Buffer[T]) ForEach(fn func(i int, x T)) {
	for i := 0; i < b.count; i++ {
		fn(i, b.slots[b.physical(i)])
	}
}

// advanceNewest moves the newest cursor one slot forward with wraparound and
// grows the live count.
func (b *Buffer[T]) advanceNewest() {
	b.newest++
	b.count++
	if b.newest == len(b.slots) {
		b.newest = 0
	}
}

// advanceOldest moves the oldest cursor one slot forward with wraparound and
// shrinks the live count.
func (b *Buffer[T]) advanceOldest() {
	b.oldest++
	b.count--
	if b.oldest == len(b.slots) {
		b.oldest = 0
	}
}
