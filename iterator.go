package ringbuffer

// Iterator is a mutable bidirectional cursor over a Buffer: a (store,
// logical position) pair with value semantics. Stepping and offset methods
// return an adjusted copy and never touch the buffer.
//
// Iterators are comparable; == holds exactly when both sides reference the
// same buffer and the same logical position. A position may sit outside
// [0, Len()] while being repositioned — such a cursor compares fine but must
// not be dereferenced. End() is the one-past-the-end sentinel: comparable,
// not dereferenceable.
//
// A structural mutation of the buffer (eviction, PopFront, Clear) changes
// which logical positions are live; cursors taken before the mutation must
// be re-derived, not dereferenced.
type Iterator[T any] struct {
	buf *Buffer[T]
	pos int
}

// Begin returns a mutable iterator at logical position 0 (the oldest
// element).
func (b *Buffer[T]) Begin() Iterator[T] { return Iterator[T]{buf: b, pos: 0} }

// End returns a mutable iterator at logical position Len(), one past the
// newest element.
func (b *Buffer[T]) End() Iterator[T] { return Iterator[T]{buf: b, pos: b.count} }

// Pos returns the iterator's logical position.
func (it Iterator[T]) Pos() int { return it.pos }

// Next returns a copy stepped one position forward.
func (it Iterator[T]) Next() Iterator[T] { it.pos++; return it }

// Prev returns a copy stepped one position backward.
func (it Iterator[T]) Prev() Iterator[T] { it.pos--; return it }

// Add returns a copy offset by n positions; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { it.pos += n; return it }

// Item returns a pointer to the element at the iterator's position via the
// buffer's unchecked accessor. The position must be in [0, Len()).
func (it Iterator[T]) Item() *T { return it.buf.Get(it.pos) }

// Value returns a copy of the element at the iterator's position.
func (it Iterator[T]) Value() T { return *it.Item() }

// Set overwrites the element at the iterator's position.
func (it Iterator[T]) Set(v T) { *it.Item() = v }

// Const narrows the iterator to its read-only counterpart at the same
// position. There is no widening conversion back.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{buf: it.buf, pos: it.pos} }

// ConstIterator is the read-only counterpart of Iterator: identical stepping,
// arithmetic, and comparison, but dereferencing yields a copy and nothing can
// be written through it.
type ConstIterator[T any] struct {
	buf *Buffer[T]
	pos int
}

// ConstBegin returns a read-only iterator at logical position 0.
func (b *Buffer[T]) ConstBegin() ConstIterator[T] { return ConstIterator[T]{buf: b, pos: 0} }

// ConstEnd returns a read-only iterator at logical position Len().
func (b *Buffer[T]) ConstEnd() ConstIterator[T] { return ConstIterator[T]{buf: b, pos: b.count} }

// Pos returns the iterator's logical position.
func (it ConstIterator[T]) Pos() int { return it.pos }

// Next returns a copy stepped one position forward.
func (it ConstIterator[T]) Next() ConstIterator[T] { it.pos++; return it }

// Prev returns a copy stepped one position backward.
func (it ConstIterator[T]) Prev() ConstIterator[T] { it.pos--; return it }

// Add returns a copy offset by n positions; n may be negative.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { it.pos += n; return it }

// Item returns a copy of the element at the iterator's position via the
// buffer's unchecked accessor. The position must be in [0, Len()).
func (it ConstIterator[T]) Item() T { return *it.buf.Get(it.pos) }
