package ringbuffer

// Bidirectional is the capability a cursor needs to be reversed: step in
// both directions, dereference to an element access of type E, and compare
// for equality. Iterator[T] satisfies it with E = *T, ConstIterator[T] with
// E = T.
type Bidirectional[E, I any] interface {
	comparable
	Next() I
	Prev() I
	Item() E
}

// ReverseIterator adapts any Bidirectional cursor to traverse in the
// opposite direction. Advancing the reverse cursor steps the base cursor
// backward, and dereferencing reads the base at position minus one, so a
// reverse cursor wrapping End() refers to the last live element and one
// wrapping Begin() is the reverse end sentinel.
//
// The element access type is carried through: reversing a mutable iterator
// yields *T and supports in-place writes, reversing a read-only iterator
// yields copies. ReverseIterator is comparable whenever its base is.
type ReverseIterator[E any, I Bidirectional[E, I]] struct {
	base I
}

// Reversed wraps base in a ReverseIterator.
func Reversed[E any, I Bidirectional[E, I]](base I) ReverseIterator[E, I] {
	return ReverseIterator[E, I]{base: base}
}

// Next returns a copy advanced one position in reverse order.
func (r ReverseIterator[E, I]) Next() ReverseIterator[E, I] {
	r.base = r.base.Prev()
	return r
}

// Prev returns a copy stepped one position back in reverse order.
func (r ReverseIterator[E, I]) Prev() ReverseIterator[E, I] {
	r.base = r.base.Next()
	return r
}

// Item dereferences the element the reverse cursor refers to: the base
// cursor's position minus one.
func (r ReverseIterator[E, I]) Item() E {
	return r.base.Prev().Item()
}

// Base returns the underlying forward cursor.
func (r ReverseIterator[E, I]) Base() I { return r.base }

// RBegin returns a mutable reverse iterator at the newest element.
func (b *Buffer[T]) RBegin() ReverseIterator[*T, Iterator[T]] {
	return Reversed[*T](b.End())
}

// REnd returns the mutable reverse end sentinel, one before the oldest
// element.
func (b *Buffer[T]) REnd() ReverseIterator[*T, Iterator[T]] {
	return Reversed[*T](b.Begin())
}

// ConstRBegin returns a read-only reverse iterator at the newest element.
func (b *Buffer[T]) ConstRBegin() ReverseIterator[T, ConstIterator[T]] {
	return Reversed[T](b.ConstEnd())
}

// ConstREnd returns the read-only reverse end sentinel.
func (b *Buffer[T]) ConstREnd() ReverseIterator[T, ConstIterator[T]] {
	return Reversed[T](b.ConstBegin())
}
