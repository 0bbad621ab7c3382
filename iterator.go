package intrusive

import "github.com/mgnsk/intrusive/internal/ring"

// Iterator is a position in a list, either an element or the end.
//
// Iterators compare equal with == when they denote the same position. An
// iterator of an element stays valid while the element is spliced between
// lists. Moving before Begin wraps to End without a bounds check.
type Iterator[T, Tag any] struct {
	pos *ring.Link
	off uintptr
}

// Next returns the following position.
func (it Iterator[T, Tag]) Next() Iterator[T, Tag] {
	return Iterator[T, Tag]{it.pos.Next(), it.off}
}

// Prev returns the preceding position.
func (it Iterator[T, Tag]) Prev() Iterator[T, Tag] {
	return Iterator[T, Tag]{it.pos.Prev(), it.off}
}

// Value returns the element at the position. it must not be the end.
func (it Iterator[T, Tag]) Value() *T {
	assert(it.isElem(), ErrEndIterator)
	return ring.ContainerOf[T](it.pos, it.off)
}

// isElem reports whether it denotes a linked element. The end position is
// the node of the list itself, which is never linked.
func (it Iterator[T, Tag]) isElem() bool {
	return it.pos != nil && nodeOf[Tag](it.pos).linked
}

// ReadOnly returns a read-only iterator at the same position.
func (it Iterator[T, Tag]) ReadOnly() ReadIterator[T, Tag] {
	return ReadIterator[T, Tag]{it}
}

// ReadIterator is an iterator that cannot be passed to list mutations.
// There is no conversion back to Iterator.
type ReadIterator[T, Tag any] struct {
	it Iterator[T, Tag]
}

// Next returns the following position.
func (r ReadIterator[T, Tag]) Next() ReadIterator[T, Tag] {
	return ReadIterator[T, Tag]{r.it.Next()}
}

// Prev returns the preceding position.
func (r ReadIterator[T, Tag]) Prev() ReadIterator[T, Tag] {
	return ReadIterator[T, Tag]{r.it.Prev()}
}

// Value returns the element at the position. r must not be the end.
func (r ReadIterator[T, Tag]) Value() *T {
	return r.it.Value()
}
