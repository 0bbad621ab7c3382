/*
Package intrusive implements an intrusive circular doubly linked list.

Elements embed a Node and the list links them through it, so pushing,
popping, erasing and splicing never allocate. The list owns only a sentinel
position; it never owns the elements:

	type Task struct {
		ID   int
		node intrusive.Node[intrusive.Default]
	}

	var queue intrusive.List[Task, intrusive.Default]

	t := &Task{ID: 1}
	defer t.node.Release()

	queue.PushBack(t)

Lists are not safe for concurrent use.
*/
package intrusive

import (
	"iter"

	"github.com/mgnsk/intrusive/internal/ring"
)

// List is an intrusive circular doubly linked list of T linked through
// their Node[Tag].
//
// The zero value is a ready to use empty list. A List must not be copied
// after first use.
type List[T, Tag any] struct {
	_ noCopy
	// root is the sentinel. It is never marked linked, which tells the end
	// position apart from elements.
	root  Node[Tag]
	off   uintptr
	ready bool
}

// New creates an empty list.
func New[T, Tag any](opts ...Option[T, Tag]) *List[T, Tag] {
	l := &List[T, Tag]{}
	for _, opt := range opts {
		opt.apply(l)
	}
	if l.ready {
		l.root.link.Init()
	} else {
		l.lazyInit()
	}
	return l
}

func (l *List[T, Tag]) lazyInit() {
	if !l.ready {
		l.root.link.Init()
		l.off = nodeOffset[T, Tag]()
		l.ready = true
	}
}

func (l *List[T, Tag]) node(e *T) *Node[Tag] {
	return nodeIn[Tag](e, l.off)
}

func (l *List[T, Tag]) elem(p *ring.Link) *T {
	return ring.ContainerOf[T](p, l.off)
}

func (l *List[T, Tag]) at(p *ring.Link) Iterator[T, Tag] {
	return Iterator[T, Tag]{p, l.off}
}

func (l *List[T, Tag]) sentinel() *ring.Link {
	return &l.root.link
}

// Empty reports whether the list has no elements.
func (l *List[T, Tag]) Empty() bool {
	return l.sentinel().Isolated()
}

// Len returns the number of elements in the list.
//
// NOTE: This is an O(n) operation.
func (l *List[T, Tag]) Len() (count int) {
	for p := l.sentinel().Next(); p != l.sentinel(); p = p.Next() {
		count++
	}
	return count
}

// Front returns the first element. The list must not be empty.
func (l *List[T, Tag]) Front() *T {
	assert(!l.Empty(), ErrEmpty)
	return l.elem(l.sentinel().Next())
}

// Back returns the last element. The list must not be empty.
func (l *List[T, Tag]) Back() *T {
	assert(!l.Empty(), ErrEmpty)
	return l.elem(l.sentinel().Prev())
}

// Begin returns the position of the first element, or End if the list is
// empty.
func (l *List[T, Tag]) Begin() Iterator[T, Tag] {
	l.lazyInit()
	return l.at(l.sentinel().Next())
}

// End returns the position past the last element.
func (l *List[T, Tag]) End() Iterator[T, Tag] {
	l.lazyInit()
	return l.at(l.sentinel())
}

// ReadBegin returns a read-only Begin.
func (l *List[T, Tag]) ReadBegin() ReadIterator[T, Tag] {
	return l.Begin().ReadOnly()
}

// ReadEnd returns a read-only End.
func (l *List[T, Tag]) ReadEnd() ReadIterator[T, Tag] {
	return l.End().ReadOnly()
}

// IteratorOf returns the position of e, which must be linked in l.
func (l *List[T, Tag]) IteratorOf(e *T) Iterator[T, Tag] {
	l.lazyInit()
	n := l.node(e)
	assert(n.linked, ErrNotLinked)
	return l.at(&n.link)
}

// All returns an iterator over the elements from front to back.
// The yielded element may be removed during the iteration.
func (l *List[T, Tag]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := l.sentinel().Next(); p != l.sentinel(); {
			next := p.Next()
			if !yield(l.elem(p)) {
				return
			}
			p = next
		}
	}
}

// Backward returns an iterator over the elements from back to front.
// The yielded element may be removed during the iteration.
func (l *List[T, Tag]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := l.sentinel().Prev(); p != l.sentinel(); {
			prev := p.Prev()
			if !yield(l.elem(p)) {
				return
			}
			p = prev
		}
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T, Tag]) Do(f func(e *T) bool) {
	for p := l.sentinel().Next(); p != l.sentinel(); p = p.Next() {
		if !f(l.elem(p)) {
			return
		}
	}
}

// PushBack inserts e at the back of the list. e must not be linked.
func (l *List[T, Tag]) PushBack(e *T) {
	l.lazyInit()
	l.node(e).linkBetween(l.sentinel().Prev(), l.sentinel())
}

// PushFront inserts e at the front of the list. e must not be linked.
func (l *List[T, Tag]) PushFront(e *T) {
	l.lazyInit()
	l.node(e).linkBetween(l.sentinel(), l.sentinel().Next())
}

// Insert inserts e before pos and returns the position of e.
// e must not be linked. pos may have been taken from another list before
// its element was spliced into l.
func (l *List[T, Tag]) Insert(pos Iterator[T, Tag], e *T) Iterator[T, Tag] {
	l.lazyInit()
	assert(pos.off == l.off, ErrNodeMismatch)
	n := l.node(e)
	n.linkBetween(pos.pos.Prev(), pos.pos)
	return l.at(&n.link)
}

// PopFront unlinks the first element. The list must not be empty.
func (l *List[T, Tag]) PopFront() {
	assert(!l.Empty(), ErrEmpty)
	nodeOf[Tag](l.sentinel().Next()).Unlink()
}

// PopBack unlinks the last element. The list must not be empty.
func (l *List[T, Tag]) PopBack() {
	assert(!l.Empty(), ErrEmpty)
	nodeOf[Tag](l.sentinel().Prev()).Unlink()
}

// TryPopFront unlinks and returns the first element.
// It returns false if the list is empty.
func (l *List[T, Tag]) TryPopFront() (*T, bool) {
	if l.Empty() {
		return nil, false
	}
	e := l.Front()
	l.PopFront()
	return e, true
}

// TryPopBack unlinks and returns the last element.
// It returns false if the list is empty.
func (l *List[T, Tag]) TryPopBack() (*T, bool) {
	if l.Empty() {
		return nil, false
	}
	e := l.Back()
	l.PopBack()
	return e, true
}

// Erase unlinks the element at pos and returns the position that followed
// it. pos must be an element position of a list with the same node.
func (l *List[T, Tag]) Erase(pos Iterator[T, Tag]) Iterator[T, Tag] {
	l.lazyInit()
	assert(pos.off == l.off, ErrNodeMismatch)
	assert(pos.isElem(), ErrEndIterator)
	next := pos.pos.Next()
	nodeOf[Tag](pos.pos).Unlink()
	return l.at(next)
}

// EraseRange unlinks the elements in [first, last) and returns last.
func (l *List[T, Tag]) EraseRange(first, last Iterator[T, Tag]) Iterator[T, Tag] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Clear unlinks all elements. The elements themselves are left intact.
func (l *List[T, Tag]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

// ExtractFront moves at most limit elements from the front of l to the back
// of dst and returns the number of elements moved. dst may be l, which
// rotates the list. A limit below one moves nothing.
//
// It runs in O(k) where k is the number of elements moved.
func (l *List[T, Tag]) ExtractFront(dst *List[T, Tag], limit int) int {
	l.lazyInit()
	dst.lazyInit()
	assert(dst.off == l.off, ErrNodeMismatch)

	count := 0
	split := l.sentinel().Next()
	for split != l.sentinel() && count < limit {
		split = split.Next()
		count++
	}

	if count > 0 {
		ring.Transfer(dst.sentinel(), l.sentinel().Next(), split)
	}

	return count
}

// Splice moves all elements of other before pos. Splicing a list into
// itself or splicing an empty list is a no-op.
func (l *List[T, Tag]) Splice(pos Iterator[T, Tag], other *List[T, Tag]) {
	if other == l || other.Empty() {
		return
	}
	l.SpliceRange(pos, other, other.Begin(), other.End())
}

// SpliceCell moves the element at elem of other before pos.
// other may be l.
func (l *List[T, Tag]) SpliceCell(pos Iterator[T, Tag], other *List[T, Tag], elem Iterator[T, Tag]) {
	if elem == other.End() {
		return
	}
	l.SpliceRange(pos, other, elem, elem.Next())
}

// SpliceRange moves the elements in [first, last) of other before pos,
// keeping their order. other may be l, in which case pos must not be inside
// (first, last). Both lists must link elements through the same node.
//
// It runs in O(1) regardless of the range length.
func (l *List[T, Tag]) SpliceRange(pos Iterator[T, Tag], other *List[T, Tag], first, last Iterator[T, Tag]) {
	l.lazyInit()
	other.lazyInit()
	assert(other.off == l.off, ErrNodeMismatch)
	assert(pos.off == l.off && first.off == l.off && last.off == l.off, ErrNodeMismatch)
	assert(first == last || first.pos != other.sentinel(), ErrEndIterator)
	ring.Transfer(pos.pos, first.pos, last.pos)
}
