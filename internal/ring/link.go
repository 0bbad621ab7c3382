// Package ring implements the raw linkage of an intrusive circular list.
//
// A Link knows nothing about lists or user data. It is the only place in the
// module that does pointer arithmetic.
package ring

import "unsafe"

// Link is a position in a circular doubly linked ring.
//
// The zero value is an isolated position.
type Link struct {
	next, prev *Link
}

// Init makes l a ring of one.
func (l *Link) Init() *Link {
	l.next = l
	l.prev = l
	return l
}

// Isolated reports whether l is not linked to any other position.
func (l *Link) Isolated() bool {
	return l.next == nil || l.next == l
}

// Next returns the position after l.
func (l *Link) Next() *Link {
	if l.next == nil {
		return l
	}
	return l.next
}

// Prev returns the position before l.
func (l *Link) Prev() *Link {
	if l.prev == nil {
		return l
	}
	return l.prev
}

// LinkBetween places l between prev and next, which must be adjacent.
// l must be isolated.
func (l *Link) LinkBetween(prev, next *Link) {
	l.prev = prev
	l.next = next
	prev.next = l
	next.prev = l
}

// Unlink joins the neighbours of l and isolates l.
func (l *Link) Unlink() {
	if l.next == nil {
		l.Init()
		return
	}
	l.prev.next = l.next
	l.next.prev = l.prev
	l.Init()
}

// Transfer moves the positions [first, last) in front of pos, keeping
// their order. The range may belong to the same ring as pos or to another
// one. pos must not be inside (first, last).
//
// Exactly six links are rewritten regardless of the range length.
func Transfer(pos, first, last *Link) {
	if first == last || pos == last || pos == first {
		return
	}

	tail := last.prev

	// Detach.
	first.prev.next = last
	last.prev = first.prev

	// Attach in front of pos.
	before := pos.prev
	before.next = first
	first.prev = before
	tail.next = pos
	pos.prev = tail
}

// ContainerOf returns the value of type C that embeds l at offset off.
func ContainerOf[C any](l *Link, off uintptr) *C {
	return (*C)(unsafe.Add(unsafe.Pointer(l), -int(off)))
}

// LinkOf returns the Link embedded at offset off of c.
func LinkOf[C any](c *C, off uintptr) *Link {
	return (*Link)(unsafe.Add(unsafe.Pointer(c), int(off)))
}

// OffsetOf returns the distance in bytes from c to l.
// l must be embedded in the value pointed to by c.
func OffsetOf[C any](c *C, l *Link) uintptr {
	return uintptr(unsafe.Pointer(l)) - uintptr(unsafe.Pointer(c))
}
