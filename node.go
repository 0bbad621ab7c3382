package intrusive

import "github.com/mgnsk/intrusive/internal/ring"

// Node is the linkage embedded in an element type to make it linkable.
//
// Tag distinguishes independent memberships: an element with a
// Node[ByName] and a Node[ByAge] can be in two lists at once. The zero value
// is an unlinked node. A Node must not be copied after first use.
type Node[Tag any] struct {
	_      noCopy
	link   ring.Link
	linked bool
}

// nodeOf returns the node owning l. The link is at offset 0 of a Node.
func nodeOf[Tag any](l *ring.Link) *Node[Tag] {
	return ring.ContainerOf[Node[Tag]](l, 0)
}

// IsLinked reports whether the node is in a list.
func (n *Node[Tag]) IsLinked() bool {
	return n.linked
}

// Unlink removes the node from its list. The node must be linked.
func (n *Node[Tag]) Unlink() {
	n.check(n.linked, ErrNotLinked)
	n.unlink()
}

// Release ends the life of the node. Call it when the element that embeds
// the node is discarded, typically with defer.
//
// Under PolicyRecover a node that is still linked is reported and unlinked.
// Under PolicyUnchecked Release does nothing.
func (n *Node[Tag]) Release() {
	if !n.linked || policyOf[Tag]() == PolicyUnchecked {
		return
	}

	logger.WithField("tag", tagName[Tag]()).Warn("intrusive: releasing a linked node, unlinking")

	n.unlink()
}

func (n *Node[Tag]) linkBetween(prev, next *ring.Link) {
	n.check(!n.linked, ErrAlreadyLinked)
	n.link.LinkBetween(prev, next)
	n.linked = true
}

func (n *Node[Tag]) unlink() {
	n.link.Unlink()
	n.linked = false
}

func (n *Node[Tag]) check(ok bool, err error) {
	if policyOf[Tag]() != PolicyUnchecked {
		assert(ok, err)
	}
}

// Remove unlinks e from whichever list holds it. It is a no-op when e is
// not linked. The list itself is not needed.
//
// Remove uses the first Node[Tag] field of T, the one a list without
// WithNode links through. Elements of a WithNode list are removed with
// Unlink on the configured node.
func Remove[Tag, T any](e *T) {
	n := nodeIn[Tag](e, nodeOffset[T, Tag]())
	if n.linked {
		n.unlink()
	}
}

func nodeIn[Tag, T any](e *T, off uintptr) *Node[Tag] {
	return nodeOf[Tag](ring.LinkOf(e, off))
}

// noCopy may be embedded into structs which must not be copied after the
// first use. It is detected by go vet -copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
