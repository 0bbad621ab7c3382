package intrusive

import "errors"

// Precondition violations. They are raised as panics while assertions are
// compiled in and are never returned as values.
var (
	// ErrAlreadyLinked indicates an insert of an element that is in a list.
	ErrAlreadyLinked = errors.New("intrusive: element already linked")
	// ErrNotLinked indicates an unlink of an element that is in no list.
	ErrNotLinked = errors.New("intrusive: element not linked")
	// ErrEmpty indicates an access to the first or last element of an empty list.
	ErrEmpty = errors.New("intrusive: list is empty")
	// ErrEndIterator indicates a dereference or erase at the end position.
	ErrEndIterator = errors.New("intrusive: end iterator")
	// ErrNodeMismatch indicates lists or iterators that link the element
	// type through different nodes.
	ErrNodeMismatch = errors.New("intrusive: lists link elements through different nodes")
	// ErrNoNode indicates an element type without a node for the list tag.
	ErrNoNode = errors.New("intrusive: element has no node")
)

func assert(ok bool, err error) {
	if debug && !ok {
		panic(err)
	}
}
