package intrusive

import (
	"fmt"
	"reflect"

	"github.com/mgnsk/intrusive/internal/ring"
)

// Option is a list configuration option.
type Option[T, Tag any] interface {
	apply(*List[T, Tag])
}

// WithNode option configures the list to link elements through the node
// returned by node. The returned node must be a field of the element.
//
// Without this option the first Node[Tag] field of T is used.
func WithNode[T, Tag any](node func(*T) *Node[Tag]) Option[T, Tag] {
	return funcOption[T, Tag](func(l *List[T, Tag]) {
		elem := new(T)
		off := ring.OffsetOf(elem, &node(elem).link)

		size := reflect.TypeFor[T]().Size()
		if off >= size || off+reflect.TypeFor[Node[Tag]]().Size() > size {
			panic(fmt.Errorf("%w: node of %T is outside the element", ErrNoNode, elem))
		}

		l.off = off
		l.ready = true
	})
}

type funcOption[T, Tag any] func(*List[T, Tag])

func (o funcOption[T, Tag]) apply(l *List[T, Tag]) {
	o(l)
}
