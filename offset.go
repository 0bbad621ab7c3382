package intrusive

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/puzpuzpuz/xsync/v2"
)

type offsetKey struct {
	elem, node reflect.Type
}

// offsets caches the offset of a node type within an element type.
var offsets = xsync.NewTypedMapOf[offsetKey, uintptr](func(seed maphash.Seed, key offsetKey) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(key.elem.String())
	h.WriteString(key.node.String())
	return h.Sum64()
})

// nodeOffset returns the offset of the first Node[Tag] found in T.
// Fields of embedded and nested struct values are searched depth first;
// pointer fields are not followed. It panics with ErrNoNode when T has no
// such field.
func nodeOffset[T, Tag any]() uintptr {
	key := offsetKey{
		elem: reflect.TypeFor[T](),
		node: reflect.TypeFor[Node[Tag]](),
	}

	if off, ok := offsets.Load(key); ok {
		return off
	}

	off, ok := findField(key.elem, key.node)
	if !ok {
		panic(fmt.Errorf("%w: %s has no field of type %s", ErrNoNode, key.elem, key.node))
	}

	off, _ = offsets.LoadOrStore(key, off)

	return off
}

func findField(t, target reflect.Type) (uintptr, bool) {
	if t == target {
		return 0, true
	}

	if t.Kind() != reflect.Struct {
		return 0, false
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if off, ok := findField(f.Type, target); ok {
			return f.Offset + off, true
		}
	}

	return 0, false
}
