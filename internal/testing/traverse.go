// Package testing contains helpers for list tests.
package testing

import (
	"iter"
	"slices"

	"github.com/mgnsk/intrusive"
)

// Traverse returns the values of l walking with iterators from Begin to End
// and from End back to Begin. The backward values are reversed so that both
// slices are equal for a well formed list.
func Traverse[T, Tag, V any](l *intrusive.List[T, Tag], value func(*T) V) (forward, backward []V) {
	forward = []V{}
	for it := l.Begin(); it != l.End(); it = it.Next() {
		forward = append(forward, value(it.Value()))
	}

	backward = []V{}
	for it := l.End(); it != l.Begin(); {
		it = it.Prev()
		backward = append(backward, value(it.Value()))
	}
	slices.Reverse(backward)

	return forward, backward
}

// Collect returns the values yielded by seq.
func Collect[T, V any](seq iter.Seq[*T], value func(*T) V) []V {
	values := []V{}
	for e := range seq {
		values = append(values, value(e))
	}
	return values
}
