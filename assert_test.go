//go:build !intrusive_nodebug

package intrusive_test

import (
	"github.com/mgnsk/intrusive"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("precondition violations", func() {
	var (
		list  *itemList
		other *itemList
		items []*item
	)

	BeforeEach(func() {
		list = new(itemList)
		other = new(itemList)
		items = newItems(1, 2)
	})

	AfterEach(func() {
		list.Clear()
		other.Clear()
	})

	DescribeTable("on an empty list",
		func(f func(l *itemList)) {
			Expect(func() { f(list) }).To(PanicWith(MatchError(intrusive.ErrEmpty)))
		},
		Entry("front", func(l *itemList) { l.Front() }),
		Entry("back", func(l *itemList) { l.Back() }),
		Entry("pop front", func(l *itemList) { l.PopFront() }),
		Entry("pop back", func(l *itemList) { l.PopBack() }),
	)

	Specify("inserting a linked element", func() {
		list.PushBack(items[0])

		Expect(func() { list.PushBack(items[0]) }).To(PanicWith(MatchError(intrusive.ErrAlreadyLinked)))
		Expect(func() { other.PushFront(items[0]) }).To(PanicWith(MatchError(intrusive.ErrAlreadyLinked)))
		Expect(func() { list.Insert(list.End(), items[0]) }).To(PanicWith(MatchError(intrusive.ErrAlreadyLinked)))

		expectIntegrity(Expect, list, 1)
		expectIntegrity(Expect, other)
	})

	Specify("unlinking twice", func() {
		list.PushBack(items[0])
		items[0].Unlink()

		Expect(items[0].Unlink).To(PanicWith(MatchError(intrusive.ErrNotLinked)))
	})

	Specify("dereferencing the end", func() {
		pushBack(list, items...)

		Expect(func() { list.End().Value() }).To(PanicWith(MatchError(intrusive.ErrEndIterator)))
		Expect(func() { list.ReadEnd().Value() }).To(PanicWith(MatchError(intrusive.ErrEndIterator)))
		Expect(func() { list.Erase(list.End()) }).To(PanicWith(MatchError(intrusive.ErrEndIterator)))
	})

	Specify("lists linking through different nodes", func() {
		var byFirst intrusive.List[twoNodes, intrusive.Default]
		bySecond := intrusive.New(intrusive.WithNode(func(e *twoNodes) *intrusive.Node[intrusive.Default] {
			return &e.second
		}))

		x, y := &twoNodes{value: 1}, &twoNodes{value: 2}
		byFirst.PushBack(x)
		bySecond.PushBack(y)

		Expect(func() { byFirst.Splice(byFirst.End(), bySecond) }).To(PanicWith(MatchError(intrusive.ErrNodeMismatch)))
		Expect(func() {
			byFirst.SpliceCell(byFirst.End(), bySecond, bySecond.Begin())
		}).To(PanicWith(MatchError(intrusive.ErrNodeMismatch)))
		Expect(func() { bySecond.ExtractFront(&byFirst, 1) }).To(PanicWith(MatchError(intrusive.ErrNodeMismatch)))
		Expect(func() { byFirst.Erase(bySecond.Begin()) }).To(PanicWith(MatchError(intrusive.ErrNodeMismatch)))
		Expect(func() { byFirst.Insert(bySecond.End(), &twoNodes{}) }).To(PanicWith(MatchError(intrusive.ErrNodeMismatch)))

		Expect(byFirst.Len()).To(Equal(1))
		Expect(byFirst.Front()).To(BeIdenticalTo(x))
		Expect(bySecond.Len()).To(Equal(1))
		Expect(bySecond.Front()).To(BeIdenticalTo(y))
		Expect(y.first.IsLinked()).To(BeFalse())

		byFirst.Clear()
		bySecond.Clear()
	})

	Specify("erasing a position that is no longer linked", func() {
		pushBack(list, items...)
		it := list.Begin()
		list.PopFront()

		Expect(func() { list.Erase(it) }).To(PanicWith(MatchError(intrusive.ErrEndIterator)))
		expectIntegrity(Expect, list, 2)
	})

	Specify("iterator of an unlinked element", func() {
		Expect(func() { list.IteratorOf(items[0]) }).To(PanicWith(MatchError(intrusive.ErrNotLinked)))
	})
})
