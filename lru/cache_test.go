package lru_test

import (
	"sync"

	"github.com/mgnsk/intrusive/lru"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var _ = Describe("setting values", func() {
	var c *lru.Cache[string, string]

	BeforeEach(func() {
		c = lru.New[string, string]()
	})

	AfterEach(func() {
		c.Flush()
		Expect(c.Len()).To(BeZero())
	})

	When("value exists", func() {
		Specify("it is overwritten", func() {
			replaced := c.Set("key", "value")
			Expect(replaced).To(BeFalse())
			Expect(c.Len()).To(Equal(1))

			replaced = c.Set("key", "newValue")
			Expect(replaced).To(BeTrue())
			Expect(c.Len()).To(Equal(1))

			value, ok := c.Get("key")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("newValue"))
		})
	})

	When("value does not exist", func() {
		Specify("the zero value is returned", func() {
			value, ok := c.Get("key")
			Expect(ok).To(BeFalse())
			Expect(value).To(BeEmpty())
			Expect(c.Exists("key")).To(BeFalse())
		})
	})
})

var _ = Describe("evicting values", func() {
	var c *lru.Cache[int, int]

	BeforeEach(func() {
		c = lru.New[int, int]()
		for i := range 5 {
			c.Set(i, i*10)
		}
	})

	When("the key exists", func() {
		Specify("its value is returned", func() {
			value, ok := c.Evict(2)
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(20))
			Expect(keys(c)).To(Equal([]int{0, 1, 3, 4}))
		})
	})

	When("the key does not exist", func() {
		Specify("nothing is evicted", func() {
			_, ok := c.Evict(10)
			Expect(ok).To(BeFalse())
			Expect(c.Len()).To(Equal(5))
		})
	})

	When("the oldest records are evicted", func() {
		Specify("they are removed in insertion order", func() {
			Expect(c.EvictOldest(2)).To(Equal(2))
			Expect(keys(c)).To(Equal([]int{2, 3, 4}))
			Expect(c.Exists(0)).To(BeFalse())
			Expect(c.Exists(1)).To(BeFalse())

			Expect(c.EvictOldest(10)).To(Equal(3))
			Expect(c.Len()).To(BeZero())
			Expect(c.EvictOldest(1)).To(BeZero())
		})
	})

	When("the cache is flushed", func() {
		Specify("all records are evicted", func() {
			c.Flush()
			Expect(c.Len()).To(BeZero())
			Expect(keys(c)).To(BeEmpty())
		})
	})
})

var _ = Describe("eviction order", func() {
	DescribeTable(
		"capacity overflow",
		func(policy string, expected []int) {
			c := lru.New[int, int](lru.WithCapacity(3), lru.WithPolicy(policy))

			c.Set(0, 0)
			c.Set(1, 1)
			c.Set(2, 2)

			// Read the oldest record and replace the middle one.
			_, ok := c.Get(0)
			Expect(ok).To(BeTrue())
			Expect(c.Set(1, 10)).To(BeTrue())

			c.Set(3, 3)

			Expect(c.Len()).To(Equal(3))
			Expect(keys(c)).To(Equal(expected))
		},
		Entry("FIFO keeps insertion order", lru.FIFO, []int{1, 2, 3}),
		Entry("LRU moves read and replaced records to the back", lru.LRU, []int{0, 1, 3}),
	)

	Specify("an invalid policy panics", func() {
		Expect(func() {
			lru.New[int, int](lru.WithPolicy("lfu"))
		}).To(Panic())
	})
})

var _ = Describe("ranging over values", func() {
	var c *lru.Cache[int, int]

	BeforeEach(func() {
		c = lru.New[int, int]()
		for i := range 4 {
			c.Set(i, i)
		}
	})

	Specify("the iteration stops when f returns false", func() {
		var visited []int
		c.Range(func(key, _ int) bool {
			visited = append(visited, key)
			return key < 1
		})
		Expect(visited).To(Equal([]int{0, 1}))
	})

	Specify("f may modify the cache", func() {
		c.Range(func(key, _ int) bool {
			c.Evict(key)
			return true
		})
		Expect(c.Len()).To(BeZero())
	})
})

var _ = Describe("eviction logging", func() {
	Specify("capacity evictions are logged at debug level", func() {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		c := lru.New[string, int](lru.WithCapacity(1), lru.WithLogger(logger))
		c.Set("a", 1)
		c.Set("b", 2)

		Expect(hook.AllEntries()).To(HaveLen(1))
		Expect(hook.LastEntry().Level).To(Equal(logrus.DebugLevel))
		Expect(hook.LastEntry().Data).To(HaveKeyWithValue("key", "a"))
	})
})

var _ = Describe("concurrent access", func() {
	DescribeTable(
		"the capacity is never exceeded",
		func(policy string) {
			const capacity = 10

			c := lru.New[int, int](lru.WithCapacity(capacity), lru.WithPolicy(policy))

			var wg sync.WaitGroup
			for n := range 8 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					for i := range 100 {
						key := n*100 + i
						c.Set(key, i)
						c.Get(key - 1)
						if i%7 == 0 {
							c.Evict(key)
						}
						Expect(c.Len()).To(BeNumerically("<=", capacity))
					}
				}()
			}

			wait(&wg)

			Expect(c.Len()).To(BeNumerically("<=", capacity))
			Expect(keys(c)).To(HaveLen(c.Len()))
		},
		Entry("FIFO", lru.FIFO),
		Entry("LRU", lru.LRU),
	)
})
