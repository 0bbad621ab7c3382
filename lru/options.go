package lru

import "github.com/sirupsen/logrus"

// Available eviction policies.
const (
	// FIFO policy evicts records in insertion order.
	FIFO = "fifo"
	// LRU policy evicts the least recently read record first.
	LRU = "lru"
)

// Option is a cache configuration option.
type Option interface {
	apply(*cacheOptions)
}

type cacheOptions struct {
	policy   string
	capacity int
	logger   logrus.FieldLogger
}

func newDefaultCacheOptions() cacheOptions {
	return cacheOptions{
		policy:   FIFO,
		capacity: 0,
		logger:   logrus.StandardLogger(),
	}
}

// WithCapacity option configures the cache with specified capacity.
//
// The zero value configures unbounded capacity.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *cacheOptions) {
		if capacity < 0 {
			panic("lru: negative capacity")
		}
		opts.capacity = capacity
	})
}

// WithPolicy option configures the cache with specified eviction policy.
//
// The zero value configures the FIFO policy.
func WithPolicy(policy string) Option {
	return funcOption(func(opts *cacheOptions) {
		switch policy {
		case "":
			opts.policy = FIFO

		case FIFO, LRU:
			opts.policy = policy

		default:
			panic("lru: invalid eviction policy '" + policy + "'")
		}
	})
}

// WithLogger option configures the logger that evictions are reported to
// at debug level. A nil logger keeps the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *cacheOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

type funcOption func(*cacheOptions)

func (o funcOption) apply(opts *cacheOptions) {
	o(opts)
}
