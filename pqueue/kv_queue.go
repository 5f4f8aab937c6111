package pqueue

import (
	"github.com/benz9527/xlfskl/internal/xlog"
	"github.com/benz9527/xlfskl/internal/xmetrics"
	"github.com/benz9527/xlfskl/lib/infra"
	"github.com/benz9527/xlfskl/skl"
)

// KVQueue is a concurrent, lock-free priority queue carrying priorities
// paired with an opaque value. Values are never inspected by the
// algorithm.
type KVQueue[K infra.OrderedKey, V any] struct {
	core *skl.Queue[K, V]
}

// KVOption configures a KVQueue the same way Option configures a KeyQueue.
type KVOption[K infra.OrderedKey, V any] func(*kvQueueConfig[K, V])

type kvQueueConfig[K infra.OrderedKey, V any] struct {
	opts []skl.Option[K, V]
}

func WithKVMaxLevel[K infra.OrderedKey, V any](maxLevel int32) KVOption[K, V] {
	return func(c *kvQueueConfig[K, V]) {
		c.opts = append(c.opts, skl.WithMaxLevel[K, V](maxLevel))
	}
}

func WithKVCapacity[K infra.OrderedKey, V any](capacity int64) KVOption[K, V] {
	return func(c *kvQueueConfig[K, V]) {
		c.opts = append(c.opts, skl.WithCapacity[K, V](capacity))
	}
}

func WithKVComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) KVOption[K, V] {
	return func(c *kvQueueConfig[K, V]) {
		c.opts = append(c.opts, skl.WithComparator[K, V](cmp))
	}
}

func WithKVHeightFunc[K infra.OrderedKey, V any](fn skl.HeightFunc) KVOption[K, V] {
	return func(c *kvQueueConfig[K, V]) {
		c.opts = append(c.opts, skl.WithHeightFunc[K, V](fn))
	}
}

func WithKVLogger[K infra.OrderedKey, V any](log xlog.Logger) KVOption[K, V] {
	return func(c *kvQueueConfig[K, V]) {
		c.opts = append(c.opts, skl.WithLogger[K, V](log))
	}
}

func WithKVMetrics[K infra.OrderedKey, V any](rec *xmetrics.Recorder) KVOption[K, V] {
	return func(c *kvQueueConfig[K, V]) {
		c.opts = append(c.opts, skl.WithMetrics[K, V](rec))
	}
}

// NewKVQueue builds a KVQueue. With no options it is unbounded with the
// engine's defaults (see skl.New).
func NewKVQueue[K infra.OrderedKey, V any](opts ...KVOption[K, V]) (*KVQueue[K, V], error) {
	cfg := &kvQueueConfig[K, V]{}
	for _, o := range opts {
		o(cfg)
	}
	core, err := skl.New[K, V](cfg.opts...)
	if err != nil {
		return nil, err
	}
	return &KVQueue[K, V]{core: core}, nil
}

// Push admits (priority, value). It returns once the node is published and
// fully linked; if the queue is bounded and full it first blocks until
// there is room or the queue is closed.
func (q *KVQueue[K, V]) Push(priority K, value V) {
	q.core.Push(priority, value)
}

// TryPop claims the current least priority and its value. false means
// retry — it does not distinguish "empty" from "lost the claim race".
func (q *KVQueue[K, V]) TryPop() (priority K, value V, ok bool) {
	return q.core.TryPop()
}

// Size returns the approximate element count.
func (q *KVQueue[K, V]) Size() int64 { return q.core.Size() }

// Height returns the list's configured height, L+1.
func (q *KVQueue[K, V]) Height() int32 { return q.core.Height() }

// IndexCount returns the approximate total forward-link count across all
// live nodes.
func (q *KVQueue[K, V]) IndexCount() uint64 { return q.core.IndexCount() }

// Range calls fn for each (priority, value) reachable at level 0 in
// ascending priority order; not linearizable (see skl.Queue.Range).
func (q *KVQueue[K, V]) Range(fn func(priority K, value V) bool) {
	q.core.Range(fn)
}

// Close stops the capacity gate from blocking new pushes.
func (q *KVQueue[K, V]) Close() { q.core.Close() }

// Take empties this queue into a freshly returned one, resetting the
// receiver to a safe empty state. Not safe to call concurrently with other
// operations on the same queue.
func (q *KVQueue[K, V]) Take() *KVQueue[K, V] {
	return &KVQueue[K, V]{core: q.core.Take()}
}

// String renders a level-0 diagnostic dump; not linearizable.
func (q *KVQueue[K, V]) String() string { return q.core.String() }

// Dump renders a diagnostic dump, optionally across all levels; not
// linearizable.
func (q *KVQueue[K, V]) Dump(allLevels bool) string { return q.core.Dump(allLevels) }
