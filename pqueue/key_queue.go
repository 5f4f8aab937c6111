// Package pqueue is the public surface over the lock-free skip-list engine
// in skl: a key-only KeyQueue and a key/value KVQueue, both generated from
// the same internal implementation.
package pqueue

import (
	"github.com/benz9527/xlfskl/internal/xlog"
	"github.com/benz9527/xlfskl/internal/xmetrics"
	"github.com/benz9527/xlfskl/lib/infra"
	"github.com/benz9527/xlfskl/skl"
)

// KeyQueue is a concurrent, lock-free priority queue carrying only
// priorities. Many producer and consumer goroutines may call Push/TryPop
// concurrently without external locking.
type KeyQueue[K infra.OrderedKey] struct {
	core *skl.Queue[K, struct{}]
}

// Option configures a KeyQueue the same way skl.Option configures the
// underlying engine.
type Option[K infra.OrderedKey] func(*keyQueueConfig[K])

type keyQueueConfig[K infra.OrderedKey] struct {
	opts []skl.Option[K, struct{}]
}

func WithMaxLevel[K infra.OrderedKey](maxLevel int32) Option[K] {
	return func(c *keyQueueConfig[K]) {
		c.opts = append(c.opts, skl.WithMaxLevel[K, struct{}](maxLevel))
	}
}

func WithCapacity[K infra.OrderedKey](capacity int64) Option[K] {
	return func(c *keyQueueConfig[K]) {
		c.opts = append(c.opts, skl.WithCapacity[K, struct{}](capacity))
	}
}

func WithComparator[K infra.OrderedKey](cmp infra.OrderedKeyComparator[K]) Option[K] {
	return func(c *keyQueueConfig[K]) {
		c.opts = append(c.opts, skl.WithComparator[K, struct{}](cmp))
	}
}

func WithHeightFunc[K infra.OrderedKey](fn skl.HeightFunc) Option[K] {
	return func(c *keyQueueConfig[K]) {
		c.opts = append(c.opts, skl.WithHeightFunc[K, struct{}](fn))
	}
}

func WithLogger[K infra.OrderedKey](log xlog.Logger) Option[K] {
	return func(c *keyQueueConfig[K]) {
		c.opts = append(c.opts, skl.WithLogger[K, struct{}](log))
	}
}

func WithMetrics[K infra.OrderedKey](rec *xmetrics.Recorder) Option[K] {
	return func(c *keyQueueConfig[K]) {
		c.opts = append(c.opts, skl.WithMetrics[K, struct{}](rec))
	}
}

// NewKeyQueue builds a KeyQueue. With no options it is unbounded with the
// engine's defaults (see skl.New).
func NewKeyQueue[K infra.OrderedKey](opts ...Option[K]) (*KeyQueue[K], error) {
	cfg := &keyQueueConfig[K]{}
	for _, o := range opts {
		o(cfg)
	}
	core, err := skl.New[K, struct{}](cfg.opts...)
	if err != nil {
		return nil, err
	}
	return &KeyQueue[K]{core: core}, nil
}

// Push admits priority. It returns once the node is published and fully
// linked; if the queue is bounded and full it first blocks until there is
// room or the queue is closed.
func (q *KeyQueue[K]) Push(priority K) {
	q.core.Push(priority, struct{}{})
}

// TryPop claims the current least priority. false means retry — it does
// not distinguish "empty" from "lost the claim race".
func (q *KeyQueue[K]) TryPop() (priority K, ok bool) {
	priority, _, ok = q.core.TryPop()
	return priority, ok
}

// Size returns the approximate element count.
func (q *KeyQueue[K]) Size() int64 { return q.core.Size() }

// Height returns the list's configured height, L+1.
func (q *KeyQueue[K]) Height() int32 { return q.core.Height() }

// IndexCount returns the approximate total forward-link count across all
// live nodes.
func (q *KeyQueue[K]) IndexCount() uint64 { return q.core.IndexCount() }

// Range calls fn for each priority reachable at level 0 in ascending
// order; not linearizable (see skl.Queue.Range).
func (q *KeyQueue[K]) Range(fn func(priority K) bool) {
	q.core.Range(func(p K, _ struct{}) bool { return fn(p) })
}

// Close stops the capacity gate from blocking new pushes.
func (q *KeyQueue[K]) Close() { q.core.Close() }

// Take empties this queue into a freshly returned one, resetting the
// receiver to a safe empty state. Not safe to call concurrently with other
// operations on the same queue.
func (q *KeyQueue[K]) Take() *KeyQueue[K] {
	return &KeyQueue[K]{core: q.core.Take()}
}

// String renders a level-0 diagnostic dump; not linearizable.
func (q *KeyQueue[K]) String() string { return q.core.String() }

// Dump renders a diagnostic dump, optionally across all levels; not
// linearizable.
func (q *KeyQueue[K]) Dump(allLevels bool) string { return q.core.Dump(allLevels) }
