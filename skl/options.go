package skl

import (
	"github.com/benz9527/xlfskl/internal/xlog"
	"github.com/benz9527/xlfskl/internal/xmetrics"
	"github.com/benz9527/xlfskl/lib/infra"
)

// Option configures a Queue at construction time via the functional-options
// pattern.
type Option[K infra.OrderedKey, V any] func(*Queue[K, V])

// WithMaxLevel sets L, the compile-time maximum level (list height L+1).
// Invalid values are rejected by New, not by this option.
func WithMaxLevel[K infra.OrderedKey, V any](maxLevel int32) Option[K, V] {
	return func(q *Queue[K, V]) { q.maxLevel = maxLevel }
}

// WithCapacity bounds the queue: Push blocks while Size() >= capacity, until
// a pop frees room or the queue is closed.
// capacity <= 0 (the default) means unbounded.
func WithCapacity[K infra.OrderedKey, V any](capacity int64) Option[K, V] {
	return func(q *Queue[K, V]) { q.maxSize = capacity }
}

// WithComparator overrides the default `<`-based total order on K.
func WithComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) Option[K, V] {
	return func(q *Queue[K, V]) { q.kcmp = cmp }
}

// WithHeightFunc overrides the random-height source (UniformHeight by
// default). See RandomHeight for a geometric-distribution alternative.
func WithHeightFunc[K infra.OrderedKey, V any](fn HeightFunc) Option[K, V] {
	return func(q *Queue[K, V]) { q.height_ = fn }
}

// WithLogger attaches Debug logging to Push's level-0 publish CAS losses and
// to every completed push and successful pop. Upper-level link retries,
// capacity-gate waits and failed pops are not logged.
func WithLogger[K infra.OrderedKey, V any](log xlog.Logger) Option[K, V] {
	return func(q *Queue[K, V]) {
		if log != nil {
			q.log = log
		}
	}
}

// WithMetrics attaches a Prometheus recorder to every push/pop.
func WithMetrics[K infra.OrderedKey, V any](rec *xmetrics.Recorder) Option[K, V] {
	return func(q *Queue[K, V]) { q.metrics = rec }
}
