// Package skl implements a lock-free, multi-level-skip-list priority
// queue engine: a marked-pointer search core shared by a push protocol
// that publishes a node atomically at level 0 before opportunistically
// linking upper levels, and a pop protocol that marks a node for deletion
// top-down before claiming it at level 0.
//
// skl is the internal engine; pqueue is the package callers import.
package skl

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/benz9527/xlfskl/internal/xlog"
	"github.com/benz9527/xlfskl/internal/xmetrics"
	"github.com/benz9527/xlfskl/lib/infra"
)

// backoff spins the calling P for a few cycles before a CAS retry: short
// ProcYield bursts, then Gosched once the burst count gets large.
func backoff(attempt uint8) {
	if attempt <= 32 {
		for i := uint8(0); i < attempt; i++ {
			infra.ProcYield(20)
		}
		return
	}
	runtime.Gosched()
}

const cacheLinePad = unsafe.Sizeof(cpu.CacheLinePad{})

// paddedCounter isolates a hot atomic counter on its own cache line to
// avoid false sharing with neighboring fields.
type paddedCounter struct {
	_ [cacheLinePad]byte
	v atomic.Int64
	_ [cacheLinePad]byte
}

// Queue is the shared engine behind both public variants (key-only and
// key/value): V is instantiated to struct{} for the key-only surface. It is
// not copyable — copying a Queue by value would alias its head and gate
// without sharing the lock-free invariants a copy implicitly assumes;
// callers move it via Take.
type Queue[K infra.OrderedKey, V any] struct {
	head     *node[K, V]
	height   int32 // L+1
	maxLevel int32 // L
	kcmp     infra.OrderedKeyComparator[K]
	height_  HeightFunc

	size    paddedCounter
	idxSize atomic.Uint64

	maxSize  int64
	gateMu   sync.Mutex
	gateCond *sync.Cond
	closed   atomic.Bool

	log     xlog.Logger
	metrics *xmetrics.Recorder
}

// New constructs a Queue. With no options it is unbounded, has max level
// DefaultMaxLevel, compares K with infra.DefaultOrderedKeyComparator, draws
// heights with UniformHeight, and logs/records metrics nowhere.
func New[K infra.OrderedKey, V any](opts ...Option[K, V]) (*Queue[K, V], error) {
	q := &Queue[K, V]{
		maxLevel: DefaultMaxLevel,
		kcmp:     infra.DefaultOrderedKeyComparator[K](),
		height_:  UniformHeight,
		log:      xlog.Noop(),
	}
	for _, o := range opts {
		o(q)
	}
	if q.maxLevel < 1 || q.maxLevel > MaxSupportedLevel {
		return nil, infra.NewErrorStack(
			"[xlfskl] invalid max level %d, must be within [1,%d]", q.maxLevel, MaxSupportedLevel)
	}
	q.height = q.maxLevel + 1
	q.head = newSentinelHead[K, V](q.height)
	q.gateCond = sync.NewCond(&q.gateMu)
	return q, nil
}

// Push inserts priority/value and returns once the new node is published
// and fully linked. If the queue is bounded and full, it first blocks on
// the capacity gate (a sync.Cond wait) until a pop frees room or the
// queue is closed.
func (q *Queue[K, V]) Push(priority K, value V) {
	q.waitForCapacity()

	height := q.height_(q.maxLevel)
	if height < 1 {
		height = 1
	} else if height > q.height {
		height = q.height
	}
	n := newNode[K, V](priority, value, height)

	preds := make([]*node[K, V], q.height)
	succs := make([]*node[K, V], q.height)

	retries := 0
	for {
		q.findInsertPosition(priority, preds, succs)
		for l := int32(0); l < height; l++ {
			n.storeNext(l, succs[l])
		}
		if preds[0].casNext(0, succs[0], n) {
			break
		}
		retries++
		backoff(uint8(retries))
		q.log.Debug("push: level-0 publish CAS lost, restarting search")
	}

	for l := int32(1); l < height; l++ {
		for attempt := uint8(0); ; attempt++ {
			if preds[l].casNext(l, succs[l], n) {
				break
			}
			retries++
			backoff(attempt + 1)
			q.findInsertPosition(priority, preds, succs)
			n.storeNext(l, succs[l])
		}
	}

	n.setDoneInserting()
	q.metrics.SetSize(q.size.v.Add(1))
	q.idxSize.Add(uint64(height))
	q.metrics.ObservePush(retries)
	q.log.Debug("push complete")
}

// TryPop attempts to claim the current first live node. It returns
// false — indistinguishable between empty, contention loss, and a head
// node still mid-insert, by design: all three mean "retry".
func (q *Queue[K, V]) TryPop() (priority K, value V, ok bool) {
	first := q.findFirst()
	if first == nil {
		q.metrics.ObservePopMiss()
		return priority, value, false
	}
	if first.isInserting() {
		q.metrics.ObservePopMiss()
		return priority, value, false
	}

	for l := first.level - 1; l >= 1; l-- {
		first.setNextMark(l)
	}

	succ, marked := first.loadNextAndMark(0)
	if marked {
		q.metrics.ObservePopMiss()
		return priority, value, false
	}
	if !first.testAndSetMark(0, succ) {
		q.metrics.ObservePopMiss()
		return priority, value, false
	}

	priority, value = first.priority, first.value
	q.metrics.SetSize(q.size.v.Add(-1))
	q.idxSize.Add(^uint64(first.level - 1))
	q.metrics.ObservePopSuccess(0)
	q.signalCapacity()
	q.log.Debug("pop complete")
	return priority, value, true
}

// Size returns the approximate element count: accurate at quiescence,
// eventually consistent under concurrent activity, never negative.
func (q *Queue[K, V]) Size() int64 {
	return q.size.v.Load()
}

// Height returns the list's configured height, L+1.
func (q *Queue[K, V]) Height() int32 {
	return q.height
}

// IndexCount returns the approximate total number of forward links across
// all live nodes, a coarse measure of index density.
func (q *Queue[K, V]) IndexCount() uint64 {
	return q.idxSize.Load()
}

// Range calls fn for each priority/value reachable at level 0, in
// ascending priority order, skipping nodes that are marked-deleted or
// still mid-publish. This is not linearizable: it does not correspond to
// any single consistent snapshot of the queue.
func (q *Queue[K, V]) Range(fn func(priority K, value V) bool) {
	curr := q.head.loadNext(0)
	for curr != nil {
		next, marked := curr.loadNextAndMark(0)
		if !marked && !curr.isInserting() {
			if !fn(curr.priority, curr.value) {
				return
			}
		}
		curr = next
	}
}

// Close stops the capacity gate from blocking new pushes: any Push
// currently waiting for room, and any future one on a full queue, proceeds
// immediately instead of waiting. It does not drain or reclaim nodes —
// reclamation is GC-driven, so outstanding references from concurrent
// readers remain valid until they are done, same as before Close.
func (q *Queue[K, V]) Close() {
	if q.closed.CompareAndSwap(false, true) {
		q.gateMu.Lock()
		q.gateCond.Broadcast()
		q.gateMu.Unlock()
	}
}

// Take empties this queue into a freshly returned one and resets the
// receiver to a safe, empty state (fresh head, zero size) rather than
// leaving it with a dangling head pointer. It is the move-construction
// primitive pqueue's public wrappers expose; it is not safe to call
// concurrently with Push/TryPop on the same queue.
func (q *Queue[K, V]) Take() *Queue[K, V] {
	moved := &Queue[K, V]{
		head:     q.head,
		height:   q.height,
		maxLevel: q.maxLevel,
		kcmp:     q.kcmp,
		height_:  q.height_,
		maxSize:  q.maxSize,
		log:      q.log,
		metrics:  q.metrics,
	}
	moved.gateCond = sync.NewCond(&moved.gateMu)
	moved.size.v.Store(q.size.v.Load())
	moved.idxSize.Store(q.idxSize.Load())

	q.head = newSentinelHead[K, V](q.height)
	q.size.v.Store(0)
	q.idxSize.Store(0)
	return moved
}

func (q *Queue[K, V]) waitForCapacity() {
	if q.maxSize <= 0 {
		return
	}
	q.gateMu.Lock()
	for q.size.v.Load() >= q.maxSize && !q.closed.Load() {
		q.gateCond.Wait()
	}
	q.gateMu.Unlock()
}

func (q *Queue[K, V]) signalCapacity() {
	if q.maxSize <= 0 {
		return
	}
	q.gateMu.Lock()
	q.gateCond.Broadcast()
	q.gateMu.Unlock()
}
