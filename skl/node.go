package skl

import (
	"sync/atomic"

	"github.com/benz9527/xlfskl/lib/infra"
)

// node is one skip-list entry. priority and value are immutable after
// construction; only the forward links and the inserting flag ever
// mutate, and only through markedPtr's CAS surface.
type node[K infra.OrderedKey, V any] struct {
	priority  K
	value     V
	level     int32
	next      []markedPtr[K, V]
	inserting atomic.Bool
}

func newNode[K infra.OrderedKey, V any](priority K, value V, height int32) *node[K, V] {
	n := &node[K, V]{
		priority: priority,
		value:    value,
		level:    height,
		next:     make([]markedPtr[K, V], height),
	}
	n.inserting.Store(true)
	return n
}

// newSentinelHead builds the permanent head node: full height, a default
// priority never compared against (no search ever treats the head as a
// candidate), and inserting=false from birth so it is never mistaken for a
// node mid-publish.
func newSentinelHead[K infra.OrderedKey, V any](height int32) *node[K, V] {
	return &node[K, V]{
		level: height,
		next:  make([]markedPtr[K, V], height),
	}
}

func (n *node[K, V]) loadNext(l int32) *node[K, V] {
	next, _ := n.next[l].load()
	return next
}

func (n *node[K, V]) loadNextAndMark(l int32) (*node[K, V], bool) {
	return n.next[l].load()
}

// storeNext is the pre-publication plain store used only to populate a
// freshly allocated node's links before any other thread can reach it.
func (n *node[K, V]) storeNext(l int32, next *node[K, V]) {
	n.next[l].store(next, false)
}

func (n *node[K, V]) casNext(l int32, oldNext, newNext *node[K, V]) bool {
	return n.next[l].compareAndSwap(oldNext, false, newNext, false)
}

func (n *node[K, V]) setNextMark(l int32) {
	n.next[l].setMark()
}

func (n *node[K, V]) testAndSetMark(l int32, expectedNext *node[K, V]) bool {
	return n.next[l].testAndSetMark(expectedNext)
}

func (n *node[K, V]) setDoneInserting() {
	n.inserting.Store(false)
}

func (n *node[K, V]) isInserting() bool {
	return n.inserting.Load()
}
