package skl

import (
	"sync/atomic"

	"github.com/benz9527/xlfskl/lib/infra"
)

// link is the (successor, mark) pair a markedPtr swaps as a single unit.
// Every mutator replaces the whole box atomically via atomic.Pointer's
// identity-based compare-and-swap, so a reader can never observe a
// successor and a mark bit that were written by two different operations —
// the "single atomic word" requirement a real lock-free skip list depends
// on for linearizability.
type link[K infra.OrderedKey, V any] struct {
	next   *node[K, V]
	marked bool
}

// markedPtr is one forward pointer slot: a node's next[l]. It never exposes
// its internal *link box to callers — only (successor, mark) pairs and
// boolean CAS outcomes.
type markedPtr[K infra.OrderedKey, V any] struct {
	v atomic.Pointer[link[K, V]]
}

func (p *markedPtr[K, V]) load() (next *node[K, V], marked bool) {
	l := p.v.Load()
	if l == nil {
		return nil, false
	}
	return l.next, l.marked
}

// store is a plain, non-atomic-in-effect publish used only while a node's
// links are being populated before it is reachable from any other thread.
func (p *markedPtr[K, V]) store(next *node[K, V], marked bool) {
	p.v.Store(&link[K, V]{next: next, marked: marked})
}

// compareAndSwap installs (newNext, newMarked) iff the current pair is
// exactly (oldNext, oldMarked).
func (p *markedPtr[K, V]) compareAndSwap(oldNext *node[K, V], oldMarked bool, newNext *node[K, V], newMarked bool) bool {
	old := p.v.Load()
	var curNext *node[K, V]
	var curMarked bool
	if old != nil {
		curNext, curMarked = old.next, old.marked
	}
	if curNext != oldNext || curMarked != oldMarked {
		return false
	}
	return p.v.CompareAndSwap(old, &link[K, V]{next: newNext, marked: newMarked})
}

// testAndSetMark is the level-0 pop claim: CAS from (expectedNext, false)
// to (expectedNext, true). At most one caller ever wins this for a given
// node, which is what makes a successful TryPop's claim exclusive.
func (p *markedPtr[K, V]) testAndSetMark(expectedNext *node[K, V]) bool {
	return p.compareAndSwap(expectedNext, false, expectedNext, true)
}

// setMark unconditionally sets the mark bit, preserving whatever successor
// is currently installed. Used for upper-level marks during a pop, where
// more than one popper may race to mark the same node — harmlessly, since
// the mark is idempotent.
func (p *markedPtr[K, V]) setMark() {
	for {
		old := p.v.Load()
		var next *node[K, V]
		if old != nil {
			if old.marked {
				return
			}
			next = old.next
		}
		if p.v.CompareAndSwap(old, &link[K, V]{next: next, marked: true}) {
			return
		}
	}
}
