package skl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkedPtr_LoadStoreRoundTrip(t *testing.T) {
	var p markedPtr[int, string]
	n := &node[int, string]{priority: 1}
	p.store(n, false)

	got, marked := p.load()
	assert.Same(t, n, got)
	assert.False(t, marked)
}

func TestMarkedPtr_CompareAndSwap(t *testing.T) {
	var p markedPtr[int, string]
	a := &node[int, string]{priority: 1}
	b := &node[int, string]{priority: 2}
	p.store(a, false)

	assert.False(t, p.compareAndSwap(b, false, b, false), "CAS must fail on a stale expected value")
	assert.True(t, p.compareAndSwap(a, false, b, false))

	got, marked := p.load()
	assert.Same(t, b, got)
	assert.False(t, marked)
}

func TestMarkedPtr_TestAndSetMark(t *testing.T) {
	var p markedPtr[int, string]
	a := &node[int, string]{priority: 1}
	p.store(a, false)

	assert.True(t, p.testAndSetMark(a))
	_, marked := p.load()
	assert.True(t, marked)

	assert.False(t, p.testAndSetMark(a), "a second claim of an already-marked slot must fail")
}

func TestMarkedPtr_SetMarkIsIdempotentAndPreservesSuccessor(t *testing.T) {
	var p markedPtr[int, string]
	a := &node[int, string]{priority: 1}
	p.store(a, false)

	p.setMark()
	p.setMark()

	next, marked := p.load()
	assert.True(t, marked)
	assert.Same(t, a, next)
}
