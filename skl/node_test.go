package skl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode_StartsInserting(t *testing.T) {
	n := newNode[int, string](1, "a", 3)
	assert.True(t, n.isInserting())
	assert.Len(t, n.next, 3)

	n.setDoneInserting()
	assert.False(t, n.isInserting())
}

func TestNewSentinelHead_NeverInserting(t *testing.T) {
	h := newSentinelHead[int, string](4)
	assert.False(t, h.isInserting())
	assert.Len(t, h.next, 4)
}

func TestNode_CasNextAndSetNextMark(t *testing.T) {
	a := newNode[int, string](1, "a", 1)
	b := newNode[int, string](2, "b", 1)
	a.storeNext(0, nil)

	require.True(t, a.casNext(0, nil, b))
	assert.Same(t, b, a.loadNext(0))

	assert.False(t, a.casNext(0, nil, b), "stale expected successor must fail the CAS")

	a.setNextMark(0)
	_, marked := a.loadNextAndMark(0)
	assert.True(t, marked)
}

func TestNode_TestAndSetMarkIsExclusive(t *testing.T) {
	a := newNode[int, string](1, "a", 1)
	a.storeNext(0, nil)

	assert.True(t, a.testAndSetMark(0, nil))
	assert.False(t, a.testAndSetMark(0, nil))
}
