package skl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindInsertPosition_PredsSuccsBoundNewNode(t *testing.T) {
	q := newTestQueue(t, WithMaxLevel[int, string](3))
	q.Push(10, "")
	q.Push(30, "")

	preds := make([]*node[int, string], q.height)
	succs := make([]*node[int, string], q.height)
	q.findInsertPosition(20, preds, succs)

	assert.Equal(t, 10, preds[0].priority)
	assert.Equal(t, 30, succs[0].priority)
}

func TestFindFirst_SkipsMarkedNodes(t *testing.T) {
	q := newTestQueue(t)
	q.Push(1, "a")
	q.Push(2, "b")

	first := q.findFirst()
	require.NotNil(t, first)
	assert.Equal(t, 1, first.priority)

	first.setDoneInserting()
	require.True(t, first.testAndSetMark(0, first.loadNext(0)))

	second := q.findFirst()
	require.NotNil(t, second)
	assert.Equal(t, 2, second.priority)
}

func TestFindFirst_EmptyQueueReturnsNil(t *testing.T) {
	q := newTestQueue(t)
	assert.Nil(t, q.findFirst())
}

func TestLess_UsesConfiguredComparator(t *testing.T) {
	q := newTestQueue(t)
	assert.True(t, q.less(1, 2))
	assert.False(t, q.less(2, 1))
	assert.False(t, q.less(1, 1))
}
