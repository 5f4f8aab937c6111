package skl

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Dump produces a human-readable, non-linearizable snapshot of the list:
// a lock-free scan annotating any node whose level-0 link is marked. With
// allLevels it also prints, for each upper level, the chain currently
// reachable at that level; levels with no reachable node are left out.
// This is a debug aid, not part of the
// linearizable API surface.
func (q *Queue[K, V]) Dump(allLevels bool) string {
	var b strings.Builder

	b.WriteString(q.dumpLevel(0))
	if allLevels {
		for l := int32(1); l < q.height; l++ {
			line := q.dumpLevel(l)
			if line == "" {
				continue
			}
			b.WriteString(fmt.Sprintf("L%d: %s\n", l, line))
		}
	}
	return b.String()
}

func (q *Queue[K, V]) dumpLevel(l int32) string {
	var entries []string
	curr := q.head.loadNext(l)
	for curr != nil {
		next, marked := curr.loadNextAndMark(l)
		entries = append(entries, lo.Ternary(marked,
			fmt.Sprintf("%v(deleted)", curr.priority),
			fmt.Sprintf("%v", curr.priority)))
		curr = next
	}
	if l == 0 {
		return fmt.Sprintf("head -> %s -> nil\n", strings.Join(entries, " -> "))
	}
	return strings.Join(entries, " -> ")
}

// String implements fmt.Stringer as the level-0-only dump.
func (q *Queue[K, V]) String() string {
	return strings.TrimSuffix(q.Dump(false), "\n")
}
