package frp

import (
	"testing"

	"github.com/flowkit/frp/internal"
	"github.com/stretchr/testify/assert"
)

// TestMergeSerializesExtraEmissions is S2: two streams derived from a
// common source x; after one firing of x, merge(s1, s2) fires exactly
// twice, each in its own transaction, in parent order s1 then s2.
func TestMergeSerializesExtraEmissions(t *testing.T) {
	x, fire, _ := newTestStream[int]()
	s1 := MapStream[int, int](x, func(v int) int { return v })
	s2 := MapStream[int, int](x, func(v int) int { return v * 10 })

	merged := Merge(s1, s2)

	var got []int
	merged.AddObserver(Observer[int]{OnNext: func(v int) { got = append(got, v) }})

	fire(1)

	assert.Equal(t, []int{1, 10}, got)
}

func TestMergeThreeWay(t *testing.T) {
	a, fireA, _ := newTestStream[string]()
	b, fireB, _ := newTestStream[string]()
	c, fireC, _ := newTestStream[string]()

	merged := Merge(a, b, c)

	var got []string
	merged.AddObserver(Observer[string]{OnNext: func(v string) { got = append(got, v) }})

	fireA("a1")
	fireB("b1")
	fireC("c1")

	assert.Equal(t, []string{"a1", "b1", "c1"}, got)
}

// TestMergeReentryGuard exercises the spec's literal (possibly redundant)
// "re-enqueue only if not already pending" guard directly against the
// internal queue, independent of engine-level draining (§9 open question).
func TestMergeReentryGuard(t *testing.T) {
	node := internal.NewNode(2, false)
	internal.Default.RunTransaction(func(tr *internal.Transaction) {
		assert.False(t, tr.InPending(node))
		tr.Enqueue(node)
		assert.True(t, tr.InPending(node))
		tr.Enqueue(node) // no-op, already pending
		assert.True(t, tr.InPending(node))
	})
}
