package frp

import (
	"testing"

	"github.com/flowkit/frp/internal"
	"github.com/stretchr/testify/assert"
)

func TestCombine2Signals(t *testing.T) {
	a := NewVar(1)
	b := NewVar(10)

	sum := Combine2(a.Signal, b.Signal, func(x, y int) int { return x + y })

	var got []int
	sum.AddObserver(Observer[int]{OnNext: func(v int) { got = append(got, v) }})

	assert.Equal(t, []int{11}, got)

	a.Set(2)
	assert.Equal(t, []int{11, 12}, got)

	b.Set(20)
	assert.Equal(t, []int{11, 12, 22}, got)
}

// TestDiamondSettlesOnce is S1: a signal feeds two derived branches that
// recombine into a single Combine2 node. One update at the root fires the
// combine exactly once per transaction, never once per incoming edge.
func TestDiamondSettlesOnce(t *testing.T) {
	root := NewVar(1)
	left := MapSignal[int, int](root.Signal, func(x int) int { return x + 1 })
	right := MapSignal[int, int](root.Signal, func(x int) int { return x * 2 })
	sum := Combine2(left, right, func(l, r int) int { return l + r })

	var got []int
	sum.AddObserver(Observer[int]{OnNext: func(v int) { got = append(got, v) }})

	// initial: left=2, right=2, sum=4
	assert.Equal(t, []int{4}, got)

	root.Set(3)
	// left=4, right=6, sum=10 — exactly one emission for this transaction
	assert.Equal(t, []int{4, 10}, got)
}

func TestCombineStream2WaitsForBothParents(t *testing.T) {
	a, fireA, _ := newTestStream[int]()
	b, fireB, _ := newTestStream[int]()

	combined := CombineStream2(a, b, func(x, y int) int { return x + y })

	var got []int
	combined.AddObserver(Observer[int]{OnNext: func(v int) { got = append(got, v) }})

	fireA(1) // separate transaction, b silent this txn: no emission
	assert.Empty(t, got)

	fireB(2) // separate transaction again, a silent this txn: still no emission
	assert.Empty(t, got)

	fireBoth(t, a.node, b.node, 10, 20)
	assert.Equal(t, []int{30}, got)
}

// fireBoth fires both parent nodes within a single transaction, the only
// way CombineStream2 actually emits.
func fireBoth(t *testing.T, a, b *internal.Node, av, bv int) {
	t.Helper()
	internal.Default.RunTransaction(func(tr *internal.Transaction) {
		a.Fire(internal.Success(av), tr)
		b.Fire(internal.Success(bv), tr)
	})
}
