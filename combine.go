package frp

import "github.com/flowkit/frp/internal"

// Combine2 combines two signals into a derived signal. Because signal
// parents always have a persisted current value, rank-ordered draining
// alone guarantees that by the time this node is dequeued every parent
// that could have fired in the current transaction already has — so it
// fires unconditionally on dequeue, using whatever value each parent last
// latched (possibly from an earlier transaction) for any parent silent
// this time (§4.5).
func Combine2[A, B, R any](a *Signal[A], b *Signal[B], fn func(A, B) R) *Signal[R] {
	rank := maxRank(a.node.Rank, b.node.Rank) + 1
	node := internal.NewNode(rank, true)
	node.Parents = []*internal.Node{a.node, b.node}

	var latest [2]internal.Try
	var linkA, linkB *internal.ChildLink

	combinator := func() internal.Try {
		if latest[0].IsFailure() {
			return latest[0]
		}
		if latest[1].IsFailure() {
			return latest[1]
		}
		av := as[A](latest[0].Value)
		bv := as[B](latest[1].Value)
		return safeApply("combine", func() any { return fn(av, bv) })
	}

	node.OnStart = func() {
		linkA = a.node.AddChild(node, func(tv internal.Try, t *internal.Transaction) {
			latest[0] = tv
			if !t.InPending(node) {
				t.Enqueue(node)
			}
		})
		linkB = b.node.AddChild(node, func(tv internal.Try, t *internal.Transaction) {
			latest[1] = tv
			if !t.InPending(node) {
				t.Enqueue(node)
			}
		})

		if cur, ok := a.node.Now(); ok {
			latest[0] = cur
		}
		if cur, ok := b.node.Now(); ok {
			latest[1] = cur
		}
		node.SetInitial(combinator())
	}
	node.OnStop = func() {
		a.node.RemoveChild(linkA)
		b.node.RemoveChild(linkB)
	}
	node.SyncFire = func(t *internal.Transaction) {
		node.Fire(combinator(), t)
	}

	return newSignal[R](node)
}

// CombineStream2 combines two streams into a derived stream. Streams carry
// no memory, so unlike Combine2 this node must wait for every parent to
// actually emit within the current transaction before it can produce a
// value — it tracks a per-transaction received bitset (§4.5's "received-
// this-txn bitset") and only enqueues itself once both parents have been
// seen, resetting the bitset each transaction.
func CombineStream2[A, B, R any](a *Stream[A], b *Stream[B], fn func(A, B) R) *Stream[R] {
	rank := maxRank(a.node.Rank, b.node.Rank) + 1
	node := internal.NewNode(rank, false)
	node.Parents = []*internal.Node{a.node, b.node}

	var latest [2]internal.Try
	var received [2]bool
	var lastTxn *internal.Transaction
	var linkA, linkB *internal.ChildLink

	reset := func() {
		received[0], received[1] = false, false
	}

	onParent := func(idx int) func(internal.Try, *internal.Transaction) {
		return func(tv internal.Try, t *internal.Transaction) {
			// The received bitset is per-transaction: a parent that fired
			// in an earlier transaction without completing the pair must
			// not count toward this one.
			if t != lastTxn {
				reset()
				lastTxn = t
			}
			latest[idx] = tv
			received[idx] = true
			if received[0] && received[1] && !t.InPending(node) {
				t.Enqueue(node)
			}
		}
	}

	node.OnStart = func() {
		reset()
		linkA = a.node.AddChild(node, onParent(0))
		linkB = b.node.AddChild(node, onParent(1))
	}
	node.OnStop = func() {
		a.node.RemoveChild(linkA)
		b.node.RemoveChild(linkB)
	}
	node.SyncFire = func(t *internal.Transaction) {
		if latest[0].IsFailure() {
			node.Fire(latest[0], t)
		} else if latest[1].IsFailure() {
			node.Fire(latest[1], t)
		} else {
			av := as[A](latest[0].Value)
			bv := as[B](latest[1].Value)
			node.Fire(safeApply("combineStream", func() any { return fn(av, bv) }), t)
		}
		reset()
	}

	return newStream[R](node)
}

func maxRank(a, b int) int {
	if a > b {
		return a
	}
	return b
}
