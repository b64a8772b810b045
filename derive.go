package frp

import "github.com/flowkit/frp/internal"

// newDerivedNode builds a single-parent node at parent.Rank+1 that applies
// transform to every value it receives from parent. transform returns the
// try-value to fire plus whether to fire at all (false lets filter-style
// operators skip an emission). Single-parent operators are always ready
// the instant their one parent fires (§4.8), but they still go through
// the transaction's rank-ordered queue like every other node — that
// uniform path is what lets a downstream combine/merge, however deep,
// rely on strict rank ordering regardless of how long each branch is.
func newDerivedNode(parent *internal.Node, isSignal bool, transform func(internal.Try) (internal.Try, bool)) *internal.Node {
	node := internal.NewNode(parent.Rank+1, isSignal)
	node.Parents = []*internal.Node{parent}

	var link *internal.ChildLink
	var pending internal.Try
	var hasPending bool

	receive := func(tv internal.Try, t *internal.Transaction) {
		pending = tv
		hasPending = true
		t.Enqueue(node)
	}

	node.OnStart = func() {
		link = parent.AddChild(node, receive)
		if isSignal {
			if cur, ok := parent.Now(); ok {
				if out, fire := transform(cur); fire {
					node.SetInitial(out)
				}
			}
		}
	}
	node.OnStop = func() {
		parent.RemoveChild(link)
	}
	node.SyncFire = func(t *internal.Transaction) {
		if !hasPending {
			return
		}
		tv := pending
		hasPending = false

		if out, fire := transform(tv); fire {
			node.Fire(out, t)
		}
	}

	return node
}

func newDerivedStream[T, U any](parent *internal.Node, transform func(internal.Try) (internal.Try, bool)) *Stream[U] {
	return newStream[U](newDerivedNode(parent, false, transform))
}

func newDerivedSignal[T, U any](parent *internal.Node, transform func(internal.Try) (internal.Try, bool)) *Signal[U] {
	return newSignal[U](newDerivedNode(parent, true, transform))
}
