package frp

import "github.com/flowkit/frp/internal"

// mergeStreams implements the merge protocol of §4.4: every parent
// emission is queued in a per-instance pending-parent queue, in parent-
// rank order; syncFire drains that queue in full, firing the first value
// in the current transaction and opening one follow-up transaction per
// extra value, so downstream observers still see at most one emission per
// node per transaction.
func mergeStreams[T any](streams ...*Stream[T]) *Stream[T] {
	maxRank := 0
	parents := make([]*internal.Node, len(streams))
	for i, s := range streams {
		parents[i] = s.node
		if s.node.Rank > maxRank {
			maxRank = s.node.Rank
		}
	}

	node := internal.NewNode(maxRank+1, false)
	node.Parents = parents

	links := make([]*internal.ChildLink, len(parents))
	var pending []internal.Try

	receive := func(tv internal.Try, t *internal.Transaction) {
		pending = append(pending, tv)
		// §4.4/§9: re-enqueue only if this node isn't already pending in
		// T. Transaction.Enqueue applies the identical guard internally;
		// this explicit check is the spec's literal (possibly redundant)
		// wording, kept as specified.
		if !t.InPending(node) {
			t.Enqueue(node)
		}
	}

	node.OnStart = func() {
		for i, p := range parents {
			links[i] = p.AddChild(node, receive)
		}
	}
	node.OnStop = func() {
		for i, p := range parents {
			p.RemoveChild(links[i])
		}
	}
	node.SyncFire = func(t *internal.Transaction) {
		items := pending
		pending = nil

		for i, tv := range items {
			if i == 0 {
				node.Fire(tv, t)
				continue
			}
			v := tv
			internal.Default.RunTransaction(func(t2 *internal.Transaction) {
				node.Fire(v, t2)
			})
		}
	}

	return newStream[T](node)
}
