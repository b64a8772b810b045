package frp

import "github.com/flowkit/frp/internal"

// sampleCombine implements the sample-combine protocol of §4.6: the result
// only emits when the sampling stream fires, reading the sampled signal's
// current value synchronously at that moment rather than triggering off
// its emissions. Rank is max(rank(sampling), rank(sampled)) + 1, but only
// the sampling stream is wired as a firing edge — the sampled signal is
// read through Now() at trigger time, never through the value its own
// child link delivers, so its own emissions never by themselves trigger
// this node. The signal still needs a no-op child subscription so it (and
// transitively its own parents) gets started and keeps a live current
// value to read — a derived signal with no other observer would otherwise
// never start and Now() would report no value at all (§4.6: "sampled
// signals must be started... so their current values are live").
func sampleCombine[T, U, R any](s *Stream[T], sig *Signal[U], fn func(T, U) R) *Stream[R] {
	rank := maxRank(s.node.Rank, sig.node.Rank) + 1
	node := internal.NewNode(rank, false)
	node.Parents = []*internal.Node{s.node, sig.node}

	var link, sigLink *internal.ChildLink
	var pending internal.Try
	var hasPending bool

	receive := func(tv internal.Try, t *internal.Transaction) {
		pending = tv
		hasPending = true
		t.Enqueue(node)
	}

	node.OnStart = func() {
		link = s.node.AddChild(node, receive)
		sigLink = sig.node.AddChild(node, func(internal.Try, *internal.Transaction) {})
	}
	node.OnStop = func() {
		s.node.RemoveChild(link)
		sig.node.RemoveChild(sigLink)
	}
	node.SyncFire = func(t *internal.Transaction) {
		if !hasPending {
			return
		}
		tv := pending
		hasPending = false

		if tv.IsFailure() {
			node.Fire(tv, t)
			return
		}
		cur, ok := sig.node.Now()
		if !ok {
			// Sampled signal has never started/computed a value; nothing
			// to combine with yet, so this firing is silently dropped.
			return
		}
		if cur.IsFailure() {
			node.Fire(cur, t)
			return
		}
		tval := as[T](tv.Value)
		uval := as[U](cur.Value)
		node.Fire(safeApply("sample", func() any { return fn(tval, uval) }), t)
	}

	return newStream[R](node)
}
