package internal

// Transaction is one atomic propagation step: it owns a rank-ordered
// priority queue of observables whose inputs are ready, and a reference to
// the engine that created it (for opening follow-up transactions from
// inside a callback, §5 Re-entrancy).
type Transaction struct {
	engine  *Engine
	pending *priorityQueue
}

// Enqueue adds n to this transaction's pending set unless it's already
// present, guarding invariant 2 (at most once per transaction per node).
func (t *Transaction) Enqueue(n *Node) {
	if n.Flags.Has(FlagInPending) {
		return
	}
	n.Flags.Set(FlagInPending)
	t.pending.Insert(n)
}

// InPending reports whether n is already queued in this transaction —
// exposed so operators (merge) can apply the spec's literal "if not
// already in pendingObservables, add it" guard themselves, even though
// Enqueue applies the same guard internally (§9 open question: the source
// author flagged this double guard as possibly redundant; kept as
// specified).
func (t *Transaction) InPending(n *Node) bool {
	return n.Flags.Has(FlagInPending)
}
