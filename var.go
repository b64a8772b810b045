package frp

import "github.com/flowkit/frp/internal"

// Var is a writable signal, the engine's source of truth primitive —
// the Var(1) used throughout spec.md's literal scenarios. It has no
// parents: its rank is the base rank (1), and it always has a value from
// construction on, independent of whether anyone observes it.
type Var[T any] struct {
	*Signal[T]
}

// NewVar constructs a writable signal holding initial.
func NewVar[T any](initial T) *Var[T] {
	node := internal.NewNode(1, true)
	node.SetInitial(internal.Success(initial))
	return &Var[T]{Signal: newSignal[T](node)}
}

// Set fires a new value within a fresh transaction on the default engine.
// If a transaction is already in progress (e.g. this Set happens inside
// another observer's callback), it is queued and runs strictly after the
// current one drains (§5 Re-entrancy, S6).
func (v *Var[T]) Set(value T) {
	internal.Default.RunTransaction(func(t *internal.Transaction) {
		v.node.Fire(internal.Success(value), t)
	})
}

// Fail latches an error as the Var's current value, recoverable by a
// later Set (§7, S5).
func (v *Var[T]) Fail(err error) {
	internal.Default.RunTransaction(func(t *internal.Transaction) {
		v.node.Fire(internal.Failure(err), t)
	})
}
