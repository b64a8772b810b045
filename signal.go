package frp

import "github.com/flowkit/frp/internal"

// Signal is a continuous observable: it owns a current try-value, replays
// it synchronously to new observers, and latches errors as its current
// value until a later success recovers it (§3, §4.7).
type Signal[T any] struct {
	node *internal.Node
}

func newSignal[T any](node *internal.Node) *Signal[T] {
	return &Signal[T]{node: node}
}

// AddObserver attaches o. If the signal is already started it synchronously
// replays its current value before returning; otherwise starting it
// computes the initial value first, then replays that.
func (s *Signal[T]) AddObserver(o Observer[T]) *Subscription {
	sub := s.node.AddObserver(newSubscriptionID(), o.toInternal())
	return &Subscription{sub: sub}
}

// IsStarted reports whether this signal currently has at least one live
// observer, external or internal.
func (s *Signal[T]) IsStarted() bool { return s.node.IsStarted() }

// Now returns the signal's current try-value and whether one has ever
// been computed (a derived signal with no observers has never started,
// hence never computed an initial value — §3 Lifecycle).
func (s *Signal[T]) Now() (Try[T], bool) {
	tv, ok := s.node.Now()
	if !ok {
		return Try[T]{}, false
	}
	return tryFromInternal[T](tv), true
}

// Filter leaves the signal's value unchanged (a "hold") whenever pred
// fails, including at start: if the parent's initial value fails pred,
// this signal has no value until one finally passes.
func (s *Signal[T]) Filter(pred func(T) bool) *Signal[T] {
	return newDerivedSignal[T, T](s.node, func(tv internal.Try) (internal.Try, bool) {
		if tv.IsFailure() {
			return tv, true
		}
		v := as[T](tv.Value)
		out := safeApply("filter", func() any { return pred(v) })
		if out.IsFailure() {
			return out, true
		}
		if !as[bool](out.Value) {
			return internal.Try{}, false
		}
		return tv, true
	})
}

// Debug wraps s with identity passthrough plus lifecycle callbacks
// (§4.8 debug-lifecycle).
func (s *Signal[T]) Debug(opts DebugOptions[T]) *Signal[T] {
	return debugSignal(s, opts)
}

// MapSignal applies a pure function to every value a signal holds,
// including its initial one; a panicking fn becomes a latched
// CombinatorError (§4.8 map, §7 signal error latching).
func MapSignal[T, U any](s *Signal[T], fn func(T) U) *Signal[U] {
	return newDerivedSignal[T, U](s.node, func(tv internal.Try) (internal.Try, bool) {
		if tv.IsFailure() {
			return tv, true
		}
		v := as[T](tv.Value)
		return safeApply("map", func() any { return fn(v) }), true
	})
}
