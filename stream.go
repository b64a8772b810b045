package frp

import "github.com/flowkit/frp/internal"

// Stream is a discrete observable: no current value, no replay on
// subscribe, transient errors dropped if nobody is observing (§3).
type Stream[T any] struct {
	node *internal.Node
}

func newStream[T any](node *internal.Node) *Stream[T] {
	return &Stream[T]{node: node}
}

// AddObserver attaches o, starting the underlying node if it was dormant.
func (s *Stream[T]) AddObserver(o Observer[T]) *Subscription {
	sub := s.node.AddObserver(newSubscriptionID(), o.toInternal())
	return &Subscription{sub: sub}
}

// IsStarted reports whether this stream currently has at least one live
// observer, external or internal.
func (s *Stream[T]) IsStarted() bool { return s.node.IsStarted() }

// Filter drops values failing pred; a panicking predicate becomes an
// emitted CombinatorError (§4.8).
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	return newDerivedStream[T, T](s.node, func(tv internal.Try) (internal.Try, bool) {
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

// Debug wraps s with identity passthrough plus lifecycle callbacks. Any
// panic from a callback is routed to the unhandled sink, never downstream
// (§4.8 debug-lifecycle).
func (s *Stream[T]) Debug(opts DebugOptions[T]) *Stream[T] {
	return debugStream(s, opts)
}

// ScanStream folds s into a signal: seed is the initial accumulator,
// fn combines the running accumulator with each value. The resulting
// signal's current value is the accumulator (§4.8 scan).
func ScanStream[T, S any](s *Stream[T], seed S, fn func(S, T) S) *Signal[S] {
	acc := seed
	node := internal.NewNode(s.node.Rank+1, true)
	node.Parents = []*internal.Node{s.node}

	var link *internal.ChildLink
	var pendingInput internal.Try
	var hasPending bool

	receive := func(tv internal.Try, t *internal.Transaction) {
		pendingInput = tv
		hasPending = true
		t.Enqueue(node)
	}

	node.OnStart = func() {
		acc = seed
		link = s.node.AddChild(node, receive)
		node.SetInitial(internal.Success(acc))
	}
	node.OnStop = func() {
		s.node.RemoveChild(link)
	}
	node.SyncFire = func(t *internal.Transaction) {
		if !hasPending {
			return
		}
		tv := pendingInput
		hasPending = false

		if tv.IsFailure() {
			node.Fire(tv, t)
			return
		}

		v := as[T](tv.Value)
		out := safeApply("scan", func() any { return fn(acc, v) })
		if out.IsSuccess() {
			acc = as[S](out.Value)
		}
		node.Fire(out, t)
	}

	return newSignal[S](node)
}

// Merge emits the union of events from every parent stream, each in the
// order it arrives; co-firing parents arrive in ascending rank order, not
// in declaration order. If more than one parent co-fires within a single
// transaction, every emission past the first opens its own follow-up
// transaction, serializing the rest rather than dropping or batching them
// (§4.4).
func Merge[T any](streams ...*Stream[T]) *Stream[T] {
	return mergeStreams(streams...)
}

// WithLatestFrom samples sig's current value every time s fires, applying
// fn to the pair. Updates to sig never trigger an emission on their own —
// only s firing does (§4.6 sample-combine).
func WithLatestFrom[T, U, R any](s *Stream[T], sig *Signal[U], fn func(T, U) R) *Stream[R] {
	return sampleCombine[T, U, R](s, sig, fn)
}

// FilterMapStream applies fn to every value, keeping only the ones where
// fn reports ok — the combined map+filter "collect" operator (§4.8).
func FilterMapStream[T, U any](s *Stream[T], fn func(T) (U, bool)) *Stream[U] {
	return newDerivedStream[T, U](s.node, func(tv internal.Try) (internal.Try, bool) {
		if tv.IsFailure() {
			return tv, true
		}
		v := as[T](tv.Value)

		var out internal.Try
		var keep bool
		raw := safeApply("collect", func() any {
			u, ok := fn(v)
			keep = ok
			return u
		})
		if raw.IsFailure() {
			return raw, true
		}
		out = raw
		if !keep {
			return internal.Try{}, false
		}
		return out, true
	})
}

// MapStream applies a pure function to every value; a panicking fn becomes
// an emitted CombinatorError (§4.8 map).
func MapStream[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return newDerivedStream[T, U](s.node, func(tv internal.Try) (internal.Try, bool) {
		if tv.IsFailure() {
			return tv, true
		}
		v := as[T](tv.Value)
		return safeApply("map", func() any { return fn(v) }), true
	})
}
