package frp

import "github.com/flowkit/frp/internal"

// DebugOptions are the lifecycle hooks for the identity passthrough debug
// operator (§4.8). Any hook may be nil. A panicking hook is routed to the
// unhandled sink, never downstream — debug must never change what its
// observers see.
type DebugOptions[T any] struct {
	OnStart   func()
	OnStop    func()
	OnInitial func(Try[T])
	OnValue   func(Try[T])
}

func runDebugHook(name string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			internal.ReportUnhandled(&internal.UnhandledError{Node: "debug." + name, Cause: errFromAny(r)})
		}
	}()
	fn()
}

func errFromAny(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return &stringError{s: toString(r)}
}

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "panic"
}

func debugStream[T any](s *Stream[T], opts DebugOptions[T]) *Stream[T] {
	node := internal.NewNode(s.node.Rank+1, false)
	node.Parents = []*internal.Node{s.node}

	var link *internal.ChildLink
	var pending internal.Try
	var hasPending bool

	receive := func(tv internal.Try, t *internal.Transaction) {
		pending = tv
		hasPending = true
		t.Enqueue(node)
	}

	node.OnStart = func() {
		runDebugHook("onStart", opts.OnStart)
		link = s.node.AddChild(node, receive)
	}
	node.OnStop = func() {
		s.node.RemoveChild(link)
		runDebugHook("onStop", opts.OnStop)
	}
	node.SyncFire = func(t *internal.Transaction) {
		if !hasPending {
			return
		}
		tv := pending
		hasPending = false

		runDebugHook("onValue", func() {
			if opts.OnValue != nil {
				opts.OnValue(tryFromInternal[T](tv))
			}
		})
		node.Fire(tv, t)
	}

	return newStream[T](node)
}

func debugSignal[T any](s *Signal[T], opts DebugOptions[T]) *Signal[T] {
	node := internal.NewNode(s.node.Rank+1, true)
	node.Parents = []*internal.Node{s.node}

	var link *internal.ChildLink
	var pending internal.Try
	var hasPending bool

	receive := func(tv internal.Try, t *internal.Transaction) {
		pending = tv
		hasPending = true
		t.Enqueue(node)
	}

	node.OnStart = func() {
		runDebugHook("onStart", opts.OnStart)
		link = s.node.AddChild(node, receive)
		if cur, ok := s.node.Now(); ok {
			runDebugHook("onInitial", func() {
				if opts.OnInitial != nil {
					opts.OnInitial(tryFromInternal[T](cur))
				}
			})
			node.SetInitial(cur)
		}
	}
	node.OnStop = func() {
		s.node.RemoveChild(link)
		runDebugHook("onStop", opts.OnStop)
	}
	node.SyncFire = func(t *internal.Transaction) {
		if !hasPending {
			return
		}
		tv := pending
		hasPending = false

		runDebugHook("onValue", func() {
			if opts.OnValue != nil {
				opts.OnValue(tryFromInternal[T](tv))
			}
		})
		node.Fire(tv, t)
	}

	return newSignal[T](node)
}
