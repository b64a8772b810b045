package internal

import "sync"

// Engine is the process-wide (per the spec: per-host-thread) owner of the
// pending-transaction queue and the unhandled-error sink — the only shared
// state in the whole system (§5 Shared resources). The spec calls for one
// engine per host thread, initialized lazily; since the runtime is
// strictly single-threaded and cooperative (§5), a single package-level
// instance plays that role, rather than the teacher's per-goroutine lookup
// keyed by goid (see DESIGN.md for why that dependency was dropped).
//
// mu guards only the admission decision (is a transaction already
// running, and the pending-body queue) — never the graph itself. At most
// one goroutine is ever "the drainer" at a time; everyone else's body is
// appended to queue and gets run, later, on the drainer's own stack. This
// mirrors the teacher's Runtime.mu (internal/runtime.go), which unlocks
// around effect execution for exactly the same reason: external producers
// (here, FromChannel/Interval's background goroutines) may call
// RunTransaction concurrently with the drain loop itself.
type Engine struct {
	mu       sync.Mutex
	draining bool
	queue    []func(*Transaction)

	sink *ErrorSink
}

// NewEngine constructs an engine with a fresh unhandled-error sink.
func NewEngine() *Engine {
	return &Engine{sink: NewErrorSink()}
}

// Default is the package-wide engine instance backing the public API's
// package-level constructors (Stream, Signal, Var, ...).
var Default = NewEngine()

// Sink returns this engine's unhandled-error sink.
func (e *Engine) Sink() *ErrorSink { return e.sink }

// RunTransaction runs body as a new transaction. If a transaction is
// already running — on this goroutine (re-entrant Set from inside a
// callback) or any other (a concurrent external source) — body is queued
// and runs strictly after the current one (and every other already-queued
// one) fully drains. This is how source re-entrancy (§5) and merge's
// emission serialization (§4.4) both work.
func (e *Engine) RunTransaction(body func(t *Transaction)) {
	e.mu.Lock()
	if e.draining {
		e.queue = append(e.queue, body)
		e.mu.Unlock()
		return
	}
	e.draining = true
	e.mu.Unlock()

	e.drain(body)
}

func (e *Engine) drain(body func(*Transaction)) {
	for {
		t := &Transaction{engine: e, pending: newPriorityQueue()}

		body(t)

		t.pending.Drain(func(n *Node) {
			n.Flags.Clear(FlagInPending)
			// A node stopped by an earlier callback in this same transaction
			// (e.g. a sibling observer's Kill() dropped its last observer)
			// must not fire even though it was enqueued while still started —
			// invariant 5: zero live observers means the combinator never
			// runs.
			if n.SyncFire != nil && n.Flags.Has(FlagStarted) {
				n.SyncFire(t)
			}
		})

		e.mu.Lock()
		if len(e.queue) == 0 {
			e.draining = false
			e.mu.Unlock()
			return
		}
		body = e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()
	}
}
