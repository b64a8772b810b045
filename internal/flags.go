// Package internal holds the untyped propagation engine: the observable
// graph, the rank-ordered transaction scheduler, the lifecycle refcounting
// and the error channel. The public package wraps these nodes in generic
// Stream[T]/Signal[T] handles the way a typed facade wraps an interface{}
// core.
package internal

// Flags tracks per-node scheduling and lifecycle state.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagInPending marks a node as already queued in the current
	// transaction's pending set, guarding invariant 2 (at most once per
	// transaction).
	FlagInPending Flags = 1 << iota
	// FlagStarted marks a node whose observer count is >= 1.
	FlagStarted
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }
func (f *Flags) Set(flag Flags)     { *f |= flag }
func (f *Flags) Clear(flag Flags)   { *f &^= flag }
