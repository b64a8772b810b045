// Package frp implements a glitch-free functional-reactive streams runtime:
// composable, lazy, push-based observables in two variants — discrete
// Stream[T] and continuous Signal[T] — propagated through a transaction
// engine that guarantees every derived observable sees a consistent
// snapshot of its inputs within one logical tick, even across
// diamond-shaped dependency graphs.
//
// Propagation is single-threaded and cooperative: at most one goroutine
// drains transactions at a time and the graph itself is never locked. The
// engine's only lock guards transaction admission, so that the background
// goroutines of FromChannel and Interval can submit transactions. Concrete
// transports (WebSocket, AJAX, timer
// sources beyond the two worked examples here) are external collaborators
// that implement the Source contract described in source.go; they are not
// part of this package.
package frp
