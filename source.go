package frp

import (
	"time"

	"github.com/flowkit/frp/internal"
)

// FromChannel wraps an existing Go channel as a source stream (§6 Source
// interface). Because receiving from a channel is inherently blocking, this
// source, like Interval, runs a background goroutine: onStart
// launches a receive loop that marshals every inbound value back onto the
// engine thread through its own transaction, exactly as §6 prescribes for
// any external producer. Closing ch stops the loop; it does not stop the
// stream node itself, which stops normally when its last observer detaches.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	node := internal.NewNode(1, false)

	var done chan struct{}

	node.OnStart = func() {
		done = make(chan struct{})
		go func() {
			for {
				select {
				case v, ok := <-ch:
					if !ok {
						return
					}
					val := v
					internal.Default.RunTransaction(func(t *internal.Transaction) {
						node.Fire(internal.Success(val), t)
					})
				case <-done:
					return
				}
			}
		}()
	}
	node.OnStop = func() {
		close(done)
	}

	return newStream[T](node)
}

// Interval emits an increasing counter, starting at 0, every d. It is the
// one legitimate use of time.Ticker in the engine: the ticker callback runs
// on a dedicated goroutine and every tick is marshaled onto the engine
// thread through its own transaction, matching the "external source"
// carve-out of §1/§6 (timer sources are not in scope as a concrete feature,
// but the contract they'd sit behind is).
func Interval(d time.Duration) *Stream[int] {
	node := internal.NewNode(1, false)

	var ticker *time.Ticker
	var done chan struct{}

	node.OnStart = func() {
		ticker = time.NewTicker(d)
		done = make(chan struct{})
		count := 0
		go func() {
			for {
				select {
				case <-ticker.C:
					n := count
					count++
					internal.Default.RunTransaction(func(t *internal.Transaction) {
						node.Fire(internal.Success(n), t)
					})
				case <-done:
					return
				}
			}
		}()
	}
	node.OnStop = func() {
		ticker.Stop()
		close(done)
	}

	return newStream[int](node)
}
