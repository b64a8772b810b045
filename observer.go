package frp

import (
	"github.com/flowkit/frp/internal"
	"github.com/google/uuid"
)

// Observer is the sink-side callback pair attached to an observable
// (§6 Sink interface). A nil OnError means failures from this observer
// contribute to the unhandled count and get reported to the global sink.
type Observer[T any] struct {
	OnNext  func(T)
	OnError func(error)
}

func (o Observer[T]) toInternal() internal.ExternalObserver {
	return internal.ExternalObserver{
		OnNext: func(v any) {
			if o.OnNext != nil {
				o.OnNext(as[T](v))
			}
		},
		OnError: o.OnError,
	}
}

// Subscription is the handle returned by AddObserver. Kill is idempotent
// and synchronous: a Kill() issued mid-notification still lets the
// observer's remaining callbacks in the current batch run, but it will not
// be notified again (§5 Cancellation).
type Subscription struct {
	sub *internal.Subscription
}

// ID returns the subscription's unique identifier — the same value that
// shows up as UnhandledError.SubscriptionID in the global sink (§7) when
// this subscription's OnError is nil and a failure reaches it, letting a
// host correlate a sink log line back to the subscription that caused it.
func (s *Subscription) ID() string { return s.sub.ID() }

// Kill removes the observer, stopping the node if this was its last one.
func (s *Subscription) Kill() { s.sub.Kill() }

func newSubscriptionID() string { return uuid.NewString() }
