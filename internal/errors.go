package internal

import "github.com/golang/glog"

// CombinatorError wraps a panic/error raised by a pure combinator (map,
// filter, scan, combine) applying user code.
type CombinatorError struct {
	Op    string
	Cause error
}

func (e *CombinatorError) Error() string { return "frp: " + e.Op + ": " + e.Cause.Error() }
func (e *CombinatorError) Unwrap() error { return e.Cause }

// SourceError wraps a failure signaled by an external source (socket
// closed, timer error, ...).
type SourceError struct {
	Source string
	Cause  error
}

func (e *SourceError) Error() string { return "frp: source " + e.Source + ": " + e.Cause.Error() }
func (e *SourceError) Unwrap() error { return e.Cause }

// UnhandledError wraps a failure that reached the global sink: either a
// stream or signal failure delivered to an observer with no OnError
// handler, or an error raised from a
// lifecycle callback (start/stop/initial/debug), which never propagates
// downstream (§7). SubscriptionID identifies which subscription's missing
// OnError handler let the failure reach the sink, letting a log line
// attribute the error to a specific caller instead of just a node name;
// it is empty for lifecycle-callback errors, which aren't tied to any one
// subscription.
type UnhandledError struct {
	Node           string
	SubscriptionID string
	Cause          error
}

func (e *UnhandledError) Error() string {
	switch {
	case e.Node != "" && e.SubscriptionID != "":
		return "frp: unhandled in " + e.Node + " (subscription " + e.SubscriptionID + "): " + e.Cause.Error()
	case e.Node != "":
		return "frp: unhandled in " + e.Node + ": " + e.Cause.Error()
	case e.SubscriptionID != "":
		return "frp: unhandled (subscription " + e.SubscriptionID + "): " + e.Cause.Error()
	default:
		return "frp: unhandled: " + e.Cause.Error()
	}
}
func (e *UnhandledError) Unwrap() error { return e.Cause }

// ErrorSink is a process-wide list of error callbacks, engine-provided
// default included (§7 Global sink). Callbacks cannot themselves throw
// into the engine — a panicking callback is recovered and re-reported
// once, through the default logger only, to avoid an infinite loop.
type ErrorSink struct {
	callbacks []func(error)
}

// NewErrorSink builds a sink with the engine's default glog-backed
// handler already registered.
func NewErrorSink() *ErrorSink {
	s := &ErrorSink{}
	s.callbacks = append(s.callbacks, defaultSinkHandler)
	return s
}

func defaultSinkHandler(err error) {
	glog.Errorf("unhandled reactive error: %v", err)
}

// OnError registers an additional callback; it is never removed.
func (s *ErrorSink) OnError(fn func(error)) {
	s.callbacks = append(s.callbacks, fn)
}

// Report delivers err to every registered callback, swallowing and
// re-reporting any callback panic instead of letting it escape into the
// engine thread.
func (s *ErrorSink) Report(err error) {
	for _, cb := range s.callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					glog.Errorf("unhandled error sink callback panicked: %v", r)
				}
			}()
			cb(err)
		}()
	}
}

// ReportUnhandled reports err to the default engine's sink. Operators that
// need a specific engine's sink should call engine.Sink().Report instead;
// this package-level helper exists because Node.notify has no engine
// reference of its own (nodes are engine-agnostic until fired within a
// transaction).
func ReportUnhandled(err error) {
	Default.Sink().Report(err)
}
