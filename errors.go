package frp

import "github.com/flowkit/frp/internal"

// CombinatorError wraps a panic/error raised by a pure combinator (map,
// filter, scan, combine) applying user code; it is emitted downstream as a
// failure, not reported to the global sink directly. It reaches the sink
// only through an observer that has no OnError handler (§7).
type CombinatorError = internal.CombinatorError

// SourceError wraps a failure signaled by an external source, e.g. a
// socket closing unexpectedly (§6 WebSocket-style source contract).
type SourceError = internal.SourceError

// UnhandledError wraps a failure that reached the global sink of last
// resort: either a stream or signal failure delivered to an observer with
// no OnError handler, or an error
// raised from a lifecycle callback (start/stop/initial/debug), which never
// propagates downstream (§7).
type UnhandledError = internal.UnhandledError

// OnUnhandledError registers an additional callback on the default
// engine's global sink. The engine's own default handler (glog-backed)
// stays registered; this adds to it, it does not replace it.
func OnUnhandledError(fn func(error)) {
	internal.Default.Sink().OnError(fn)
}
