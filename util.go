package frp

import (
	"fmt"

	"github.com/flowkit/frp/internal"
)

// safeApply runs fn, turning a panic into a CombinatorError failure rather
// than letting it escape into the engine (§4.8: "if it throws, emit
// error"). Pure combinators are expected not to throw; this is the
// exceptional path.
func safeApply(op string, fn func() any) internal.Try {
	var result internal.Try
	func() {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				result = internal.Failure(&internal.CombinatorError{Op: op, Cause: err})
			}
		}()
		result = internal.Success(fn())
	}()
	return result
}
