package geometry

import "github.com/pkg/errors"

// Threading errors up through every work item, dispatch table, and worker
// would add a ton of plumbing for faults that should never happen on a valid
// document. Instead, structural faults (a malformed entity, an impossible
// dispatch) panic, and the public API recovers to convert to an error.
// Degenerate or parallel geometry is NOT a fault; those cases are absorbed
// where they occur and never panic.

type FlattenError error

// Panic with a FlattenError.
func fatalf(format string, args ...interface{}) {
	panic(FlattenError(errors.Errorf(format, args...)))
}

func HandleFlattenPanicRecover(r interface{}) error {
	if r != nil {
		if flattenError, ok := r.(FlattenError); ok {
			return flattenError
		}
		panic(r)
	}
	return nil
}
