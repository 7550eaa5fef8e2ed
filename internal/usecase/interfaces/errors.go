package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write does
// not match the stored state (CAS guard). Usecases translate it into the
// appropriate domain failure (invalid state, conflict).
var ErrConditionFailed = errors.New("conditional check failed")
