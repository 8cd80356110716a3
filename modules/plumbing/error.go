package plumbing

import "errors"

// ErrStop is returned by a ForEach callback to stop iteration early without
// propagating an error to the caller.
var ErrStop = errors.New("stop iter")
