package yastate

import "errors"

// ErrResourceNotFound is returned by Fetch when the container holds no
// resource of the requested type.
var ErrResourceNotFound = errors.New("resource not found in state container")
