package repository

import "errors"

// ErrNotFound is returned by the backend lookups when a key holds no value. The
// Store methods turn it into "absent" so callers never see it.
var ErrNotFound = errors.New("repository: not found")
