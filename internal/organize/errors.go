package organize

import "errors"

// ErrSourceMissing indicates a version's source directory doesn't exist.
var ErrSourceMissing = errors.New("source directory not found")
