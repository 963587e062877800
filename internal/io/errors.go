package ioutils

import "errors"

// ErrNoCoverArt indicates no cover art candidate could be staged.
var ErrNoCoverArt = errors.New("no cover art found")
