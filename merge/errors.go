package merge

import "errors"

// ErrNilEngine indicates New was called with a nil similarity.Engine.
var ErrNilEngine = errors.New("merge: nil engine")

// ErrNilLevel indicates Run was called with a nil level.
var ErrNilLevel = errors.New("merge: nil level")
