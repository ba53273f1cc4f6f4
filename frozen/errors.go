package frozen

import "errors"

// ErrNilLevel indicates BuildLevel or RebuildLevel was called with nil.
var ErrNilLevel = errors.New("frozen: nil level")

// ErrEmptyDag indicates NewDag was called with zero levels.
var ErrEmptyDag = errors.New("frozen: dag must have at least one level")

// ErrShapeMismatch indicates the level-0 single-root invariant or the
// child-count/parent-count chaining invariant between adjacent levels
// failed.
var ErrShapeMismatch = errors.New("frozen: level shape mismatch")
