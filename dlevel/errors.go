package dlevel

import "errors"

// ErrUnknownNode indicates an operation referenced a parent node id that
// is not currently active on the level.
var ErrUnknownNode = errors.New("dlevel: unknown node id")

// ErrSymbolOutOfRange indicates a symbol fell outside [0, arity) for the
// level's marker position.
var ErrSymbolOutOfRange = errors.New("dlevel: symbol out of range")

// ErrNotLinked indicates PopulateFromPrev was called on a level with no
// prev.
var ErrNotLinked = errors.New("dlevel: level is not linked to a predecessor")

// ErrSelfMerge indicates MergeParentNodes was asked to merge a node with
// itself.
var ErrSelfMerge = errors.New("dlevel: cannot merge a node with itself")
