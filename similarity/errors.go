package similarity

import "errors"

// ErrNilChain indicates Score was called with a nil ChainExtender.
var ErrNilChain = errors.New("similarity: nil chain")

// ErrSameNode indicates Score was asked to compare a node against itself.
var ErrSameNode = errors.New("similarity: cannot score a node against itself")

// ErrZeroWeight indicates one of the two nodes carries no sequence weight,
// making the threshold undefined (division by zero).
var ErrZeroWeight = errors.New("similarity: node has zero or negative weight")

// ErrInvalidOptions indicates an Options value failed validation.
var ErrInvalidOptions = errors.New("similarity: invalid options")
