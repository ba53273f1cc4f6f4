package seqsource

import "errors"

// ErrBadWeight indicates a sequence weight is non-positive, NaN, or infinite.
var ErrBadWeight = errors.New("seqsource: weight must be positive and finite")

// ErrSymbolOutOfRange indicates a yielded symbol fell outside [0, arity) for
// its position.
var ErrSymbolOutOfRange = errors.New("seqsource: symbol out of range")

// ErrSourceExhausted indicates Advance was called after all L positions had
// already been yielded.
var ErrSourceExhausted = errors.New("seqsource: advance called past end of axis")

// ErrNoSequences indicates a source was constructed with zero sequences.
var ErrNoSequences = errors.New("seqsource: must have at least one sequence")

// ErrTooFewPositions indicates fewer than L positions are available from
// the backing data.
var ErrTooFewPositions = errors.New("seqsource: fewer positions available than the axis declares")
