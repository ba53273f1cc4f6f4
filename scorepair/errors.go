package scorepair

import "errors"

// ErrNegativeScore indicates a ScorePair was constructed with a negative or
// NaN value.
var ErrNegativeScore = errors.New("scorepair: value must be >= 0 and not NaN")

// ErrInconsistentMergeable indicates a ScorePair was constructed with
// value == 0 but mergeable == false, violating "value == 0 => mergeable".
var ErrInconsistentMergeable = errors.New("scorepair: zero value must be mergeable")
