package hapdagbuild

import (
	"errors"

	"github.com/hapdag/hapdag/seqsource"
)

// ErrMissingScale indicates WithScale was never called; scale has no
// default.
var ErrMissingScale = errors.New("hapdagbuild: scale is required")

// ErrInvalidScale indicates a negative, NaN, or infinite scale.
var ErrInvalidScale = errors.New("hapdagbuild: scale must be >= 0 and finite")

// ErrMissingWindow indicates WithMaxWindow was never called; max_window
// has no default.
var ErrMissingWindow = errors.New("hapdagbuild: max_window is required")

// ErrInvalidWindow indicates max_window < 1 or an explicit min_window
// outside [1, max_window].
var ErrInvalidWindow = errors.New("hapdagbuild: window must satisfy 1 <= min_window <= max_window")

// ErrSourceExhausted re-exports seqsource.ErrSourceExhausted so callers can
// branch on it without importing seqsource directly.
var ErrSourceExhausted = seqsource.ErrSourceExhausted

// ErrEmptyAxis indicates the configured axis has zero positions.
var ErrEmptyAxis = errors.New("hapdagbuild: axis must have at least one position")
