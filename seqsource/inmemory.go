package seqsource

import (
	"fmt"
	"math"

	"github.com/hapdag/hapdag/axis"
)

// InMemory is a slice-backed Source: every symbol and weight already lives
// in memory, laid out sequence-major (symbols[s][ℓ]). It exists so callers
// and tests can exercise hapdagbuild.Builder without writing a VCF (or any
// other file-format) reader.
type InMemory struct {
	ax      *axis.MarkerAxis
	symbols [][]int
	weights []float32
	pos     int
}

// NewInMemory validates shape and returns an InMemory source over ax.
//
// symbols must have one row per sequence, each of length ax.Len(), with
// symbols[s][ℓ] in [0, ax.Arity(ℓ)). weights must have one entry per
// sequence, each positive, finite, and non-NaN.
//
// Errors: ErrNoSequences, ErrTooFewPositions, ErrBadWeight, ErrSymbolOutOfRange.
// Complexity: O(N*L) to validate and copy.
func NewInMemory(ax *axis.MarkerAxis, symbols [][]int, weights []float32) (*InMemory, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSequences
	}
	if len(weights) != len(symbols) {
		return nil, fmt.Errorf("seqsource: %d weights for %d sequences: %w", len(weights), len(symbols), ErrBadWeight)
	}

	l := ax.Len()
	rows := make([][]int, len(symbols))
	for s, row := range symbols {
		if len(row) < l {
			return nil, fmt.Errorf("seqsource: sequence %d has %d positions, axis has %d: %w", s, len(row), l, ErrTooFewPositions)
		}
		for pos := 0; pos < l; pos++ {
			if row[pos] < 0 || row[pos] >= ax.Arity(pos) {
				return nil, fmt.Errorf("seqsource: sequence %d position %d symbol %d: %w", s, pos, row[pos], ErrSymbolOutOfRange)
			}
		}
		cp := make([]int, l)
		copy(cp, row[:l])
		rows[s] = cp
	}

	w := make([]float32, len(weights))
	for s, wt := range weights {
		if err := validateWeight(wt); err != nil {
			return nil, fmt.Errorf("seqsource: sequence %d: %w", s, err)
		}
		w[s] = wt
	}

	return &InMemory{ax: ax, symbols: rows, weights: w, pos: 0}, nil
}

func validateWeight(w float32) error {
	if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) || w <= 0 {
		return ErrBadWeight
	}

	return nil
}

// NumSequences returns N.
func (s *InMemory) NumSequences() int {
	return len(s.symbols)
}

// Weight returns the constant weight of sequence seqID.
func (s *InMemory) Weight(seqID int) float32 {
	return s.weights[seqID]
}

// Advance yields the next position's symbols. Returns ErrSourceExhausted
// once all ax.Len() positions have been yielded.
func (s *InMemory) Advance() (LevelSymbols, error) {
	if s.pos >= s.ax.Len() {
		return nil, ErrSourceExhausted
	}
	out := make(LevelSymbols, len(s.symbols))
	for i, row := range s.symbols {
		out[i] = row[s.pos]
	}
	s.pos++

	return out, nil
}
