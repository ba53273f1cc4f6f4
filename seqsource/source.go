package seqsource

// LevelSymbols holds, for one axis position, the symbol each sequence
// carries there: LevelSymbols[s] is sequence s's allele at that position,
// in [0, arity) for the position just advanced.
type LevelSymbols []int

// Source is the abstract input port a Builder streams from.
//
// Contract:
//   - NumSequences returns N >= 1 and is constant across the source's life.
//   - Weight returns a positive, finite, non-NaN weight for seqID, constant
//     across positions.
//   - Advance yields the next position's symbols, in axis order starting at
//     position 0; it must be called exactly L times in total. A call past L
//     is a contract violation and returns ErrSourceExhausted.
//
// Source has no cancellation or retry semantics: it is a pure data feeder.
// The only error it is expected to surface mid-stream is exhaustion or a
// malformed record; there is nothing to retry.
type Source interface {
	// NumSequences returns N, the number of sequences in the source.
	NumSequences() int

	// Weight returns the (positive, finite) weight of sequence seqID.
	Weight(seqID int) float32

	// Advance yields the next position's symbols in axis order.
	Advance() (LevelSymbols, error)
}
