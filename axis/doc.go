// Package axis defines MarkerAxis, the immutable sequence of positions a
// hapdag is built over.
//
// Each position ℓ in [0, L) has an allele cardinality Arity(ℓ) ≥ 2: the
// number of distinct symbols a sequence may carry at that position. The
// axis carries no other semantics — positions, chromosome coordinates, or
// marker IDs are the caller's business and are not modeled here.
package axis
