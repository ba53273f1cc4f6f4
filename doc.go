// Package hapdag builds a leveled, weighted DAG over equal-length symbolic
// sequences and exposes it as an immutable, indexable structure for
// downstream probabilistic queries.
//
// What is hapdag?
//
//	A streaming, single-threaded engine that agglomeratively merges
//	similar nodes at each level of a growing frontier, then freezes the
//	result into a compact, read-only form:
//
//	  • axis        — the immutable per-position allele-cardinality axis
//	  • seqsource    — the input port: a lazy, weighted sequence source
//	  • scorepair    — the ordered (node, node, score) value type
//	  • dlevel       — the mutable per-level graph fragment under construction
//	  • similarity   — the bounded-depth recursive subtree-similarity scorer
//	  • merge        — the greedy, priority-driven merge loop over a frontier
//	  • frozen       — the immutable, O(1)-queryable output port
//	  • hapdagbuild  — the top-level streaming driver (Builder)
//
// Under the hood, everything is organized as one subpackage per concern:
//
//	axis/        — MarkerAxis: L positions, each with an allele cardinality
//	seqsource/   — WeightedSequenceSource contract + an in-memory reference source
//	scorepair/   — the (a, b, value, mergeable) ordering used by the merger
//	dlevel/      — MutableLevel: edges, node indices, sequence membership
//	similarity/  — SimilarityEngine: recursive subtree-proportion scoring
//	merge/       — LevelMerger: greedy acceptance + incremental rescoring
//	frozen/      — FrozenLevel / FrozenDag: compact immutable encoding
//	hapdagbuild/ — Builder: streams seqsource into a sliding dlevel chain
//	hapdaglog/   — structured progress logging (zerolog), off by default
//
// hapdag deliberately stops at the DAG: parsing genotype files, writing
// segment/VCF output, and CLI plumbing are all external collaborators.
//
//	go get github.com/hapdag/hapdag
package hapdag
