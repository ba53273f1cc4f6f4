// Package seqsource defines the input port a hapdagbuild.Builder consumes:
// a lazy, single-pass, resettable-per-position source of N weighted
// sequences over an axis.MarkerAxis.
//
// Source is the abstract input-port contract; InMemory is a small
// slice-backed reference implementation used by tests and by callers who
// already hold their sequences in memory. Parsing VCF or any other
// genotype file format into a Source is explicitly out of scope here.
package seqsource
