// Package frozen implements FrozenLevel and FrozenDag, the immutable
// output side of the build: a single compaction pass turns a settled
// dlevel.Level into dense CSR arrays with O(1) queries, and FrozenDag
// wraps the resulting sequence of levels plus its distance and size
// aggregates.
//
// A FrozenLevel stores its integer index arrays (parent/child/symbol ids,
// CSR offsets) behind an indexArray interface backed by either uint16 or
// uint32 slices, chosen once at freeze time by edge and node count — a
// memory optimization invisible to every accessor.
package frozen
