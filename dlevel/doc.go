// Package dlevel implements MutableLevel, the per-marker build-time
// structure that hapdagbuild grows one axis position at a time and that
// merge.LevelMerger mutates in place during the greedy merge pass.
//
// A Level holds one marker position's edge set as four parallel slices
// (parent, child, symbol, weight) indexed by edge id, plus the auxiliary
// indexes needed to navigate and mutate that set in amortized O(1):
// a per-parent symbol→edge map for outgoing lookups, a singly linked
// incoming-edge list per child for MergeParentNodes' retarget step, and
// (build-time only) a singly linked sequence-membership list per child
// that is released once the next level has consumed it.
//
// Levels are chained prev/next as they are built (Link), and those two
// links are the only thing MergeParentNodes and HasSibling reach across; a
// Level never reads more than one hop away in either direction.
package dlevel
