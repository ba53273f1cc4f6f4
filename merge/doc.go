// Package merge implements LevelMerger, the single-threaded greedy merge
// pass that runs over one frontier dlevel.Level at a time: score every
// structurally admissible pair of parent nodes with similarity.Engine,
// then repeatedly fold the most similar mergeable pair together until
// none remain.
//
// Scored pairs live in a github.com/emirpasic/gods binary min-heap keyed
// by scorepair.Compare. The heap has no arbitrary-element removal, so a
// pair invalidated by a merge is marked stale in place and skipped lazily
// when it later surfaces at the top.
package merge
