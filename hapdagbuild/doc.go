// Package hapdagbuild implements Builder, the top-level streaming driver
// that turns a seqsource.Source into a frozen.FrozenDag: it walks the
// axis position by position, growing a chain of dlevel.Level values,
// running merge.LevelMerger at each frontier, and freezing levels as
// they fall behind the frontier.
//
// Builder owns the whole dlevel chain exclusively; SimilarityEngine and
// LevelMerger only ever borrow it for the duration of one call, so no
// locking is needed: construction is single-threaded cooperative scheduling.
package hapdagbuild
