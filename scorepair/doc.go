// Package scorepair defines ScorePair, the (nodeA, nodeB, score,
// mergeable?) value type produced by similarity.Engine and consumed by
// merge.LevelMerger.
package scorepair
