package dlevel

import (
	"fmt"

	"github.com/hapdag/hapdag/seqsource"
)

// PopulateRoot builds the level-0 edge set: every sequence contributes an
// edge from the virtual root (node 0) labeled with its symbol at this
// position, with weights accumulated per distinct symbol. Edge id equals
// symbol, so the edge table is preallocated to exactly l.Arity() slots.
//
// Steps:
//  1. Preallocate all parallel arrays to l.arity, all slots marked deleted.
//  2. Preallocate the sequence-chain array to len(symbols).
//  3. For each sequence s: validate its symbol, allocate or reuse the edge
//     at index symbol (recording the edge against its child's in-edge list
//     on first allocation, exactly as PopulateFromPrev does), accumulate
//     weight, and push s onto that edge's child's sequence-membership list.
//
// Complexity: O(N) where N is the number of sequences.
func (l *Level) PopulateRoot(symbols seqsource.LevelSymbols, weights []float32) error {
	if !l.root {
		return fmt.Errorf("dlevel: PopulateRoot on non-root level %d", l.markerIndex)
	}
	n := len(symbols)

	l.parent = make([]int, l.arity)
	l.child = make([]int, l.arity)
	l.symbol = make([]int, l.arity)
	l.weight = make([]float32, l.arity)
	l.nextInEdge = make([]int, l.arity)
	for e := 0; e < l.arity; e++ {
		l.parent[e] = NoNode
		l.child[e] = NoNode
		l.symbol[e] = NoNode
		l.nextInEdge[e] = NoEdge
	}

	l.nextSeq = make([]int, n)

	for s, sym := range symbols {
		if sym < 0 || sym >= l.arity {
			return fmt.Errorf("dlevel: sequence %d symbol %d: %w", s, sym, ErrSymbolOutOfRange)
		}
		w := weights[s]
		e := sym
		if l.parent[e] == NoNode {
			l.parent[e] = 0
			l.child[e] = sym
			l.symbol[e] = sym
			l.activeEdges++
			l.addOutBySymbol(0, sym, e)
			l.pushInEdge(l.child[e], e)
		}
		l.weight[e] += w
		l.nodeWeight[0] += w
		l.pushSeq(l.child[e], s)
	}

	return nil
}

// PopulateFromPrev builds this level's edge set from its predecessor's
// surviving children (this level's parent-node set): for every sequence s
// still attached to a predecessor child p, it contributes an edge
// (p, σ_s) at this level, transplanting p's weight share onto a fresh or
// existing child depending on whether p already has an outgoing edge
// labeled σ_s.
//
// Once every predecessor child has been walked, the predecessor's
// sequence-membership lists are released — this level is now the only
// place that information lives.
//
// Steps:
//  1. Preallocate parallel arrays and the sequence-chain array to N.
//  2. For each active parent p = l.prev's child ids, walk p's sequence
//     list, allocating/reusing edges and weight as in PopulateRoot.
//  3. Release l.prev's sequence lists.
//  4. Shrink the edge arrays if this level came in under 3/4 full.
//
// Complexity: O(N).
func (l *Level) PopulateFromPrev(symbols seqsource.LevelSymbols, weights []float32) error {
	if l.prev == nil {
		return fmt.Errorf("dlevel: PopulateFromPrev on level %d: %w", l.markerIndex, ErrNotLinked)
	}
	n := len(symbols)

	l.parent = make([]int, 0, n)
	l.child = make([]int, 0, n)
	l.symbol = make([]int, 0, n)
	l.weight = make([]float32, 0, n)
	l.nextInEdge = make([]int, 0, n)
	l.nextSeq = make([]int, n)

	for _, p := range l.prev.childNodeArray() {
		for s := l.prev.firstSeqOf(p); s != noSeq; s = l.prev.nextSeqOf(s) {
			sym := symbols[s]
			if sym < 0 || sym >= l.arity {
				return fmt.Errorf("dlevel: sequence %d symbol %d: %w", s, sym, ErrSymbolOutOfRange)
			}
			w := weights[s]

			e, ok := l.lookupOutBySymbol(p, sym)
			if !ok {
				child := l.nextChildID
				l.nextChildID++
				e = l.allocEdge(p, child, sym, w)
				l.addOutBySymbol(p, sym, e)
				l.pushInEdge(child, e)
			} else {
				l.weight[e] += w
			}
			l.nodeWeight[p] += w
			l.pushSeq(l.child[e], s)
		}
	}

	l.prev.releaseSeq()

	if n > 0 && l.activeEdges < (3*n)/4 {
		l.shrink()
	}

	return nil
}
