package merge

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/hapdag/hapdag/dlevel"
	"github.com/hapdag/hapdag/scorepair"
	"github.com/hapdag/hapdag/similarity"
)

// LevelMerger runs the greedy merge pass over one frontier level.
// The zero value is not usable; construct with New.
type LevelMerger struct {
	engine *similarity.Engine
}

// New constructs a LevelMerger driven by engine.
func New(engine *similarity.Engine) (*LevelMerger, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	return &LevelMerger{engine: engine}, nil
}

// pairEntry wraps a scored candidate for the heap. stale is set once a
// later merge invalidates the pair; it is discarded lazily on pop since
// gods' binary heap supports no arbitrary removal.
type pairEntry struct {
	pair  scorepair.ScorePair
	stale bool
}

// Run scores every structurally admissible pair of level's active parent
// nodes and greedily folds the most similar mergeable pair together,
// rescoring affected pairs after each merge, until no mergeable pair
// remains. chain must be a similarity.ChainExtender view of the same
// level, supplied by the caller so Engine.Score can grow the chain
// forward on demand.
//
// Steps:
//  1. Snapshot the active parent set and each node's HasSibling bit once;
//     neither is recomputed after a merge (pairs touching a removed node
//     are dropped instead).
//  2. Score every unordered pair where at least one side is sibling-free.
//  3. While the heap's top non-stale entry is mergeable: pick
//     retained/removed, apply dlevel.MergeParentNodes, drop every pair
//     touching removed, and rescore every surviving pair touching
//     retained.
//
// Complexity: O(P^2) candidate pairs in the worst case, each heap
// operation O(log P).
func (m *LevelMerger) Run(level *dlevel.Level, chain similarity.ChainExtender) (int, error) {
	if level == nil {
		return 0, ErrNilLevel
	}

	parents := level.ParentNodeArray()
	hasSibling := make(map[int]bool, len(parents))
	for _, p := range parents {
		hasSibling[p] = level.HasSibling(p)
	}

	h := binaryheap.NewWith(func(a, b interface{}) int {
		return scorepair.Compare(a.(*pairEntry).pair, b.(*pairEntry).pair)
	})
	neighbors := make(map[int]map[int]*pairEntry)

	link := func(e *pairEntry) {
		a, b := e.pair.A, e.pair.B
		if neighbors[a] == nil {
			neighbors[a] = make(map[int]*pairEntry)
		}
		neighbors[a][b] = e
		if neighbors[b] == nil {
			neighbors[b] = make(map[int]*pairEntry)
		}
		neighbors[b][a] = e
	}

	for i, p := range parents {
		for _, q := range parents[i+1:] {
			if hasSibling[p] && hasSibling[q] {
				continue
			}
			sp, ok, err := m.engine.Score(chain, p, q)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
			e := &pairEntry{pair: sp}
			h.Push(e)
			link(e)
		}
	}

	merges := 0
	for {
		top, ok := popStale(h)
		if !ok {
			break
		}
		e := top.(*pairEntry)
		if !e.pair.Mergeable {
			break
		}
		h.Pop()

		retained, removed := selectRetainedRemoved(level, hasSibling, e.pair)
		if err := level.MergeParentNodes(retained, removed); err != nil {
			return merges, err
		}
		merges++

		for _, other := range neighborKeys(neighbors[removed]) {
			oe := neighbors[removed][other]
			oe.stale = true
			delete(neighbors[other], removed)
		}
		delete(neighbors, removed)

		for _, other := range neighborKeys(neighbors[retained]) {
			oe := neighbors[retained][other]
			oe.stale = true
			delete(neighbors[other], retained)
			delete(neighbors[retained], other)

			sp, ok, err := m.engine.Score(chain, retained, other)
			if err != nil {
				return merges, err
			}
			if !ok {
				continue
			}
			ne := &pairEntry{pair: sp}
			h.Push(ne)
			link(ne)
		}
	}

	return merges, nil
}

// popStale discards stale entries off the heap's top until a live one
// surfaces (without removing it) or the heap empties.
func popStale(h *binaryheap.Heap) (interface{}, bool) {
	for {
		top, ok := h.Peek()
		if !ok {
			return nil, false
		}
		if !top.(*pairEntry).stale {
			return top, true
		}
		h.Pop()
	}
}

func neighborKeys(m map[int]*pairEntry) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// selectRetainedRemoved applies the two tie-break rules: a sibling-free
// node always yields to one with a sibling; otherwise the smaller
// nodeWeight is removed, ties keeping nodeA.
func selectRetainedRemoved(level *dlevel.Level, hasSibling map[int]bool, pair scorepair.ScorePair) (retained, removed int) {
	aSib, bSib := hasSibling[pair.A], hasSibling[pair.B]
	if aSib != bSib {
		if aSib {
			return pair.A, pair.B
		}
		return pair.B, pair.A
	}

	wa, wb := level.NodeWeight(pair.A), level.NodeWeight(pair.B)
	if wa < wb {
		return pair.B, pair.A
	}
	return pair.A, pair.B
}
