package frozen

import "github.com/hapdag/hapdag/dlevel"

const wideThreshold = 65535

// FrozenLevel is the immutable compact encoding of one settled
// dlevel.Level. The zero value is not usable; construct with BuildLevel
// or RebuildLevel.
type FrozenLevel struct {
	markerIndex int
	arity       int

	nParentNodes int
	nChildNodes  int
	nEdges       int

	parentOf indexArray
	childOf  indexArray
	symOf    indexArray

	edgeWeight   []float32
	condEdgeProb []float32
	nodeWeight   []float32
	levelWeight  float32

	outStart indexArray
	outEdges indexArray
	inStart  indexArray
	inEdges  indexArray

	wide bool
}

type rawEdge struct {
	parent, child, symbol int
	weight                float32
}

// BuildLevel compacts a settled dlevel.Level into a FrozenLevel: deleted
// edge slots are dropped, and parent/child node ids are rank-remapped to
// dense 0..k-1 in the order each id first appears while scanning edges in
// their original slot order.
//
// Steps:
//  1. Scan edge slots in order; skip deleted ones; assign dense ranks to
//     parent and child ids on first sighting.
//  2. Hand the remapped, source-ordered edge list to the shared
//     compaction pass (CSR construction, weight aggregation, capacity
//     selection).
//
// Complexity: O(E) where E is the level's edge slot count.
func BuildLevel(l *dlevel.Level) (*FrozenLevel, error) {
	if l == nil {
		return nil, ErrNilLevel
	}

	parentRank := make(map[int]int)
	childRank := make(map[int]int)
	edges := make([]rawEdge, 0, l.ActiveEdgeCount())

	n := l.EdgeSlotCount()
	for e := 0; e < n; e++ {
		parent, child, symbol, weight, ok := l.EdgeAt(e)
		if !ok {
			continue
		}
		pr, seen := parentRank[parent]
		if !seen {
			pr = len(parentRank)
			parentRank[parent] = pr
		}
		cr, seen := childRank[child]
		if !seen {
			cr = len(childRank)
			childRank[child] = cr
		}
		edges = append(edges, rawEdge{parent: pr, child: cr, symbol: symbol, weight: weight})
	}

	return compactEdges(l.MarkerIndex(), l.Arity(), edges, len(parentRank), len(childRank))
}

// RebuildLevel re-freezes f purely from its own CSR arrays, with no
// reference back to a dlevel.Level. Since a FrozenLevel's ids are already
// dense and its edges already in first-appearance source order, the
// rebuild is a no-op and yields a byte-identical FrozenLevel.
func RebuildLevel(f *FrozenLevel) (*FrozenLevel, error) {
	if f == nil {
		return nil, ErrNilLevel
	}
	edges := make([]rawEdge, f.nEdges)
	for e := 0; e < f.nEdges; e++ {
		edges[e] = rawEdge{
			parent: f.parentOf.get(e),
			child:  f.childOf.get(e),
			symbol: f.symOf.get(e),
			weight: f.edgeWeight[e],
		}
	}
	return compactEdges(f.markerIndex, f.arity, edges, f.nParentNodes, f.nChildNodes)
}

// compactEdges builds CSR-by-parent and CSR-by-child over an already
// dense, source-ordered edge list, and picks the 16-bit or 32-bit index
// backing based on the resulting edge and node counts.
func compactEdges(markerIndex, arity int, edges []rawEdge, nParentNodes, nChildNodes int) (*FrozenLevel, error) {
	nEdges := len(edges)

	parentOfRaw := make([]int, nEdges)
	childOfRaw := make([]int, nEdges)
	symOfRaw := make([]int, nEdges)
	weight := make([]float32, nEdges)
	nodeWeight := make([]float32, nParentNodes)

	outCount := make([]int, nParentNodes)
	inCount := make([]int, nChildNodes)

	for i, e := range edges {
		parentOfRaw[i] = e.parent
		childOfRaw[i] = e.child
		symOfRaw[i] = e.symbol
		weight[i] = e.weight
		nodeWeight[e.parent] += e.weight
		outCount[e.parent]++
		inCount[e.child]++
	}

	outStart := make([]int, nParentNodes+1)
	for p := 0; p < nParentNodes; p++ {
		outStart[p+1] = outStart[p] + outCount[p]
	}
	inStart := make([]int, nChildNodes+1)
	for c := 0; c < nChildNodes; c++ {
		inStart[c+1] = inStart[c] + inCount[c]
	}

	outCursor := append([]int(nil), outStart[:nParentNodes]...)
	inCursor := append([]int(nil), inStart[:nChildNodes]...)
	outEdgesRaw := make([]int, nEdges)
	inEdgesRaw := make([]int, nEdges)
	for e, edge := range edges {
		outEdgesRaw[outCursor[edge.parent]] = e
		outCursor[edge.parent]++
		inEdgesRaw[inCursor[edge.child]] = e
		inCursor[edge.child]++
	}

	var levelWeight float32
	for _, w := range nodeWeight {
		levelWeight += w
	}

	condEdgeProb := make([]float32, nEdges)
	for e := range edges {
		condEdgeProb[e] = weight[e] / nodeWeight[parentOfRaw[e]]
	}

	maxNodeID := nParentNodes - 1
	if nChildNodes-1 > maxNodeID {
		maxNodeID = nChildNodes - 1
	}
	wide := nEdges > wideThreshold || maxNodeID > wideThreshold

	return &FrozenLevel{
		markerIndex:  markerIndex,
		arity:        arity,
		nParentNodes: nParentNodes,
		nChildNodes:  nChildNodes,
		nEdges:       nEdges,
		parentOf:     packIndex(parentOfRaw, wide),
		childOf:      packIndex(childOfRaw, wide),
		symOf:        packIndex(symOfRaw, wide),
		edgeWeight:   weight,
		condEdgeProb: condEdgeProb,
		nodeWeight:   nodeWeight,
		levelWeight:  levelWeight,
		outStart:     packIndex(outStart, wide),
		outEdges:     packIndex(outEdgesRaw, wide),
		inStart:      packIndex(inStart, wide),
		inEdges:      packIndex(inEdgesRaw, wide),
		wide:         wide,
	}, nil
}
