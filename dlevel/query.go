package dlevel

import "sort"

// ParentNodeArray returns the sorted ids of l's currently active parent
// nodes — the nodes similarity.Engine and merge.LevelMerger iterate pairs
// over.
func (l *Level) ParentNodeArray() []int {
	ids := make([]int, 0, len(l.outBySymbol))
	for id := range l.outBySymbol {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// OutEdge returns p's outgoing edge labeled sym, or NoEdge if p has none.
func (l *Level) OutEdge(p, sym int) int {
	e, ok := l.lookupOutBySymbol(p, sym)
	if !ok {
		return NoEdge
	}
	return e
}

// HasOutEdge reports whether p has an outgoing edge labeled sym.
func (l *Level) HasOutEdge(p, sym int) bool {
	_, ok := l.lookupOutBySymbol(p, sym)
	return ok
}

// EdgeChild returns edge e's child node id.
func (l *Level) EdgeChild(e int) int { return l.child[e] }

// EdgeParent returns edge e's parent node id.
func (l *Level) EdgeParent(e int) int { return l.parent[e] }

// EdgeSymbol returns edge e's symbol label.
func (l *Level) EdgeSymbol(e int) int { return l.symbol[e] }

// EdgeWeight returns edge e's accumulated weight.
func (l *Level) EdgeWeight(e int) float32 { return l.weight[e] }

// EdgeAt returns edge e's (parent, child, symbol, weight), and ok=false if
// the slot has been deleted.
func (l *Level) EdgeAt(e int) (parent, child, symbol int, weight float32, ok bool) {
	if l.parent[e] == NoNode {
		return NoNode, NoNode, NoNode, 0, false
	}
	return l.parent[e], l.child[e], l.symbol[e], l.weight[e], true
}

// NodeWeight returns the total sequence weight flowing through parent
// node p.
func (l *Level) NodeWeight(p int) float32 { return l.nodeWeight[p] }

// OutDegree returns the number of active outgoing edges parent node p
// has.
func (l *Level) OutDegree(p int) int { return l.outActiveCount[p] }

// IsActiveParent reports whether p is currently an active parent node.
func (l *Level) IsActiveParent(p int) bool { return l.isActiveParent(p) }
