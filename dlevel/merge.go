package dlevel

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// MergeParentNodes merges removed into retained among l's own parent
// nodes: every outgoing edge removed owns is transplanted onto retained,
// accumulating weight where retained already has an edge with the same
// symbol. Wherever that accumulation brings two distinct children
// together, the merge is recursively propagated onto those children —
// either by recursing into l.next (a level's child ids are its
// successor's parent ids), or, if l.next does not exist yet, by merging
// directly within l's own child-identity structures.
//
// retained survives; removed is deactivated and must not be referenced
// again.
//
// Steps:
//  1. Splice removed's predecessor-side incoming edge into retained's
//     (l.prev's bookkeeping, since l.prev's children are l's parents).
//  2. For every symbol removed has an outgoing edge for: transplant it if
//     retained has none, else accumulate weight and queue the resulting
//     (retainedChild, removedChild) pair for propagation.
//  3. Deactivate removed.
//  4. Propagate every queued child pair one level down.
func (l *Level) MergeParentNodes(retained, removed int) error {
	if retained == removed {
		return ErrSelfMerge
	}
	if !l.isActiveParent(retained) {
		return fmt.Errorf("dlevel: retained parent %d: %w", retained, ErrUnknownNode)
	}
	if !l.isActiveParent(removed) {
		return fmt.Errorf("dlevel: removed parent %d: %w", removed, ErrUnknownNode)
	}

	if l.prev != nil {
		l.prev.mergeChildNodes(retained, removed)
	}

	var propagate [][2]int
	for sym := 0; sym < l.arity; sym++ {
		dEdge, ok := l.lookupOutBySymbol(removed, sym)
		if !ok {
			continue
		}
		dw := l.weight[dEdge]

		rEdge, ok := l.lookupOutBySymbol(retained, sym)
		if !ok {
			l.parent[dEdge] = retained
			l.addOutBySymbol(retained, sym, dEdge)
			l.clearOutBySymbol(removed, sym)
		} else {
			rc, dc := l.child[rEdge], l.child[dEdge]
			l.weight[rEdge] += dw
			l.deleteEdge(dEdge)
			l.clearOutBySymbol(removed, sym)
			if rc != dc {
				propagate = append(propagate, [2]int{rc, dc})
			}
		}
		l.nodeWeight[retained] += dw
	}

	delete(l.nodeWeight, removed)
	delete(l.outActiveCount, removed)

	for _, pair := range propagate {
		if err := l.scheduleChildMerge(pair[0], pair[1]); err != nil {
			return err
		}
	}

	return nil
}

// scheduleChildMerge propagates a (retained, removed) child-identity merge
// one level down: into l.next if it already exists, or directly into l's
// own child structures if l.next has not been built yet (there is, in
// that case, no successor level to express the merge through).
func (l *Level) scheduleChildMerge(retained, removed int) error {
	if l.next != nil {
		return l.next.MergeParentNodes(retained, removed)
	}
	l.mergeChildNodes(retained, removed)
	return nil
}

// mergeChildNodes folds removed's identity into retained within l: it
// splices removed's incoming-edge list and (if still present) its
// build-time sequence-membership list onto retained's, and records the
// merge in l's disjoint-set so Representative resolves removed to
// retained from here on.
func (l *Level) mergeChildNodes(retained, removed int) {
	if e, ok := l.firstInEdge[removed]; ok {
		last := e
		l.child[last] = retained
		for l.nextInEdge[last] != NoEdge {
			last = l.nextInEdge[last]
			l.child[last] = retained
		}
		if head, ok2 := l.firstInEdge[retained]; ok2 {
			l.nextInEdge[last] = head
		}
		l.firstInEdge[retained] = e
		delete(l.firstInEdge, removed)
	}

	if s, ok := l.firstSeq[removed]; ok {
		last := s
		for l.nextSeq[last] != noSeq {
			last = l.nextSeq[last]
		}
		if head, ok2 := l.firstSeq[retained]; ok2 {
			l.nextSeq[last] = head
		}
		l.firstSeq[retained] = s
		delete(l.firstSeq, removed)
	}

	l.union(retained, removed)
}

func (l *Level) elem(id int) *disjoint.Element {
	if l.elems == nil {
		l.elems = make(map[int]*disjoint.Element)
		l.canon = make(map[*disjoint.Element]int)
	}
	e, ok := l.elems[id]
	if !ok {
		e = disjoint.NewElement()
		l.elems[id] = e
		l.canon[e] = id
	}
	return e
}

func (l *Level) union(retained, removed int) {
	er, ed := l.elem(retained), l.elem(removed)
	disjoint.Union(er, ed)
	l.canon[er.Find()] = retained
}

// Representative returns the child node id that childID currently
// resolves to after zero or more merges recorded via mergeChildNodes.
func (l *Level) Representative(childID int) int {
	if l.elems == nil {
		return childID
	}
	e, ok := l.elems[childID]
	if !ok {
		return childID
	}
	if id, ok := l.canon[e.Find()]; ok {
		return id
	}
	return childID
}

// HasSibling reports whether parent-node p shares its incoming edge's
// source with at least one other active parent node — i.e. whether p's
// predecessor (in l.prev) still has two or more outgoing edges.
func (l *Level) HasSibling(p int) bool {
	if l.prev == nil {
		return false
	}
	e, ok := l.prev.firstInEdge[p]
	if !ok {
		return false
	}
	grandparent := l.prev.parent[e]
	return l.prev.outActiveCount[grandparent] >= 2
}
