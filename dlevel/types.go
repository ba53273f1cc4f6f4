package dlevel

import "github.com/spakin/disjoint"

// NoNode is the sentinel for "no node" — an edge slot's parent field once
// the slot is deleted, or a lookup miss.
const NoNode = -1

// NoEdge is the sentinel for "no edge" — a lookup miss, and the
// terminator of the incoming-edge chains (the build-time sequence chains
// end in their own sentinel, noSeq).
const NoEdge = -1

const noSeq = -1

// Level is one marker position's mutable edge set. The zero value is not
// usable; construct with NewRoot or NewInterior.
type Level struct {
	markerIndex int
	arity       int

	prev *Level
	next *Level
	root bool

	// Edge table, indexed by edge id. A deleted slot has parent == NoNode;
	// its other fields are stale and must not be read.
	parent     []int
	child      []int
	symbol     []int
	weight     []float32
	nextInEdge []int

	activeEdges int
	nextChildID int

	// outBySymbol[p][sym] = edge id of p's outgoing edge labeled sym.
	// A parent with no entry (or an empty inner map) is inactive.
	outBySymbol    map[int]map[int]int
	outActiveCount map[int]int
	nodeWeight     map[int]float32

	// firstInEdge[child] = first edge id in child's incoming-edge list.
	firstInEdge map[int]int

	// Build-time only: firstSeq[child] = first sequence id in child's
	// membership list; nextSeq is indexed by sequence id. Both are
	// released via releaseSeq once the next level has consumed them.
	firstSeq map[int]int
	nextSeq  []int

	// Child-identity tracking for merges performed directly on this level
	// (the fallback path in MergeParentNodes when l.next is nil). elems
	// lazily maps a child id to its disjoint-set element; canon maps a
	// set's root element back to the id MergeParentNodes chose to retain.
	elems map[int]*disjoint.Element
	canon map[*disjoint.Element]int
}

// NewRoot constructs the level-0 MutableLevel. Its single parent node is
// id 0 (the virtual root); PopulateRoot must be called next.
func NewRoot(arity int) *Level {
	return &Level{
		markerIndex:    0,
		arity:          arity,
		root:           true,
		outBySymbol:    make(map[int]map[int]int),
		outActiveCount: make(map[int]int),
		nodeWeight:     make(map[int]float32),
		firstInEdge:    make(map[int]int),
		firstSeq:       make(map[int]int),
	}
}

// NewInterior constructs an unpopulated level at the given marker index,
// for positions after the root. PopulateFromPrev must be called next,
// after Link has attached it to its predecessor.
func NewInterior(markerIndex, arity int) *Level {
	return &Level{
		markerIndex:    markerIndex,
		arity:          arity,
		outBySymbol:    make(map[int]map[int]int),
		outActiveCount: make(map[int]int),
		nodeWeight:     make(map[int]float32),
		firstInEdge:    make(map[int]int),
		firstSeq:       make(map[int]int),
	}
}

// Link attaches next as l's successor, setting both directions of the
// doubly linked chain.
func (l *Level) Link(next *Level) {
	l.next = next
	next.prev = l
}

// DetachPrev severs l's backward link and returns the level that was
// there, so hapdagbuild can drop a predecessor it no longer needs once
// that predecessor's sequence lists have been released.
func (l *Level) DetachPrev() *Level {
	p := l.prev
	l.prev = nil
	return p
}

// MarkerIndex returns the axis position this level represents.
func (l *Level) MarkerIndex() int { return l.markerIndex }

// Arity returns the symbol arity at this level's marker position.
func (l *Level) Arity() int { return l.arity }

// Prev returns the predecessor level, or nil at the root or once detached.
func (l *Level) Prev() *Level { return l.prev }

// Next returns the successor level, or nil if not yet built.
func (l *Level) Next() *Level { return l.next }

// IsRoot reports whether this is the level-0 virtual-root level.
func (l *Level) IsRoot() bool { return l.root }

// ActiveEdgeCount returns the number of non-deleted edges.
func (l *Level) ActiveEdgeCount() int { return l.activeEdges }

// EdgeSlotCount returns the total number of edge slots, including deleted
// ones; frozen.BuildLevel uses this to size its scan.
func (l *Level) EdgeSlotCount() int { return len(l.parent) }
