package similarity

import (
	"math"

	"github.com/hapdag/hapdag/scorepair"
)

// Engine scores pairs of parent nodes for merge eligibility via a
// bounded-depth recursive subtree walk. The zero value is not usable;
// construct with New.
type Engine struct {
	opts Options
}

// New validates opts and constructs an Engine.
func New(opts Options) (*Engine, error) {
	resolved, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	return &Engine{opts: resolved}, nil
}

// Score computes the similarity of parent nodes p and q at chain's
// current level, growing the chain forward as needed up to MaxWindow
// levels.
//
// ok is false when the walk's final divergence exceeds
// MaxThresholdRatio*threshold, or when Scale is 0 (no pair can then be
// mergeable) — the caller should drop the pair entirely rather than push
// it into the candidate list.
//
// Steps:
//  1. threshold = Scale * sqrt(1/nodeWeight(p) + 1/nodeWeight(q)).
//  2. Walk the shared-subtree recursion from depth 0 with maxDiff = 0,
//     growing the chain on demand per the gating policy.
//  3. Classify the final maxDiff against threshold and MaxThresholdRatio.
func (e *Engine) Score(chain ChainExtender, p, q int) (scorepair.ScorePair, bool, error) {
	if chain == nil {
		return scorepair.ScorePair{}, false, ErrNilChain
	}
	if p == q {
		return scorepair.ScorePair{}, false, ErrSameNode
	}
	nA := chain.NodeWeight(p)
	nB := chain.NodeWeight(q)
	if nA <= 0 || nB <= 0 {
		return scorepair.ScorePair{}, false, ErrZeroWeight
	}

	threshold := e.opts.Scale * float32(math.Sqrt(float64(1/nA+1/nB)))
	if threshold == 0 {
		// Scale == 0: nothing is mergeable, and a zero score that is not
		// mergeable is not a valid ScorePair, so the pair is dropped.
		return scorepair.ScorePair{}, false, nil
	}

	var maxDiff float32
	d := e.walk(nil, chain, p, q, nA, nB, nA, nB, 0, threshold, &maxDiff)

	if d > e.opts.MaxThresholdRatio*threshold {
		return scorepair.ScorePair{}, false, nil
	}
	sp, err := scorepair.New(p, q, d, d < threshold)
	if err != nil {
		return scorepair.ScorePair{}, false, err
	}
	return sp, true, nil
}

// walk is the recursive subtree comparison. maxDiff is shared mutable
// state across the entire call tree of one Score invocation: every frame
// reads the running maximum for its "dominated" prune and may raise it,
// so a prune in one branch is visible to every branch explored after it.
//
// levelPrev is the level one step behind levelCur; it is nil only at the
// very first call. When levelCur is nil (the chain hasn't been built this
// far yet), levelPrev.Grow() is the only way to obtain it.
func (e *Engine) walk(levelPrev, levelCur ChainExtender, pA, pB int, cntA, cntB, nA, nB float32, depth int, threshold float32, maxDiff *float32) float32 {
	propA := cntA / nA
	propB := cntB / nB
	diff := absF32(propA - propB)
	if diff >= threshold {
		return diff
	}
	if maxF32(propA, propB) <= *maxDiff {
		return *maxDiff
	}
	*maxDiff = maxF32(*maxDiff, diff)

	if levelCur == nil && levelPrev != nil {
		if depth < e.opts.MaxWindow && (e.opts.Gate(*maxDiff, threshold, propA, propB) || depth < e.opts.MinWindow) {
			if grown, ok := levelPrev.Grow(); ok {
				levelCur = grown
			}
		}
	}

	if pA == none || pB == none || levelCur == nil {
		return *maxDiff
	}

	for sym := 0; sym < levelCur.Arity(); sym++ {
		cA, wA := none, float32(0)
		if pA != none {
			if eA := levelCur.OutEdge(pA, sym); eA != none {
				cA = levelCur.EdgeChild(eA)
				wA = levelCur.EdgeWeight(eA)
			}
		}
		cB, wB := none, float32(0)
		if pB != none {
			if eB := levelCur.OutEdge(pB, sym); eB != none {
				cB = levelCur.EdgeChild(eB)
				wB = levelCur.EdgeWeight(eB)
			}
		}
		if cA == none && cB == none {
			continue
		}

		next, _ := levelCur.Next()
		d := e.walk(levelCur, next, cA, cB, wA, wB, nA, nB, depth+1, threshold, maxDiff)
		if d > *maxDiff {
			if d >= threshold {
				return d
			}
			*maxDiff = d
		}
	}

	return *maxDiff
}
