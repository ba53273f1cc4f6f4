package hapdagbuild

import (
	"fmt"

	"github.com/hapdag/hapdag/axis"
	"github.com/hapdag/hapdag/dlevel"
	"github.com/hapdag/hapdag/frozen"
	"github.com/hapdag/hapdag/merge"
	"github.com/hapdag/hapdag/seqsource"
	"github.com/hapdag/hapdag/similarity"
)

// Builder drives the whole construction: stream the source, grow the
// dlevel chain, merge each frontier, freeze what falls behind it. The
// zero value is not usable; construct with New.
type Builder struct {
	cfg    config
	ax     *axis.MarkerAxis
	source seqsource.Source
	engine *similarity.Engine
	merger *merge.LevelMerger

	weights []float32
	tail    *dlevel.Level
	nextPos int
	growErr error

	frontierIndex int
	frozenCount   int
}

// New validates opts and constructs a Builder over ax, streaming from
// source.
//
// Errors: ErrMissingScale, ErrInvalidScale, ErrMissingWindow,
// ErrInvalidWindow, ErrEmptyAxis, or a wrapped similarity.ErrInvalidOptions.
func New(ax *axis.MarkerAxis, source seqsource.Source, opts ...Option) (*Builder, error) {
	if ax == nil || ax.Len() == 0 {
		return nil, ErrEmptyAxis
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	engine, err := similarity.New(cfg.similarityOptions())
	if err != nil {
		return nil, fmt.Errorf("hapdagbuild: %w", err)
	}
	merger, err := merge.New(engine)
	if err != nil {
		return nil, fmt.Errorf("hapdagbuild: %w", err)
	}

	return &Builder{
		cfg:           cfg,
		ax:            ax,
		source:        source,
		engine:        engine,
		merger:        merger,
		frontierIndex: -1,
	}, nil
}

// Stats is a read-only progress snapshot for embedding callers that want
// to report construction progress without reaching into internals.
type Stats struct {
	// FrontierIndex is the marker position of the level currently being
	// merged (-1 before Build starts walking the chain).
	FrontierIndex int
	// FrozenLevels is the number of levels frozen so far.
	FrozenLevels int
}

// Stats returns the Builder's current progress.
func (b *Builder) Stats() Stats {
	return Stats{FrontierIndex: b.frontierIndex, FrozenLevels: b.frozenCount}
}

// Build runs the full streaming construction:
//
//	cur ← root(source.advance(), weights)
//	extend_chain(source, cur, min_window)
//	while cur.next != NONE:
//	    cur ← cur.next; extend_chain(source, cur, min_window)
//	    merger.run(cur); freeze(cur.detachPrev())
//	freeze(cur)
//	return FrozenDag(axis, frozen)
func (b *Builder) Build() (*frozen.FrozenDag, error) {
	sym0, err := b.source.Advance()
	if err != nil {
		return nil, err
	}

	n := b.source.NumSequences()
	b.weights = make([]float32, n)
	for i := 0; i < n; i++ {
		b.weights[i] = b.source.Weight(i)
	}

	root := dlevel.NewRoot(b.ax.Arity(0))
	if err := root.PopulateRoot(sym0, b.weights); err != nil {
		return nil, fmt.Errorf("hapdagbuild: %w", err)
	}
	b.tail = root
	b.nextPos = 1

	b.extendChain(root, b.cfg.minWindow)
	if b.growErr != nil {
		return nil, b.growErr
	}

	var levels []*frozen.FrozenLevel
	cur := root
	for cur.Next() != nil {
		cur = cur.Next()
		// Keep min_window levels of lookahead past the new frontier: a
		// frontier with at most one active parent never drives
		// SimilarityEngine.Grow on its own, so without this the chain
		// would stop advancing the moment merging has nothing to score.
		b.extendChain(cur, b.cfg.minWindow)
		if b.growErr != nil {
			return nil, b.growErr
		}
		b.frontierIndex = cur.MarkerIndex()

		if _, err := b.merger.Run(cur, levelChain{l: cur, b: b}); err != nil {
			return nil, fmt.Errorf("hapdagbuild: merge at level %d: %w", cur.MarkerIndex(), err)
		}
		if b.growErr != nil {
			return nil, b.growErr
		}

		prev := cur.DetachPrev()
		fl, err := frozen.BuildLevel(prev)
		if err != nil {
			return nil, fmt.Errorf("hapdagbuild: freeze level %d: %w", prev.MarkerIndex(), err)
		}
		levels = append(levels, fl)
		b.frozenCount++

		b.cfg.logger.Debug().Int("level", prev.MarkerIndex()).Int("edges", fl.EdgeCount()).Msg("level frozen")
	}

	flCur, err := frozen.BuildLevel(cur)
	if err != nil {
		return nil, fmt.Errorf("hapdagbuild: freeze level %d: %w", cur.MarkerIndex(), err)
	}
	levels = append(levels, flCur)
	b.frozenCount++

	dag, err := frozen.NewDag(b.ax, levels)
	if err != nil {
		return nil, fmt.Errorf("hapdagbuild: %w", err)
	}

	b.cfg.logger.Info().Int("levels", dag.LevelCount()).Int("nodes", dag.NNodes()).Int("edges", dag.NEdges()).Msg("dag built")

	return dag, nil
}

// extendChain grows the chain past frontier until it is target levels
// deep or the source is exhausted (the lookahead buffer).
func (b *Builder) extendChain(frontier *dlevel.Level, target int) {
	depth := 0
	for n := frontier.Next(); n != nil; n = n.Next() {
		depth++
	}
	for depth < target {
		if _, ok := b.extendOne(); !ok {
			return
		}
		depth++
	}
}

// extendOne pulls the next axis position from the source and appends one
// more dlevel.Level onto the tail. Returns ok=false once the axis is
// exhausted; a genuine source error is stashed in b.growErr rather than
// threaded through the similarity.ChainExtender interface, which has no
// error channel.
func (b *Builder) extendOne() (*dlevel.Level, bool) {
	if b.growErr != nil {
		return nil, false
	}
	if b.nextPos >= b.ax.Len() {
		return nil, false
	}

	sym, err := b.source.Advance()
	if err != nil {
		b.growErr = fmt.Errorf("hapdagbuild: advance to position %d: %w", b.nextPos, err)
		return nil, false
	}

	next := dlevel.NewInterior(b.nextPos, b.ax.Arity(b.nextPos))
	b.tail.Link(next)
	if err := next.PopulateFromPrev(sym, b.weights); err != nil {
		b.growErr = fmt.Errorf("hapdagbuild: populate position %d: %w", b.nextPos, err)
		return nil, false
	}

	b.tail = next
	b.nextPos++
	b.cfg.logger.Debug().Int("level", next.MarkerIndex()).Msg("chain grown")

	return next, true
}
