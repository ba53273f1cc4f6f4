package hapdagbuild

import (
	"github.com/hapdag/hapdag/dlevel"
	"github.com/hapdag/hapdag/similarity"
)

// levelChain adapts a *dlevel.Level, in the context of a live Builder, to
// similarity.ChainExtender: every read delegates straight to the level,
// and Grow pulls the next axis position from the Builder's source on
// demand, extending the shared dlevel chain by exactly one level.
type levelChain struct {
	l *dlevel.Level
	b *Builder
}

var _ similarity.ChainExtender = levelChain{}

func (c levelChain) Arity() int               { return c.l.Arity() }
func (c levelChain) OutEdge(p, sym int) int   { return c.l.OutEdge(p, sym) }
func (c levelChain) EdgeChild(e int) int      { return c.l.EdgeChild(e) }
func (c levelChain) EdgeWeight(e int) float32 { return c.l.EdgeWeight(e) }
func (c levelChain) NodeWeight(n int) float32 { return c.l.NodeWeight(n) }

func (c levelChain) Next() (similarity.ChainExtender, bool) {
	n := c.l.Next()
	if n == nil {
		return nil, false
	}
	return levelChain{l: n, b: c.b}, true
}

// Grow extends the builder's chain by one more level pulled from the
// source, if input remains. A prior source error is remembered on the
// Builder and surfaced once Build returns.
func (c levelChain) Grow() (similarity.ChainExtender, bool) {
	next, ok := c.b.extendOne()
	if !ok {
		return nil, false
	}
	return levelChain{l: next, b: c.b}, true
}
