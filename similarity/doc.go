// Package similarity implements Engine, the bounded-depth recursive
// subtree walk that scores how interchangeable two parent nodes at the
// current frontier level are.
//
// Engine never touches a dlevel.Level directly: it walks a ChainExtender,
// a narrow read-mostly view plus a single escape hatch (Grow) for pulling
// one more level of input when the built chain runs out before the walk
// is done. hapdagbuild supplies the concrete adapter; tests in this
// package supply a minimal fake.
package similarity
