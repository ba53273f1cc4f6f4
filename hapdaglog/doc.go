// Package hapdaglog wraps github.com/rs/zerolog in a small value type that
// defaults to silence. Library code takes a Logger by value, never a
// *zerolog.Logger directly, so the zero value (Nop()) is always safe to
// log through without a nil check.
package hapdaglog
