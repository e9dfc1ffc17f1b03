// Package logging provides the kernel's structured-logging seam.
//
// Every component that logs (pool growth, factorization-mismatch fallback,
// interval-division branch selection) takes a *zap.SugaredLogger rather than
// reaching for a global. Passing nil falls back to a no-op logger so pure
// unit tests never need to wire one up.
package logging

import "go.uber.org/zap"

// NoOp returns a logger that discards everything, safe to use as a default.
func NoOp() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNoOp returns l, or a no-op logger if l is nil.
func OrNoOp(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return NoOp()
	}
	return l
}
