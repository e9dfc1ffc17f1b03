package algebra

import (
	"go.uber.org/zap"

	"github.com/polyalg/kernel/internal/logging"
	"github.com/polyalg/kernel/mvpoly"
)

// Factor pairs an irreducible factor with its multiplicity (spec.md §4.5's
// factorization hook result).
type Factor struct {
	Poly *mvpoly.Polynomial
	Mult int
}

// Factorizer is a pluggable factorization backend: given a polynomial,
// return a list of (irreducible-factor, multiplicity) whose product equals
// the input up to sign. The core ships no complete factorizer; an
// external CoCoALib/GiNaC-backed implementation (out of this kernel's
// scope, spec.md §1) plugs in by satisfying this function type.
type Factorizer func(p *mvpoly.Polynomial) ([]Factor, error)

// Trivial is the fallback factorizer: it returns the input unfactored,
// with multiplicity 1. It is always a valid Factorizer (its product always
// equals its input) and is what Factorize falls back to on any mismatch.
func Trivial(p *mvpoly.Polynomial) ([]Factor, error) {
	return []Factor{{Poly: p, Mult: 1}}, nil
}

// Factorize is the core's sign-sanitizing wrapper around an optional
// plug-in (spec.md §4.5, §9): it verifies that the plug-in's factors
// multiply back to p. On an exact match the plug-in's result is returned
// unchanged. On a match up to overall sign, the sign is re-absorbed into an
// extra constant factor of -1. On any other mismatch - or if plugin is
// nil, or if plugin itself errors - Factorize falls back to Trivial. This
// is the only correctness guarantee the core itself makes about
// factorization (spec.md §7 kind 3: numerical inconsistency is recovered
// locally, never propagated as an error).
func Factorize(p *mvpoly.Polynomial, plugin Factorizer) ([]Factor, error) {
	return FactorizeWithLogger(p, plugin, nil)
}

// FactorizeWithLogger behaves like Factorize, additionally reporting every
// fallback to Trivial - and why - to log (falling back to a no-op logger
// when log is nil).
func FactorizeWithLogger(p *mvpoly.Polynomial, plugin Factorizer, log *zap.SugaredLogger) ([]Factor, error) {
	log = logging.OrNoOp(log)
	if plugin == nil {
		return Trivial(p)
	}
	factors, err := plugin(p)
	if err != nil {
		log.Debugw("factorization plugin errored, falling back to trivial factor", "error", err)
		return Trivial(p)
	}
	product, err := reconstruct(p, factors)
	if err != nil {
		log.Debugw("factorization plugin result failed to reconstruct, falling back to trivial factor", "error", err)
		return Trivial(p)
	}
	if product.Equal(p) {
		return factors, nil
	}
	if product.Equal(p.Neg()) {
		out := append([]Factor(nil), factors...)
		out = append(out, Factor{Poly: mvpoly.FromConstant(p.R, p.Ord, p.R.Neg(p.R.One())), Mult: 1})
		return out, nil
	}
	log.Debugw("factorization plugin result did not match input up to sign, falling back to trivial factor")
	return Trivial(p)
}

func reconstruct(p *mvpoly.Polynomial, factors []Factor) (*mvpoly.Polynomial, error) {
	result := mvpoly.FromConstant(p.R, p.Ord, p.R.One())
	for _, f := range factors {
		if f.Mult < 0 {
			return nil, ErrZeroPolynomial
		}
		cur := f.Poly
		for i := 0; i < f.Mult; i++ {
			var err error
			result, err = result.Mul(cur)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
