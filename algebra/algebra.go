// Package algebra implements the polynomial-algebra functions (C9): GCD,
// content/primitive part, division and pseudo-remainder, resultant,
// discriminant, derivation, square-free decomposition, the factorization
// hook, S-polynomial, quotient, substitution and root-finding helpers. It
// sits on top of mvpoly (C6) and uvpoly (C7), promoting between the two
// views the way the source reduces multivariate problems to a chosen main
// variable.
package algebra

import "errors"

// ErrNoCommonRing is a precondition violation: operands of a binary
// algebra function must share a coefficient ring and ordering.
var ErrNoCommonRing = errors.New("algebra: operands have mismatched ring or ordering")

// ErrNotEuclideanDomain is a domain restriction (spec.md §7 kind 2): the
// operation requires a coefficient ring with GCD/QuoRem.
var ErrNotEuclideanDomain = errors.New("algebra: operation requires a Euclidean-domain coefficient ring")

// ErrNotOrderedField is a domain restriction: the operation requires a
// coefficient ring that is simultaneously an ordered field (e.g. Q).
var ErrNotOrderedField = errors.New("algebra: operation requires an ordered field of coefficients")

// ErrNotRationalCapable is a domain restriction: the operation requires
// numerator/denominator extraction or float rationalization.
var ErrNotRationalCapable = errors.New("algebra: operation requires a rational-capable coefficient ring")

// ErrZeroPolynomial is a precondition violation: some queries are
// undefined on the zero polynomial.
var ErrZeroPolynomial = errors.New("algebra: operation undefined on the zero polynomial")

// ErrNoIsolation is returned when root isolation cannot make progress
// within its bisection-depth budget.
var ErrNoIsolation = errors.New("algebra: real-root isolation exceeded its bisection budget")
