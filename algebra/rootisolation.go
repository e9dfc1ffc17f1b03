package algebra

import (
	"math"

	"github.com/pkg/errors"

	"github.com/polyalg/kernel/interval"
	"github.com/polyalg/kernel/internal/mathutil"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
)

// sturmSequence builds the Sturm sequence of a square-free p:
// s0 = p, s1 = p', s_{i+1} = -rem(s_{i-1}, s_i), stopping once a
// remainder is zero or constant (spec.md §4.4's "signed-remainder
// sequence", specialized to Sturm's classical root-counting form).
func sturmSequence(p *uvpoly.Polynomial) ([]*uvpoly.Polynomial, error) {
	deriv, err := p.Derivative(1)
	if err != nil {
		return nil, err
	}
	seq := []*uvpoly.Polynomial{p, deriv}
	for {
		prev, cur := seq[len(seq)-2], seq[len(seq)-1]
		if cur.IsZero() || cur.Degree() == 0 {
			break
		}
		_, rem, err := prev.QuoRem(cur)
		if err != nil {
			return nil, err
		}
		seq = append(seq, rem.Neg())
	}
	return seq, nil
}

// signVariationsAt counts sign changes in the Sturm sequence evaluated at
// x, ignoring zeros (Sturm's theorem: the number of distinct real roots of
// p in (lo, hi] is signVariationsAt(lo) - signVariationsAt(hi)).
func signVariationsAt(of orderedField, seq []*uvpoly.Polynomial, x ring.Elem) int {
	variations := 0
	last := ring.Zero
	for _, s := range seq {
		v := s.Eval(x)
		sign := of.SignOf(v)
		if sign == ring.Zero {
			continue
		}
		if last != ring.Zero && sign != last {
			variations++
		}
		last = sign
	}
	return variations
}

func chebyshevPivots(of orderedField, bound ring.Elem, n int) []ring.Elem {
	b := toFloat(of, bound)
	pivots := make([]ring.Elem, 0, n+2)
	pivots = append(pivots, of.Neg(bound))
	for i := 1; i <= n; i++ {
		theta := math.Pi * float64(i) / float64(n+1)
		x := -b * math.Cos(theta)
		rat, err := of.(ring.RationalCapable).RationalizeFloat(x)
		if err == nil {
			pivots = append(pivots, rat)
		}
	}
	pivots = append(pivots, bound)
	return pivots
}

// RealRootIsolation isolates the real roots of p (spec.md §4.5, S5): it
// square-frees p, peels off a root at zero if present, brackets the
// remaining search with Cauchy's bound, lays down Chebyshev-spaced
// candidate pivots inside that bound as a best-effort substitute for a
// companion-matrix eigenvalue estimate (SPEC_FULL.md's Open-Question
// decision), and bisects every resulting bracket using Sturm's theorem
// until each contains exactly one root.
func RealRootIsolation(p *uvpoly.Polynomial) ([]*interval.Interval, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	sf, err := SquareFreePart(p)
	if err != nil {
		return nil, errors.Wrap(err, "algebra: RealRootIsolation: square-freeing input")
	}
	of, err := asOrderedField(sf)
	if err != nil {
		return nil, err
	}
	var roots []*interval.Interval
	for sf.Degree() > 0 && of.IsZero(sf.CoeffAt(0)) {
		roots = append(roots, interval.Point(sf.R, sf.R.Zero()))
		sf, err = shiftDown(sf)
		if err != nil {
			return nil, err
		}
	}
	if sf.Degree() <= 0 {
		return roots, nil
	}
	bound, err := CauchyBound(sf)
	if err != nil {
		return nil, errors.Wrap(err, "algebra: RealRootIsolation: computing Cauchy bound")
	}
	seq, err := sturmSequence(sf)
	if err != nil {
		return nil, errors.Wrap(err, "algebra: RealRootIsolation: building Sturm sequence")
	}
	// Scale the Chebyshev pivot count with the degree (more potential real
	// roots need more candidate brackets), clamped to a sane range.
	pivotCount := mathutil.MinInt(mathutil.MaxInt(sf.Degree(), 3), 16)
	pivots := chebyshevPivots(of, bound, pivotCount)
	pivots = dedupeNonRoots(of, sf, pivots)

	// hiIsKnownRoot marks that b.hi coincides with a root already reported
	// separately as a Point interval. Sturm's theorem counts roots in the
	// half-open interval (lo, hi], so such a bracket's naturally-computed
	// count still includes that boundary root; hiIsKnownRoot tells the loop
	// to discount it rather than re-isolate (and mis-bracket) a root that
	// was already emitted.
	type bracket struct {
		lo, hi        ring.Elem
		hiIsKnownRoot bool
	}
	var work []bracket
	for i := 0; i+1 < len(pivots); i++ {
		work = append(work, bracket{lo: pivots[i], hi: pivots[i+1]})
	}

	const maxIterations = 4096
	iterations := 0
	for len(work) > 0 {
		iterations++
		if iterations > maxIterations {
			return nil, ErrNoIsolation
		}
		b := work[len(work)-1]
		work = work[:len(work)-1]
		count := signVariationsAt(of, seq, b.lo) - signVariationsAt(of, seq, b.hi)
		if b.hiIsKnownRoot {
			count--
		}
		switch {
		case count <= 0:
			continue
		case count == 1:
			roots = append(roots, interval.New(sf.R, b.lo, interval.Strict, b.hi, interval.Strict))
		default:
			sum := of.Add(b.lo, b.hi)
			mid, ok := of.Div(sum, of.FromInt64(2))
			if !ok {
				return nil, ErrZeroPolynomial
			}
			if of.IsZero(sf.Eval(mid)) {
				roots = append(roots, interval.Point(sf.R, mid))
				work = append(work,
					bracket{lo: b.lo, hi: mid, hiIsKnownRoot: true},
					bracket{lo: mid, hi: b.hi, hiIsKnownRoot: b.hiIsKnownRoot})
				continue
			}
			work = append(work,
				bracket{lo: b.lo, hi: mid},
				bracket{lo: mid, hi: b.hi, hiIsKnownRoot: b.hiIsKnownRoot})
		}
	}
	return roots, nil
}

func shiftDown(p *uvpoly.Polynomial) (*uvpoly.Polynomial, error) {
	if p.Degree() <= 0 {
		return uvpoly.Zero(p.R, p.Main), nil
	}
	return uvpoly.FromCoeffs(p.R, p.Main, p.Coeffs[1:]), nil
}

// dedupeNonRoots drops duplicate pivots and any pivot that happens to land
// exactly on a root, since Sturm counting at a root is undefined
// by the open-interval convention this function relies on.
func dedupeNonRoots(of orderedField, sf *uvpoly.Polynomial, pivots []ring.Elem) []ring.Elem {
	out := make([]ring.Elem, 0, len(pivots))
	for _, p := range pivots {
		if of.IsZero(sf.Eval(p)) {
			continue
		}
		if len(out) > 0 && of.Equal(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
