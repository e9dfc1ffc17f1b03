package algebra

import (
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
)

// toRationalCoeffs views p's coefficients through ring.Q when p.R is not
// already a Field. This relies on ring.RationalField accepting *big.Int
// elements directly (ring/rational.go's asRat switches on *big.Int), so an
// ring.Z-coefficient polynomial can be reinterpreted as a ring.Q one
// without copying or converting a single coefficient - the resultant and
// discriminant, which need exact division to build the Sylvester
// determinant, are defined identically over the fraction field.
func toRationalCoeffs(p *uvpoly.Polynomial) *uvpoly.Polynomial {
	if _, ok := p.R.(ring.Field); ok {
		return p
	}
	return uvpoly.FromCoeffs(ring.Q, p.Main, p.Coeffs)
}

// sylvesterMatrix builds the (m+n)x(m+n) Sylvester matrix of a (degree m)
// and b (degree n): n shifted copies of a's coefficients followed by m
// shifted copies of b's, row-major, highest degree first.
func sylvesterMatrix(a, b *uvpoly.Polynomial) [][]ring.Elem {
	m, n := a.Degree(), b.Degree()
	size := m + n
	r := a.R
	mat := make([][]ring.Elem, size)
	for i := range mat {
		row := make([]ring.Elem, size)
		for j := range row {
			row[j] = r.Zero()
		}
		mat[i] = row
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= m; j++ {
			mat[i][i+j] = a.CoeffAt(m - j)
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= n; j++ {
			mat[n+i][i+j] = b.CoeffAt(n - j)
		}
	}
	return mat
}

// determinant computes det(mat) over a Field via Gaussian elimination
// with partial pivoting (any non-zero pivot; the field need not be
// ordered so "partial" here means "first non-zero", not "largest
// magnitude").
func determinant(r ring.Ring, mat [][]ring.Elem) (ring.Elem, error) {
	field, ok := r.(ring.Field)
	if !ok {
		return nil, ErrNotEuclideanDomain
	}
	n := len(mat)
	a := make([][]ring.Elem, n)
	for i := range mat {
		a[i] = append([]ring.Elem(nil), mat[i]...)
	}
	det := r.One()
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !r.IsZero(a[row][col]) {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return r.Zero(), nil
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = r.Neg(det)
		}
		det = r.Mul(det, a[col][col])
		invPivot, _ := field.Inv(a[col][col])
		for row := col + 1; row < n; row++ {
			if r.IsZero(a[row][col]) {
				continue
			}
			factor := r.Mul(a[row][col], invPivot)
			for k := col; k < n; k++ {
				a[row][k] = ring.Sub(r, a[row][k], r.Mul(factor, a[col][k]))
			}
		}
	}
	return det, nil
}

// Resultant computes Res(a, b) via the determinant of the Sylvester matrix
// (spec.md §4.5's "Sylvester/subresultant chain", restated in its
// determinant form rather than the recursive subresultant-PRS form -
// equivalent, and simpler to state correctly over a field). Two constant
// inputs (degree 0) yield the conventional empty-product resultant of 1;
// a constant c against a polynomial of degree m yields c^m.
func Resultant(a, b *uvpoly.Polynomial) (ring.Elem, error) {
	if err := sameMain(a, b); err != nil {
		return nil, err
	}
	if a.IsZero() || b.IsZero() {
		return ring.Q.Zero(), nil
	}
	fa, fb := toRationalCoeffs(a), toRationalCoeffs(b)
	if fa.Degree() == 0 && fb.Degree() == 0 {
		return fa.R.One(), nil
	}
	if fb.Degree() == 0 {
		return ring.Pow(fb.R, fb.CoeffAt(0), fa.Degree()), nil
	}
	if fa.Degree() == 0 {
		return ring.Pow(fa.R, fa.CoeffAt(0), fb.Degree()), nil
	}
	mat := sylvesterMatrix(fa, fb)
	return determinant(fa.R, mat)
}

func sameMain(a, b *uvpoly.Polynomial) error {
	if !a.Main.Equal(b.Main) {
		return uvpoly.ErrMainVariableMismatch
	}
	return nil
}

// Discriminant computes disc(p) = (-1)^(d(d-1)/2) * Res(p, p') / lc(p),
// d = deg(p), per spec.md §4.5.
func Discriminant(p *uvpoly.Polynomial) (ring.Elem, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	d := p.Degree()
	if d == 0 {
		return p.R.One(), nil
	}
	deriv, err := p.Derivative(1)
	if err != nil {
		return nil, err
	}
	res, err := Resultant(p, deriv)
	if err != nil {
		return nil, err
	}
	fp := toRationalCoeffs(p)
	lc, _ := fp.LeadingCoeff()
	field := fp.R.(ring.Field)
	quot, ok := field.Div(res, lc)
	if !ok {
		return nil, ErrNotEuclideanDomain
	}
	if (d*(d-1)/2)%2 != 0 {
		quot = fp.R.Neg(quot)
	}
	return quot, nil
}
