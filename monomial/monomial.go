// Package monomial implements the hash-consed monomial pool (C2): an
// ordered product of (variable, positive exponent) pairs, canonicalized so
// that structural equality reduces to pool-id equality. The pool mirrors
// Erigon's pattern of a single mutex-guarded authority handing out stable
// small integer identities (its KV table/bucket registry), generalized here
// to build and intern values instead of naming fixed constants, plus
// golang.org/x/sync/singleflight to coalesce concurrent builds of the same
// not-yet-interned exponent vector and github.com/holiman/uint256 to fold
// the exponent vector into a structural hash stored on each monomial. Pool
// lookup itself goes by the exact exponent-vector key, not by that hash.
package monomial

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/polyalg/kernel/internal/logging"
	"github.com/polyalg/kernel/order"
)

// ErrZeroExponent is a precondition violation: every exponent in a monomial
// must be strictly positive.
var ErrZeroExponent = errors.New("monomial: exponent must be >= 1")

// ErrDuplicateVariable is a precondition violation: a monomial's pairs must
// be strictly ascending by variable id.
var ErrDuplicateVariable = errors.New("monomial: duplicate variable in exponent vector")

// Monomial is an immutable, pool-owned product of (variable, exponent)
// pairs. Two monomials are equal iff their pool-assigned ids are equal.
type Monomial struct {
	id     int64
	pairs  []order.Pair // strictly ascending by VarID, no zero exponents
	degree int
	hash   uint64
	refs   atomic.Int32
}

// ID returns the pool-assigned canonical integer id. The distinguished
// "one" monomial (empty exponent vector, representing the constant factor
// 1) always has id 0.
func (m *Monomial) ID() int64 { return m.id }

// Pairs returns the monomial's exponent vector, ascending by variable id.
// The returned slice must not be mutated by callers.
func (m *Monomial) Pairs() []order.Pair { return m.pairs }

// TotalDegree returns the sum of exponents.
func (m *Monomial) TotalDegree() int { return m.degree }

// Hash returns the structural hash computed when m was interned; the pool
// does not use it for lookup. It is not part of the equality contract (id equality is);
// it is exposed read-only for callers building their own auxiliary indexes.
func (m *Monomial) Hash() uint64 { return m.hash }

// IsOne reports whether m is the empty-product monomial (empty exponent
// vector, standing in for "no monomial" / the multiplicative identity).
func (m *Monomial) IsOne() bool { return len(m.pairs) == 0 }

// ExpOf returns the exponent of varID in m, or 0 if varID does not occur.
func (m *Monomial) ExpOf(varID uint64) uint32 {
	for _, p := range m.pairs {
		if p.VarID == varID {
			return p.Exp
		}
		if p.VarID > varID {
			break
		}
	}
	return 0
}

// Has reports whether varID occurs in m with positive exponent.
func (m *Monomial) Has(varID uint64) bool { return m.ExpOf(varID) > 0 }

// Less compares m and o under ordering ord.
func (m *Monomial) Less(ord order.Ordering, o *Monomial) bool {
	return ord.Compare(m.degree, m.pairs, o.degree, o.pairs) < 0
}

// Compare returns -1, 0 or 1 comparing m and o under ord.
func (m *Monomial) Compare(ord order.Ordering, o *Monomial) int {
	return ord.Compare(m.degree, m.pairs, o.degree, o.pairs)
}

// Equal reports identity equality (pool id equality).
func (m *Monomial) Equal(o *Monomial) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.id == o.id
}

func (m *Monomial) String() string {
	if m.IsOne() {
		return "1"
	}
	parts := make([]string, 0, len(m.pairs))
	for _, p := range m.pairs {
		if p.Exp == 1 {
			parts = append(parts, fmt.Sprintf("v%d", p.VarID))
		} else {
			parts = append(parts, fmt.Sprintf("v%d^%d", p.VarID, p.Exp))
		}
	}
	return strings.Join(parts, "·")
}

func keyOf(pairs []order.Pair) string {
	var sb strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&sb, "%d:%d;", p.VarID, p.Exp)
	}
	return sb.String()
}

func structuralHash(pairs []order.Pair) uint64 {
	acc := new(uint256.Int)
	prime := uint256.NewInt(1099511628211) // FNV-ish odd constant
	tmp := new(uint256.Int)
	for _, p := range pairs {
		tmp.SetUint64(p.VarID)
		acc.Add(acc, tmp)
		acc.Mul(acc, prime)
		tmp.SetUint64(uint64(p.Exp))
		acc.Add(acc, tmp)
		acc.Mul(acc, prime)
	}
	return acc.Uint64()
}

// Pool hands out shared, canonical monomials: equality equals id equality.
// All mutating operations take the pool mutex; reads of an already-returned
// Monomial's immutable fields are lock-free.
type Pool struct {
	mu      sync.Mutex
	byKey   map[string]*Monomial
	byID    map[int64]*Monomial
	freeIDs []int64
	nextID  int64
	sf      singleflight.Group
	log     *zap.SugaredLogger
}

// NewPool creates an empty pool. Id 0 is reserved for the "one" monomial,
// which is always present and never freed.
func NewPool() *Pool {
	return NewPoolWithLogger(nil)
}

// NewPoolWithLogger creates an empty pool that reports each newly-interned
// monomial (a cache miss growing the pool) to log, falling back to a no-op
// logger when log is nil.
func NewPoolWithLogger(log *zap.SugaredLogger) *Pool {
	p := &Pool{
		byKey:  make(map[string]*Monomial),
		byID:   make(map[int64]*Monomial),
		nextID: 1,
		log:    logging.OrNoOp(log),
	}
	one := &Monomial{id: 0, pairs: nil, degree: 0, hash: structuralHash(nil)}
	p.byKey[keyOf(nil)] = one
	p.byID[0] = one
	return p
}

// One returns the canonical "one" monomial (empty exponent vector).
func (p *Pool) One() *Monomial {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.byID[0]
}

func validate(pairs []order.Pair) error {
	for i, pr := range pairs {
		if pr.Exp == 0 {
			return ErrZeroExponent
		}
		if i > 0 && pairs[i-1].VarID >= pr.VarID {
			return ErrDuplicateVariable
		}
	}
	return nil
}

// Create interns an exponent vector, which must already be strictly
// ascending by variable id with all exponents >= 1. Returns the canonical
// shared instance, building it only if absent.
func (p *Pool) Create(pairs []order.Pair) (*Monomial, error) {
	if err := validate(pairs); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return p.One(), nil
	}
	key := keyOf(pairs)

	v, err, _ := p.sf.Do(key, func() (any, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if existing, ok := p.byKey[key]; ok {
			existing.refs.Add(1)
			return existing, nil
		}
		owned := make([]order.Pair, len(pairs))
		copy(owned, pairs)
		degree := 0
		for _, pr := range owned {
			degree += int(pr.Exp)
		}
		id := p.allocID()
		m := &Monomial{id: id, pairs: owned, degree: degree, hash: structuralHash(owned)}
		m.refs.Store(1)
		p.byKey[key] = m
		p.byID[id] = m
		p.log.Debugw("monomial pool grew", "id", id, "degree", degree, "poolSize", len(p.byID))
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Monomial), nil
}

// CreateUnsorted sorts pairs by VarID (sort.Slice, not stable), sums the
// exponents of repeated variables, and interns the result. This is the
// initializer-list entry point spec.md allows to accept unsorted input.
func (p *Pool) CreateUnsorted(pairs []order.Pair) (*Monomial, error) {
	cp := make([]order.Pair, len(pairs))
	copy(cp, pairs)
	sort.Slice(cp, func(i, j int) bool { return cp[i].VarID < cp[j].VarID })
	// collapse accidental duplicate variables by summing exponents, since
	// an initializer list of pairs is not required to be pre-collapsed.
	out := cp[:0:0]
	for _, pr := range cp {
		if n := len(out); n > 0 && out[n-1].VarID == pr.VarID {
			out[n-1].Exp += pr.Exp
			continue
		}
		out = append(out, pr)
	}
	return p.Create(out)
}

// CreateVar interns the single-variable monomial varID^exp.
func (p *Pool) CreateVar(varID uint64, exp uint32) (*Monomial, error) {
	if exp == 0 {
		return nil, ErrZeroExponent
	}
	return p.Create([]order.Pair{{VarID: varID, Exp: exp}})
}

func (p *Pool) allocID() int64 {
	if n := len(p.freeIDs); n > 0 {
		id := p.freeIDs[n-1]
		p.freeIDs = p.freeIDs[:n-1]
		return id
	}
	id := p.nextID
	p.nextID++
	return id
}

// Retain increments m's logical reference count. Every term that stores m
// should retain it; the pool's Free is only meaningful once every retainer
// has released.
func (p *Pool) Retain(m *Monomial) {
	if m == nil || m.IsOne() {
		return
	}
	m.refs.Add(1)
}

// Release decrements m's logical reference count, invoked by the last
// releaser of a monomial. Once the count reaches zero the pool removes the
// entry and returns its id to the allocator.
func (p *Pool) Release(m *Monomial) {
	if m == nil || m.IsOne() {
		return
	}
	if m.refs.Add(-1) > 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if cur, ok := p.byID[m.id]; ok && cur == m {
		delete(p.byID, m.id)
		delete(p.byKey, keyOf(m.pairs))
		p.freeIDs = append(p.freeIDs, m.id)
	}
}

// Size returns the number of live (interned, non-freed) monomials,
// including the "one" monomial.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byID)
}

// LargestID returns the largest id ever handed out (freed ids are not
// excluded), sized to let C5's scratch buffers be preallocated.
func (p *Pool) LargestID() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nextID - 1
}

var global = NewPool()

// Global returns the process-wide monomial pool.
func Global() *Pool { return global }

// Create interns pairs in the global pool.
func Create(pairs []order.Pair) (*Monomial, error) { return global.Create(pairs) }

// CreateUnsorted sorts and interns pairs in the global pool.
func CreateUnsorted(pairs []order.Pair) (*Monomial, error) { return global.CreateUnsorted(pairs) }

// CreateVar interns the single-variable monomial varID^exp in the global pool.
func CreateVar(varID uint64, exp uint32) (*Monomial, error) { return global.CreateVar(varID, exp) }

// One returns the global pool's canonical "one" monomial.
func One() *Monomial { return global.One() }

// Mul returns the canonical monomial a*b, interning the merged exponent
// vector in p.
func (p *Pool) Mul(a, b *Monomial) (*Monomial, error) {
	merged := mergeExponents(a.pairs, b.pairs, func(x, y uint32) uint32 { return x + y }, false)
	return p.Create(merged)
}

// GCD returns the canonical monomial gcd(a, b): the pointwise minimum
// exponent over shared variables (GCD_Monomial, see SPEC_FULL.md
// supplemented feature 2).
func (p *Pool) GCD(a, b *Monomial) (*Monomial, error) {
	merged := mergeExponents(a.pairs, b.pairs, minExp, true)
	return p.Create(merged)
}

// LCM returns the canonical monomial lcm(a, b): the pointwise maximum
// exponent over the union of variables.
func (p *Pool) LCM(a, b *Monomial) (*Monomial, error) {
	merged := mergeExponents(a.pairs, b.pairs, func(x, y uint32) uint32 { return max32(x, y) }, false)
	return p.Create(merged)
}

// Divides reports whether a divides b, i.e. every exponent of a is <= the
// corresponding exponent of b.
func Divides(a, b *Monomial) bool {
	for _, pr := range a.pairs {
		if b.ExpOf(pr.VarID) < pr.Exp {
			return false
		}
	}
	return true
}

// Div returns b/a and true if a divides b, otherwise (nil, false).
func (p *Pool) Div(b, a *Monomial) (*Monomial, bool, error) {
	if !Divides(a, b) {
		return nil, false, nil
	}
	out := make([]order.Pair, 0, len(b.pairs))
	for _, pr := range b.pairs {
		rem := pr.Exp - a.ExpOf(pr.VarID)
		if rem > 0 {
			out = append(out, order.Pair{VarID: pr.VarID, Exp: rem})
		}
	}
	m, err := p.Create(out)
	return m, true, err
}

func minExp(x, y uint32) uint32 {
	if x < y {
		return x
	}
	return y
}

func max32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

// mergeExponents walks two ascending pair slices and combines per-variable
// exponents with combine. When intersectOnly is true, variables present in
// only one operand are dropped (used by GCD, where an absent variable
// contributes exponent 0 to the minimum).
func mergeExponents(a, b []order.Pair, combine func(x, y uint32) uint32, intersectOnly bool) []order.Pair {
	out := make([]order.Pair, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].VarID == b[j].VarID:
			if e := combine(a[i].Exp, b[j].Exp); e > 0 {
				out = append(out, order.Pair{VarID: a[i].VarID, Exp: e})
			}
			i++
			j++
		case a[i].VarID < b[j].VarID:
			if !intersectOnly {
				if e := combine(a[i].Exp, 0); e > 0 {
					out = append(out, order.Pair{VarID: a[i].VarID, Exp: e})
				}
			}
			i++
		default:
			if !intersectOnly {
				if e := combine(0, b[j].Exp); e > 0 {
					out = append(out, order.Pair{VarID: b[j].VarID, Exp: e})
				}
			}
			j++
		}
	}
	if !intersectOnly {
		for ; i < len(a); i++ {
			if e := combine(a[i].Exp, 0); e > 0 {
				out = append(out, order.Pair{VarID: a[i].VarID, Exp: e})
			}
		}
		for ; j < len(b); j++ {
			if e := combine(0, b[j].Exp); e > 0 {
				out = append(out, order.Pair{VarID: b[j].VarID, Exp: e})
			}
		}
	}
	return out
}

// Mul, GCD and LCM on the global pool.
func Mul(a, b *Monomial) (*Monomial, error) { return global.Mul(a, b) }
func GCD(a, b *Monomial) (*Monomial, error) { return global.GCD(a, b) }
func LCM(a, b *Monomial) (*Monomial, error) { return global.LCM(a, b) }
