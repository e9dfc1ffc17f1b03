// Package termaddition implements the term-addition manager (C5):
// concurrency-safe scratch buckets, indexed by monomial pool id, that
// accumulate terms during sum/product and then emit an ordered, zero-free
// term vector. Squaring and dense products create many colliding
// monomials; the scratch map collapses duplicates in O(1) per term by the
// monomial's pool id, turning an O(n^2) naive sum into O(n). This is the
// one component of the kernel with deliberately preserved process-wide
// mutable state (spec.md §9); the free list itself is a
// github.com/hashicorp/golang-lru/v2 cache keyed by release sequence
// number, so the cache's own recency-based eviction - not a parallel
// slice-shift - decides which idle scratch context gets dropped once the
// list is at capacity.
package termaddition

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/term"
)

type bucket struct {
	has   bool
	coeff ring.Elem
	mono  *monomial.Monomial
}

// Context is an acquired scratch slot. It is exclusive to its acquirer
// until released; it must not be shared across goroutines.
type Context struct {
	r       ring.Ring
	ord     order.Ordering
	buckets []bucket
	dirty   []int64
	leadID  int64
	hasLead bool
}

func newContext(size int) *Context {
	return &Context{buckets: make([]bucket, size), leadID: -1}
}

func (c *Context) reset(r ring.Ring, ord order.Ordering) {
	for _, id := range c.dirty {
		c.buckets[id] = bucket{}
	}
	c.dirty = c.dirty[:0]
	c.leadID = -1
	c.hasLead = false
	c.r = r
	c.ord = ord
}

func (c *Context) ensureCapacity(id int64) {
	if int(id) < len(c.buckets) {
		return
	}
	grown := make([]bucket, id+1)
	copy(grown, c.buckets)
	c.buckets = grown
}

func monoOf(m *monomial.Monomial) (int64, *monomial.Monomial, int, []order.Pair) {
	// The unit monomial shares bucket 0 with the constant (⊥) term and is
	// stored as nil so constant terms always read back with Mono == nil.
	if m == nil || m.IsOne() {
		return 0, nil, 0, nil
	}
	return m.ID(), m, m.TotalDegree(), m.Pairs()
}

// AddTerm accumulates t into the slot at t.Mono's pool id, adding to any
// existing accumulated coefficient. ordered hints that terms are being fed
// in ordering-compatible sequence (a pure documentation/optimization hint
// in this implementation, since the dense-by-id bucket array makes the
// insertion O(1) regardless). When updateBound is true, the context's
// tracked leading-term bound is updated incrementally under ord.
func (c *Context) AddTerm(t term.Term, ordered, updateBound bool) {
	_ = ordered
	id, mono, _, _ := monoOf(t.Mono)
	c.ensureCapacity(id)
	b := &c.buckets[id]
	if !b.has {
		*b = bucket{has: true, coeff: t.Coeff, mono: mono}
		c.dirty = append(c.dirty, id)
	} else {
		b.coeff = c.r.Add(b.coeff, t.Coeff)
	}
	if updateBound {
		c.updateLead(id)
	}
}

func (c *Context) updateLead(id int64) {
	if !c.hasLead {
		c.leadID = id
		c.hasLead = true
		return
	}
	if c.less(c.leadID, id) {
		c.leadID = id
	}
}

func (c *Context) less(aID, bID int64) bool {
	aDeg, aPairs := degreeAndPairs(c.buckets[aID].mono)
	bDeg, bPairs := degreeAndPairs(c.buckets[bID].mono)
	return c.ord.Compare(aDeg, aPairs, bDeg, bPairs) < 0
}

func degreeAndPairs(m *monomial.Monomial) (int, []order.Pair) {
	if m == nil {
		return 0, nil
	}
	return m.TotalDegree(), m.Pairs()
}

// MaxTerm extracts and removes the bucket holding the current leading
// term under the active ordering, skipping any zero-coefficient buckets
// it encounters. Returns (term, false) if no non-zero term remains.
func (c *Context) MaxTerm() (term.Term, bool) {
	best := int64(-1)
	for _, id := range c.dirty {
		b := &c.buckets[id]
		if !b.has || c.r.IsZero(b.coeff) {
			continue
		}
		if best == -1 || c.less(best, id) {
			best = id
		}
	}
	if best == -1 {
		return term.Term{}, false
	}
	b := c.buckets[best]
	c.buckets[best] = bucket{}
	if c.hasLead && c.leadID == best {
		c.hasLead = false
	}
	return term.Term{Coeff: b.coeff, Mono: b.mono}, true
}

// ReadTerms drains every accumulated non-zero term into a freshly allocated
// slice, sorted ascending under the active ordering (ordering-compatible
// sequence, per spec.md), then clears the context's dirty state. It does
// NOT release the context back to the manager; call Manager.Release for
// that once the caller is done reusing it, or rely on a single
// Acquire/ReadTerms/Release cycle per operation.
func (c *Context) ReadTerms() []term.Term {
	out := make([]term.Term, 0, len(c.dirty))
	for _, id := range c.dirty {
		b := c.buckets[id]
		if b.has && !c.r.IsZero(b.coeff) {
			out = append(out, term.Term{Coeff: b.coeff, Mono: b.mono})
		}
	}
	sortTerms(out, c.ord)
	c.reset(c.r, c.ord)
	return out
}

func sortTerms(ts []term.Term, ord order.Ordering) {
	// insertion sort: term counts inside a single product/sum are small
	// relative to the cost of the ring arithmetic that produced them, and
	// this keeps the manager dependency-free of a generic sort closure
	// allocation per call.
	for i := 1; i < len(ts); i++ {
		j := i
		for j > 0 && compareTerms(ts[j-1], ts[j], ord) > 0 {
			ts[j-1], ts[j] = ts[j], ts[j-1]
			j--
		}
	}
}

func compareTerms(a, b term.Term, ord order.Ordering) int {
	aDeg, aPairs := degreeAndPairs(a.Mono)
	bDeg, bPairs := degreeAndPairs(b.Mono)
	return ord.Compare(aDeg, aPairs, bDeg, bPairs)
}

// Manager owns a process-wide free list of scratch contexts, backed by an
// LRU cache keyed by release sequence number. Acquire and Release are the
// only synchronized points; using an acquired context is exclusive to the
// caller.
type Manager struct {
	mu   sync.Mutex
	free *lru.Cache[int64, *Context]
	seq  int64
}

// NewManager creates a manager bounding its free list to maxFree idle
// scratch contexts; once at capacity, the cache evicts the
// least-recently-released context to make room for the next one.
func NewManager(maxFree int) *Manager {
	if maxFree < 1 {
		maxFree = 1
	}
	cache, _ := lru.New[int64, *Context](maxFree)
	return &Manager{free: cache}
}

// Acquire reserves a scratch slot sized to at least pool.LargestID()+1 so
// every live monomial id has a bucket, reusing a free slot when one of
// sufficient capacity is available. Peek (not Get) is used while scanning
// so a context that doesn't fit isn't promoted to most-recently-used by
// the act of considering it.
func (m *Manager) Acquire(pool *monomial.Pool, r ring.Ring, ord order.Ordering, expectedSize int) *Context {
	needed := int(pool.LargestID()) + 1
	if expectedSize > needed {
		needed = expectedSize
	}
	m.mu.Lock()
	var ctx *Context
	for _, key := range m.free.Keys() {
		c, ok := m.free.Peek(key)
		if !ok {
			continue
		}
		if len(c.buckets) >= needed {
			ctx = c
			m.free.Remove(key)
			break
		}
	}
	m.mu.Unlock()
	if ctx == nil {
		ctx = newContext(needed)
	}
	ctx.reset(r, ord)
	return ctx
}

// Release returns ctx to the free list under a fresh sequence-number key;
// once the cache is at capacity, adding a new entry evicts the
// least-recently-released context via the cache's own LRU policy rather
// than a parallel bookkeeping structure.
func (m *Manager) Release(ctx *Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.free.Add(m.seq, ctx)
}

var global = NewManager(64)

// Global returns the process-wide term-addition manager.
func Global() *Manager { return global }
