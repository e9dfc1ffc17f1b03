// Package variable implements the process-wide variable registry (C1): an
// opaque-handle pool producing variables with a type tag and a stable total
// order, mirroring the registry pattern Erigon uses for its KV table
// namespace (a single mutex-guarded authority handing out stable
// identities) but keyed by an incrementing id allocator instead of fixed
// string constants.
package variable

import (
	"fmt"
	"sync"

	"github.com/google/btree"

	"github.com/polyalg/kernel/internal/mathutil"
)

// ErrIDSpaceExhausted is a resource-exhaustion failure (spec.md §7 kind 4):
// the registry's id allocator cannot hand out another id without
// overflowing uint64. In practice this requires allocating more than
// 2^64-1 variables in one process and is unreachable in any real run; the
// check exists so the allocator has a defined failure mode rather than
// silently wrapping around to a reused id.
var ErrIDSpaceExhausted = fmt.Errorf("variable: id space exhausted")

// Type tags the domain a variable ranges over.
type Type int

const (
	Boolean Type = iota
	Integer
	Real
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "Bool"
	case Integer:
		return "Int"
	case Real:
		return "Real"
	default:
		return "Unknown"
	}
}

// Variable is an opaque, immutable handle. Equality and ordering are by id;
// the zero Variable is the reserved null-variable.
type Variable struct {
	id   uint64
	kind Type
}

// Null is the distinguished null-variable value.
var Null = Variable{}

// ID returns the globally unique integer id. Null variables report 0.
func (v Variable) ID() uint64 { return v.id }

// Kind returns the type tag.
func (v Variable) Kind() Type { return v.kind }

// IsNull reports whether v is the reserved null-variable.
func (v Variable) IsNull() bool { return v.id == 0 }

// Equal reports id equality.
func (v Variable) Equal(o Variable) bool { return v.id == o.id }

// Less orders by id; this is the variable registry's stable total order.
func (v Variable) Less(o Variable) bool { return v.id < o.id }

// Cmp returns -1, 0 or 1 comparing v and o by id.
func (v Variable) Cmp(o Variable) int {
	switch {
	case v.id < o.id:
		return -1
	case v.id > o.id:
		return 1
	default:
		return 0
	}
}

// Name returns the variable's external name, or its synthesized "v<id>"
// form if it was created without one.
func (v Variable) Name() string {
	if v.IsNull() {
		return "<null>"
	}
	if name, ok := globalRegistry.lookupName(v.id); ok {
		return name
	}
	return fmt.Sprintf("v%d", v.id)
}

func (v Variable) String() string { return v.Name() }

// Registry is a process-wide pool of variables. The zero value is not
// usable; construct with NewRegistry. A single process-wide instance
// (globalRegistry) backs the package-level New/Lookup functions, matching
// spec.md's "process-wide pool" requirement, but tests may construct their
// own Registry for isolation.
type Registry struct {
	mu      sync.Mutex
	nextID  uint64
	names   map[uint64]string
	byID    map[uint64]Variable
	ordered *btree.BTreeG[Variable]
}

// NewRegistry creates an empty registry. Id allocation starts at 1; 0 is
// reserved for the null-variable.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		names:  make(map[uint64]string),
		byID:   make(map[uint64]Variable),
		ordered: btree.NewG(32, func(a, b Variable) bool {
			return a.Less(b)
		}),
	}
}

// New allocates a fresh variable of the given kind, optionally named.
func (r *Registry) New(kind Type, name string) Variable {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := Variable{id: r.nextID, kind: kind}
	next, overflowed := mathutil.SafeAddUint64(r.nextID, 1)
	if overflowed {
		panic(ErrIDSpaceExhausted)
	}
	r.nextID = next
	if name != "" {
		r.names[v.id] = name
	}
	r.byID[v.id] = v
	r.ordered.ReplaceOrInsert(v)
	return v
}

func (r *Registry) lookupName(id uint64) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.names[id]
	return name, ok
}

// Lookup returns the variable previously allocated with the given id, if
// any live variable has it.
func (r *Registry) Lookup(id uint64) (Variable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	return v, ok
}

// Size returns the number of live variables in the registry.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ordered.Len()
}

// Ascending calls fn for every live variable in ascending id order, stopping
// early if fn returns false. This backs algorithms that need the registry's
// stable total order (e.g. choosing a default main-variable preference).
func (r *Registry) Ascending(fn func(Variable) bool) {
	r.mu.Lock()
	snapshot := make([]Variable, 0, r.ordered.Len())
	r.ordered.Ascend(func(v Variable) bool {
		snapshot = append(snapshot, v)
		return true
	})
	r.mu.Unlock()
	for _, v := range snapshot {
		if !fn(v) {
			return
		}
	}
}

var globalRegistry = NewRegistry()

// New allocates a fresh variable from the global registry.
func New(kind Type, name string) Variable {
	return globalRegistry.New(kind, name)
}

// NewBoolean, NewInteger and NewReal are convenience wrappers around New.
func NewBoolean(name string) Variable { return New(Boolean, name) }
func NewInteger(name string) Variable { return New(Integer, name) }
func NewReal(name string) Variable    { return New(Real, name) }

// Lookup returns the variable previously allocated with the given id from
// the global registry, if any live variable has it.
func Lookup(id uint64) (Variable, bool) { return globalRegistry.Lookup(id) }
