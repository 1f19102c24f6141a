package container

import (
	"fmt"
	"reflect"
	"sync"
)

// AnyType is the empty interface type, the engine's universal escape hatch:
// resolving it always succeeds with a fresh empty instance. Useful for
// generic, unconstrained dependencies.
var AnyType = reflect.TypeOf((*any)(nil)).Elem()

// emptyInstance is what resolving AnyType produces.
type emptyInstance struct{}

// factoryEntry is one memoized cache slot: either a producer for the type or
// a negative sentinel (produce == nil) with the selection failure that
// caused it.
type factoryEntry struct {
	produce func() (any, error)
	reason  error
}

// AutoContainer implements Resolver over a fixed instance pool plus
// recursive constructor-based construction.
//
// The pool is ordered, reference-deduplicated and immutable for the
// container's lifetime. Factories are built lazily per requested type and
// memoized; selection failures are memoized too, so repeated misses stay
// cheap. Explicit bindings installed with SetBinding overwrite cache
// entries, including previous negatives.
//
// When more than one pool instance is assignable to a requested type, the
// direct-match path is skipped and resolution falls through to constructor
// search — pool ambiguity is "no direct match", not an error.
type AutoContainer struct {
	selector  Selector
	instances []any
	factories sync.Map // reflect.Type → *factoryEntry
}

// New creates a container over the given instances using the process
// default selector.
func New(instances ...any) (*AutoContainer, error) {
	if instances == nil {
		instances = []any{}
	}
	return NewWithSelector(nil, instances)
}

// MustNew is New for wiring paths where a failure is fatal.
func MustNew(instances ...any) *AutoContainer {
	c, err := New(instances...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewWithSelector creates a container with an explicit selector. A nil
// selector means the process default. A nil instance slice or a nil pool
// entry is an *InvalidConfigurationError.
func NewWithSelector(sel Selector, instances []any) (*AutoContainer, error) {
	if instances == nil {
		return nil, &InvalidConfigurationError{Reason: "instance collection must not be nil"}
	}
	if sel == nil {
		sel = DefaultSelector()
	}

	pool := make([]any, 0, len(instances))
	seen := make(map[any]struct{}, len(instances))
	for i, inst := range instances {
		if isNilInstance(inst) {
			return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("instance at index %d is nil", i)}
		}
		// Duplicate references collapse to their first occurrence. Values
		// that cannot be compared have no reference identity and are kept.
		if reflect.TypeOf(inst).Comparable() {
			if _, dup := seen[inst]; dup {
				continue
			}
			seen[inst] = struct{}{}
		}
		pool = append(pool, inst)
	}

	return &AutoContainer{selector: sel, instances: pool}, nil
}

func isNilInstance(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// ── Resolver implementation ──────────────────────────────────────────────────

// CanResolve reports whether a factory exists for t. Computing and caching
// the factory is a side effect of the check; the caller only sees the bool.
func (c *AutoContainer) CanResolve(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return c.entryFor(t).produce != nil
}

// Resolve produces an instance of t, or an *UnresolvableTypeError carrying
// the underlying selection failure when there was one.
func (c *AutoContainer) Resolve(t reflect.Type) (any, error) {
	if t == nil {
		return nil, &UnresolvableTypeError{Cause: fmt.Errorf("nil type requested")}
	}
	e := c.entryFor(t)
	if e.produce == nil {
		return nil, &UnresolvableTypeError{Type: t, Cause: e.reason}
	}
	return e.produce()
}

// MergeWith returns a new resolver consulting the container first and other
// second. The container is not mutated.
func (c *AutoContainer) MergeWith(other Resolver) Resolver {
	return Merge(c, other)
}

// SetBinding computes a factory for impl via the normal construction logic
// and installs it under contract, overwriting any prior entry for that key.
// Last write wins. No instance is constructed; building stays lazy until the
// first Resolve. A previously-unresolvable contract becomes resolvable if
// impl is.
func (c *AutoContainer) SetBinding(contract, impl reflect.Type) error {
	if contract == nil || impl == nil {
		return &InvalidConfigurationError{Reason: "binding types must not be nil"}
	}
	c.factories.Store(contract, c.buildEntry(impl))
	return nil
}

// Bind is SetBinding with the types spelled as type parameters:
//
//	err := container.Bind[UserStore, *PostgresStore](c)
func Bind[C, I any](c *AutoContainer) error {
	return c.SetBinding(TypeOf[C](), TypeOf[I]())
}

// ── Factory cache ────────────────────────────────────────────────────────────

// entryFor is the get-or-compute on the factory cache. The entry is computed
// outside any lock and published with an insert-if-absent; when two
// goroutines race on the same uncached type both compute, one result is
// retained, and both observe an equivalent entry. That is safe because
// building an entry is a pure function of (type, pool, selector, bindings).
func (c *AutoContainer) entryFor(t reflect.Type) *factoryEntry {
	if e, ok := c.factories.Load(t); ok {
		return e.(*factoryEntry)
	}
	e := c.buildEntry(t)
	actual, _ := c.factories.LoadOrStore(t, e)
	return actual.(*factoryEntry)
}

// buildEntry computes the factory for t: universal type first, then the
// direct pool match, then constructor search.
func (c *AutoContainer) buildEntry(t reflect.Type) *factoryEntry {
	if t == AnyType {
		return &factoryEntry{produce: func() (any, error) {
			return &emptyInstance{}, nil
		}}
	}

	if inst, ok := c.soleInstanceOf(t); ok {
		return &factoryEntry{produce: func() (any, error) {
			return inst, nil
		}}
	}

	ctor, err := c.selector.Select(t, c)
	if err != nil {
		return &factoryEntry{reason: err}
	}
	return &factoryEntry{produce: c.constructorFactory(ctor)}
}

// soleInstanceOf returns the pool instance assignable to t when exactly one
// exists. Zero or several matches both report false.
func (c *AutoContainer) soleInstanceOf(t reflect.Type) (any, bool) {
	var match any
	found := 0
	for _, inst := range c.instances {
		if reflect.TypeOf(inst).AssignableTo(t) {
			match = inst
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return nil, false
}

// constructorFactory builds the producer for a selected constructor. Each
// invocation evaluates the parameters fresh: resolvable parameters go
// through the container recursively, the rest use their declared defaults.
func (c *AutoContainer) constructorFactory(ctor *Constructor) func() (any, error) {
	return func() (any, error) {
		args := make([]reflect.Value, len(ctor.Params))
		for i, p := range ctor.Params {
			if p.HasDefault && !c.CanResolve(p.Type) {
				args[i] = p.defaultValue()
				continue
			}
			v, err := c.Resolve(p.Type)
			if err != nil {
				return nil, err
			}
			rv := reflect.ValueOf(v)
			if !rv.IsValid() {
				rv = reflect.Zero(p.Type)
			}
			args[i] = rv
		}
		return ctor.call(args)
	}
}
