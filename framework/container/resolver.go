package container

import (
	"fmt"
	"reflect"
)

// Resolver is the capability contract the whole engine is built around:
// "can an instance of type t be produced, and if so, produce it."
// AutoContainer implements it; Merge composes two implementations into one.
type Resolver interface {
	// CanResolve reports whether an instance of t can be produced.
	// It never fails; internal caching is not observable to the caller.
	CanResolve(t reflect.Type) bool

	// Resolve produces an instance of t, or an *UnresolvableTypeError.
	Resolve(t reflect.Type) (any, error)

	// MergeWith returns a new resolver that consults the receiver first and
	// other second. Neither input is mutated.
	MergeWith(other Resolver) Resolver
}

// Merge composes two resolvers with primary-first precedence. A nil
// secondary adds no capability, so the primary is returned unchanged (and
// vice versa).
func Merge(primary, secondary Resolver) Resolver {
	if secondary == nil {
		return primary
	}
	if primary == nil {
		return secondary
	}
	return &mergedResolver{primary: primary, secondary: secondary}
}

// mergedResolver delegates to its primary, falling back to the secondary
// only when the primary cannot resolve the requested type.
type mergedResolver struct {
	primary   Resolver
	secondary Resolver
}

func (m *mergedResolver) CanResolve(t reflect.Type) bool {
	return m.primary.CanResolve(t) || m.secondary.CanResolve(t)
}

func (m *mergedResolver) Resolve(t reflect.Type) (any, error) {
	if m.primary.CanResolve(t) {
		return m.primary.Resolve(t)
	}
	if m.secondary.CanResolve(t) {
		return m.secondary.Resolve(t)
	}
	return nil, &UnresolvableTypeError{Type: t}
}

// MergeWith keeps chains associating left-to-right: the existing merged
// resolver becomes the primary of the new one.
func (m *mergedResolver) MergeWith(other Resolver) Resolver {
	return Merge(m, other)
}

// TypeOf returns the reflect.Type for T. Works for interface types too,
// unlike reflect.TypeOf on a value:
//
//	t := container.TypeOf[UserStore]()
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ResolveAs resolves T from r and type-asserts the result.
//
//	svc, err := container.ResolveAs[*UserService](c)
func ResolveAs[T any](r Resolver) (T, error) {
	var zero T
	t := TypeOf[T]()
	v, err := r.Resolve(t)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, &UnresolvableTypeError{
			Type:  t,
			Cause: fmt.Errorf("resolved value has type %T", v),
		}
	}
	return out, nil
}

// MustResolveAs is ResolveAs for wiring paths where a failure is fatal.
func MustResolveAs[T any](r Resolver) T {
	v, err := ResolveAs[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
