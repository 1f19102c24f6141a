package container_test

import (
	"reflect"

	"github.com/weld-framework/weld/framework/container"
)

// ── Shared test graph ────────────────────────────────────────────────────────

// Four distinct resolvable service contracts.
type ServiceA interface{ TagA() }
type ServiceB interface{ TagB() }
type ServiceC interface{ TagC() }
type ServiceD interface{ TagD() }

type implA struct{ id string }

func (*implA) TagA() {}

// implA2 is a second ServiceA implementation, used to exercise pool
// ambiguity and binding overrides.
type implA2 struct{ id string }

func (*implA2) TagA() {}

type implB struct{ id string }

func (*implB) TagB() {}

type implC struct{ id string }

func (*implC) TagC() {}

type implD struct{ id string }

func (*implD) TagD() {}

// Widget is the auto-wired target type used across the tests. Each
// constructor stamps how it was wired.
type Widget struct {
	via    string
	a      ServiceA
	b      ServiceB
	c      ServiceC
	d      ServiceD
	locale string
}

func newWidgetAB(a ServiceA, b ServiceB) *Widget {
	return &Widget{via: "ab", a: a, b: b}
}

func newWidgetCD(c ServiceC, d ServiceD) *Widget {
	return &Widget{via: "cd", c: c, d: d}
}

func newWidgetC(c ServiceC) *Widget {
	return &Widget{via: "c", c: c}
}

func newWidgetABCount(a ServiceA, b ServiceB, n int) *Widget {
	return &Widget{via: "ab+count", a: a, b: b}
}

func newWidgetLocale(a ServiceA, locale string) *Widget {
	return &Widget{via: "locale", a: a, locale: locale}
}

// ── Stub resolver ────────────────────────────────────────────────────────────

// stubResolver answers the resolvability oracle from a fixed type-to-value
// table; it stands in for a container in selector tests.
type stubResolver struct {
	values map[reflect.Type]any
}

func resolving(pairs ...any) *stubResolver {
	s := &stubResolver{values: make(map[reflect.Type]any)}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.values[pairs[i].(reflect.Type)] = pairs[i+1]
	}
	return s
}

func (s *stubResolver) CanResolve(t reflect.Type) bool {
	_, ok := s.values[t]
	return ok
}

func (s *stubResolver) Resolve(t reflect.Type) (any, error) {
	if v, ok := s.values[t]; ok {
		return v, nil
	}
	return nil, &container.UnresolvableTypeError{Type: t}
}

func (s *stubResolver) MergeWith(other container.Resolver) container.Resolver {
	return container.Merge(s, other)
}

var (
	typeA = container.TypeOf[ServiceA]()
	typeB = container.TypeOf[ServiceB]()
	typeC = container.TypeOf[ServiceC]()
	typeD = container.TypeOf[ServiceD]()
)
