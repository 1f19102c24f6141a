// Package providers defines the contribution contract the kernel uses to
// assemble the container: providers hand instances and bindings to a Builder
// before the pool is sealed, then get a Boot pass against the finished
// resolver.
package providers

import (
	"reflect"

	"github.com/weld-framework/weld/framework/container"
)

// ── Builder ──────────────────────────────────────────────────────────────────

// Builder collects everything the kernel needs to construct an
// AutoContainer: pool instances (ordered), explicit contract bindings, and
// an optional selector. The instance pool is sealed when the container is
// built; nothing can be contributed afterwards.
type Builder struct {
	selector  container.Selector
	instances []any
	bindings  []binding
}

type binding struct {
	contract reflect.Type
	impl     reflect.Type
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Instance contributes a pre-built value to the instance pool.
func (b *Builder) Instance(v any) *Builder {
	b.instances = append(b.instances, v)
	return b
}

// BindType records an explicit contract-to-implementation binding, applied
// after the container is constructed.
func (b *Builder) BindType(contract, impl reflect.Type) *Builder {
	b.bindings = append(b.bindings, binding{contract: contract, impl: impl})
	return b
}

// UseSelector overrides the selector the container will be built with.
// Last write wins; nil is ignored.
func (b *Builder) UseSelector(s container.Selector) *Builder {
	if s != nil {
		b.selector = s
	}
	return b
}

// Build constructs the container from the collected contributions and
// applies the recorded bindings.
func (b *Builder) Build() (*container.AutoContainer, error) {
	instances := b.instances
	if instances == nil {
		instances = []any{}
	}
	c, err := container.NewWithSelector(b.selector, instances)
	if err != nil {
		return nil, err
	}
	for _, bd := range b.bindings {
		if err := c.SetBinding(bd.contract, bd.impl); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ── Provider contract ────────────────────────────────────────────────────────

// Provider contributes to the application's object graph.
//
// Register runs before the container exists and may only add instances,
// bindings or a selector to the Builder. Boot runs after the container is
// assembled and may resolve anything from it.
type Provider interface {
	Register(b *Builder)
	Boot(r container.Resolver) error
}

// BaseProvider is an embeddable no-op Boot. Embed it and override only what
// you need.
type BaseProvider struct{}

func (BaseProvider) Boot(container.Resolver) error { return nil }

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry runs the two provider phases in registration order.
type Registry struct {
	builder    *Builder
	providers  []Provider
	registered map[Provider]bool
	booted     bool
}

// NewRegistry creates a Registry around a fresh Builder.
func NewRegistry() *Registry {
	return &Registry{
		builder:    NewBuilder(),
		registered: map[Provider]bool{},
	}
}

// Register adds a provider and immediately runs its Register phase.
// Duplicate registrations are ignored.
func (r *Registry) Register(p Provider) {
	if p == nil || r.registered[p] {
		return
	}
	r.registered[p] = true
	p.Register(r.builder)
	r.providers = append(r.providers, p)
}

// Builder exposes the underlying Builder for direct kernel contributions.
func (r *Registry) Builder() *Builder { return r.builder }

// Build seals the pool and constructs the container.
func (r *Registry) Build() (*container.AutoContainer, error) {
	return r.builder.Build()
}

// Boot runs the Boot phase on all providers against the finished resolver.
// It runs at most once.
func (r *Registry) Boot(res container.Resolver) error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, p := range r.providers {
		if err := p.Boot(res); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot has run.
func (r *Registry) Booted() bool { return r.booted }
