// Package container provides Weld's auto-wiring resolution engine.
//
// # Overview
//
// The engine answers one question: given a pool of already-constructed
// instances and a target type, can an instance of that type be produced —
// and if so, produce it. Resolution happens in two ways:
//
//   - Direct match: exactly one instance in the pool is assignable to the
//     requested type. That instance is returned as-is.
//   - Constructor search: a registered constructor of the type is selected
//     whose parameters can themselves be resolved (recursively) or fall
//     back to declared defaults, and invoked.
//
// Everything is expressed through the Resolver capability:
//
//	type Resolver interface {
//	    CanResolve(t reflect.Type) bool
//	    Resolve(t reflect.Type) (any, error)
//	    MergeWith(other Resolver) Resolver
//	}
//
// AutoContainer is the primary implementation; merged resolvers compose two
// implementations with primary-first precedence, so containers can be
// chained with each other and with foreign Resolver implementations.
//
// # Constructors
//
// Go cannot enumerate a type's constructors reflectively, so candidate
// constructors are ordinary functions registered in a Catalog:
//
//	container.MustProvide(NewGreeter)
//	container.MustProvide(NewGreeterWithLocale, container.WithDefault(2, "en"))
//
// A constructor is any func(deps...) T or func(deps...) (T, error). The
// catalog records its ordered parameter list; WithDefault marks a parameter
// as optional with a fallback value.
//
// # Selection
//
// When a type has several registered constructors, the selector picks one:
//
//  1. A constructor is eligible only if every parameter is resolvable or
//     defaulted. One parameter that is neither disqualifies it outright.
//  2. Among eligible constructors, more parameters wins.
//  3. Ties break toward the constructor whose parameters needed fewer
//     default fallbacks.
//  4. A residual tie is an error — the engine fails closed rather than
//     guessing.
//
// # Usage
//
//	container.MustProvide(NewUserService)
//
//	c := container.MustNew(&PostgresStore{}, SystemClock{})
//	svc, err := container.ResolveAs[*UserService](c)
//
// Interface contracts can be pointed at concrete implementations:
//
//	err := container.Bind[UserStore, *PostgresStore](c)
//
// # Concurrency
//
// A container is safe for concurrent use. Factories are memoized per type;
// two goroutines racing on the first resolution of a type may both compute
// the factory, but only one is retained and both observe an equivalent one.
// The instance pool is immutable after construction.
package container
