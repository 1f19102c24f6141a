package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Constructor metadata ─────────────────────────────────────────────────────

// Param describes one constructor parameter: its type, and whether a default
// value was declared for it at registration time.
type Param struct {
	Type       reflect.Type
	HasDefault bool
	Default    any
}

// defaultValue returns the declared default as a reflect.Value suitable for
// a Call argument. A nil default maps to the zero value of the parameter
// type.
func (p Param) defaultValue() reflect.Value {
	if p.Default == nil {
		return reflect.Zero(p.Type)
	}
	return reflect.ValueOf(p.Default)
}

// Constructor is one registered candidate for producing a type: a parsed
// constructor function plus its ordered parameter list.
type Constructor struct {
	// Out is the produced type, exactly as declared by the function's first
	// return value.
	Out reflect.Type

	// Params is the ordered parameter list.
	Params []Param

	fn         reflect.Value
	returnsErr bool
}

func (c *Constructor) String() string {
	return fmt.Sprintf("constructor %v", c.fn.Type())
}

// call invokes the constructor with already-evaluated arguments.
func (c *Constructor) call(args []reflect.Value) (any, error) {
	out := c.fn.Call(args)
	if c.returnsErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// errorType is used to recognize (T, error) constructor signatures.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// parseConstructor validates fn as func(deps...) T or func(deps...) (T, error)
// and extracts its metadata.
func parseConstructor(fn any) (*Constructor, error) {
	if fn == nil {
		return nil, &InvalidConstructorError{Reason: "function is nil"}
	}

	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, &InvalidConstructorError{Reason: fmt.Sprintf("want a function, got %v", t)}
	}
	if t.IsVariadic() {
		return nil, &InvalidConstructorError{Reason: fmt.Sprintf("variadic constructors are not supported: %v", t)}
	}

	switch t.NumOut() {
	case 1:
		// func(...) T
	case 2:
		if !t.Out(1).Implements(errorType) {
			return nil, &InvalidConstructorError{
				Reason: fmt.Sprintf("second return value must be error, got %v", t.Out(1)),
			}
		}
	default:
		return nil, &InvalidConstructorError{
			Reason: fmt.Sprintf("want (T) or (T, error) return values, got %d", t.NumOut()),
		}
	}

	params := make([]Param, t.NumIn())
	for i := range params {
		params[i] = Param{Type: t.In(i)}
	}

	return &Constructor{
		Out:        t.Out(0),
		Params:     params,
		fn:         v,
		returnsErr: t.NumOut() == 2,
	}, nil
}

// ── Registration options ─────────────────────────────────────────────────────

// ProvideOption customizes a constructor at registration time.
type ProvideOption func(*Constructor) error

// WithDefault declares a default value for the parameter at index. A
// parameter with a default no longer has to be resolvable for its
// constructor to stay eligible; the default is used whenever the parameter
// cannot be resolved at invocation time.
//
// A nil value is allowed for pointer, interface, map, slice, func and
// channel parameters and stands for their zero value.
func WithDefault(index int, value any) ProvideOption {
	return func(c *Constructor) error {
		if index < 0 || index >= len(c.Params) {
			return &InvalidConstructorError{
				Reason: fmt.Sprintf("default index %d out of range for %v", index, c.fn.Type()),
			}
		}
		p := &c.Params[index]
		if value == nil {
			if !isNilable(p.Type) {
				return &InvalidConstructorError{
					Reason: fmt.Sprintf("nil default for non-nilable parameter %d (%v)", index, p.Type),
				}
			}
		} else if !reflect.TypeOf(value).AssignableTo(p.Type) {
			return &InvalidConstructorError{
				Reason: fmt.Sprintf("default %T is not assignable to parameter %d (%v)", value, index, p.Type),
			}
		}
		p.HasDefault = true
		p.Default = value
		return nil
	}
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// ── Catalog ──────────────────────────────────────────────────────────────────

// Catalog is the constructor metadata registry: a thread-safe mapping from a
// produced type to its ordered candidate constructors. Selectors operate
// purely over this metadata; the catalog never constructs anything itself.
type Catalog struct {
	mu    sync.RWMutex
	ctors map[reflect.Type][]*Constructor
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{ctors: make(map[reflect.Type][]*Constructor)}
}

// Provide registers fn as a constructor candidate for its first return type.
//
//	cat.Provide(NewGreeter)
//	cat.Provide(NewGreeterWithLocale, container.WithDefault(2, "en"))
func (c *Catalog) Provide(fn any, opts ...ProvideOption) error {
	ctor, err := parseConstructor(fn)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		if err := opt(ctor); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctors[ctor.Out] = append(c.ctors[ctor.Out], ctor)
	return nil
}

// MustProvide is Provide for package-init wiring; it panics on error.
func (c *Catalog) MustProvide(fn any, opts ...ProvideOption) {
	if err := c.Provide(fn, opts...); err != nil {
		panic(err)
	}
}

// Constructors returns the registered candidates for t in registration
// order. The returned slice is a copy.
func (c *Catalog) Constructors(t reflect.Type) []*Constructor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ctors := c.ctors[t]
	if len(ctors) == 0 {
		return nil
	}
	out := make([]*Constructor, len(ctors))
	copy(out, ctors)
	return out
}

// Reset removes all registrations. Intended for tests.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctors = make(map[reflect.Type][]*Constructor)
}

// ── Process-wide catalog ─────────────────────────────────────────────────────

var processCatalog = NewCatalog()

// DefaultCatalog returns the process-wide catalog used by selectors created
// with a nil catalog.
func DefaultCatalog() *Catalog { return processCatalog }

// Provide registers fn in the process-wide catalog.
func Provide(fn any, opts ...ProvideOption) error {
	return processCatalog.Provide(fn, opts...)
}

// MustProvide registers fn in the process-wide catalog and panics on error.
func MustProvide(fn any, opts ...ProvideOption) {
	processCatalog.MustProvide(fn, opts...)
}
