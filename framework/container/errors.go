package container

import (
	"fmt"
	"reflect"
)

// NoEligibleConstructorError is returned by a Selector when every registered
// constructor of the target type has at least one parameter that is neither
// resolvable nor defaulted.
type NoEligibleConstructorError struct {
	Type reflect.Type
}

func (e *NoEligibleConstructorError) Error() string {
	return fmt.Sprintf("container: no resolvable constructor for %v", e.Type)
}

// AmbiguousConstructorError is returned by a Selector when two or more
// eligible constructors tie on both parameter count and default-fallback
// count. The engine reports the tie instead of picking a winner.
type AmbiguousConstructorError struct {
	Type  reflect.Type
	Count int
}

func (e *AmbiguousConstructorError) Error() string {
	return fmt.Sprintf("container: ambiguous constructor for %v: %d candidates tie", e.Type, e.Count)
}

// UnresolvableTypeError is returned by Resolve when no factory could be
// produced for the requested type. Cause carries the selector failure when
// one exists.
type UnresolvableTypeError struct {
	Type  reflect.Type
	Cause error
}

func (e *UnresolvableTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("container: cannot resolve type %v: %v", e.Type, e.Cause)
	}
	return fmt.Sprintf("container: cannot resolve type %v", e.Type)
}

func (e *UnresolvableTypeError) Unwrap() error { return e.Cause }

// InvalidConfigurationError is returned when a container is constructed with
// invalid arguments (nil instance collection, nil pool entries, nil binding
// types).
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("container: invalid configuration: %s", e.Reason)
}

// InvalidConstructorError is returned by Catalog.Provide when a constructor
// function or one of its default declarations is malformed.
type InvalidConstructorError struct {
	Reason string
}

func (e *InvalidConstructorError) Error() string {
	return fmt.Sprintf("container: invalid constructor: %s", e.Reason)
}
