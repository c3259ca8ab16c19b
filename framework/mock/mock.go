// Package mock provides a dynamic stand-in object that answers only to
// pre-declared "ghost" method names, plus the scoped stubbing helpers used to
// substitute behavior for the duration of a block.
//
// Dispatch is an explicit lookup against the expectation table: calling a
// name that was never declared raises a clear unknown-call error instead of
// relying on any catch-all interception.
package mock

import (
	"fmt"
	"reflect"

	"github.com/spectre-test/spectre/framework/helpers"
	"github.com/spectre-test/spectre/framework/matchers"
)

// ExpectationError is the error kind raised for every misuse of a mock:
// unknown calls, arity mismatches, argument mismatches, and validator
// rejections. It propagates to the calling test body, where the execution
// wrapper records it as an erratic result unless the test handles it.
type ExpectationError struct {
	Method  string
	Message string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("mock call %q: %s", e.Method, e.Message)
}

func raise(method, format string, args ...interface{}) {
	panic(&ExpectationError{Method: method, Message: fmt.Sprintf(format, args...)})
}

type expectation struct {
	returns  interface{}
	args     []interface{}
	validate func(args []interface{}) bool
}

// Option configures one declared expectation.
type Option = helpers.ConfigOption[expectation]

type optionFunc func(*expectation) error

func (f optionFunc) Configure(e *expectation) error { return f(e) }

// Returning sets the value a ghost call produces. If the value is callable it
// is invoked on every call, so non-constant return values are supported: a
// func(...interface{}) interface{} receives the actual arguments, and any
// other func is invoked directly when it takes no parameters or exactly the
// call's arguments. The default return value of an expectation is true.
func Returning(value interface{}) Option {
	return optionFunc(func(e *expectation) error {
		e.returns = value
		return nil
	})
}

// Args declares the expected positional arguments. Each entry is either a
// literal value (matched by deep equality), a reflect.Type (any assignable
// value matches), a reflect.Kind, or a matchers.Matcher.
func Args(args ...interface{}) Option {
	return optionFunc(func(e *expectation) error {
		e.args = args
		return nil
	})
}

// Validate attaches a predicate over the actual arguments, checked after the
// positional matchers. A falsy result raises an ExpectationError.
func Validate(fn func(args []interface{}) bool) Option {
	return optionFunc(func(e *expectation) error {
		e.validate = fn
		return nil
	})
}

// AnyOfType returns an argument matcher accepting any value assignable to T.
func AnyOfType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Mock is a test double holding a table of declared ghost methods. The table
// is mutated only through Expect and consulted on every Call.
type Mock struct {
	expectations map[string]*expectation
}

// New creates a mock with no declared ghost methods.
func New() *Mock {
	return &Mock{expectations: make(map[string]*expectation)}
}

// Expect declares a ghost method. With no options the ghost takes no
// arguments and returns true. Declaring the same name again replaces the
// earlier expectation. Returns the declared name.
func (m *Mock) Expect(name string, opts ...Option) string {
	e := &expectation{returns: true}
	_ = helpers.ApplyOptions(e, opts...) // the built-in options cannot fail
	m.expectations[name] = e
	return name
}

// RespondsTo reports whether the name was declared as a ghost method, the
// introspection counterpart of Call.
func (m *Mock) RespondsTo(name string) bool {
	_, ok := m.expectations[name]
	return ok
}

// Call dispatches a ghost method by name. An undeclared name, an arity
// mismatch, an argument failing its matcher, or a validator rejection all
// raise *ExpectationError. Otherwise it produces the declared return value,
// invoking it first if it is callable (see Returning for the accepted
// signatures; a callable that cannot accept the actual arguments also raises
// *ExpectationError).
func (m *Mock) Call(name string, args ...interface{}) interface{} {
	e, ok := m.expectations[name]
	if !ok {
		raise(name, "unknown call")
	}
	if len(args) != len(e.args) {
		raise(name, "expected %d argument(s), got %d", len(e.args), len(args))
	}
	for i, expected := range e.args {
		if !matchArg(expected, args[i]) {
			raise(name, "unexpected argument %v in position %d", args[i], i)
		}
	}
	if e.validate != nil && !e.validate(args) {
		raise(name, "arguments %v rejected by validator", args)
	}
	return produce(name, e.returns, args)
}

func matchArg(expected, actual interface{}) bool {
	switch matcher := expected.(type) {
	case matchers.Matcher:
		pass, _ := matcher.Test(actual)
		return pass
	case reflect.Type:
		at := reflect.TypeOf(actual)
		return at != nil && at.AssignableTo(matcher)
	case reflect.Kind:
		return actual != nil && reflect.ValueOf(actual).Kind() == matcher
	default:
		return reflect.DeepEqual(actual, expected)
	}
}

func produce(method string, returns interface{}, args []interface{}) interface{} {
	switch fn := returns.(type) {
	case func() interface{}:
		return fn()
	case func(...interface{}) interface{}:
		return fn(args...)
	}
	rv := reflect.ValueOf(returns)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return returns
	}
	return invoke(method, rv, args)
}

// invoke calls any other func-typed return value through reflection: with no
// arguments when it takes none, or with the actual call arguments when the
// arity matches.
func invoke(method string, fn reflect.Value, args []interface{}) interface{} {
	ft := fn.Type()
	var in []reflect.Value
	switch {
	case ft.NumIn() == 0:
	case ft.NumIn() == len(args) && !ft.IsVariadic():
		for i, arg := range args {
			av := reflect.ValueOf(arg)
			if !av.IsValid() {
				av = reflect.Zero(ft.In(i))
			}
			if !av.Type().AssignableTo(ft.In(i)) {
				raise(method, "callable return value cannot accept argument %v in position %d", arg, i)
			}
			in = append(in, av)
		}
	default:
		raise(method, "callable return value takes %d argument(s), got %d", ft.NumIn(), len(args))
	}
	out := fn.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}
	values := make([]interface{}, 0, len(out))
	for _, v := range out {
		values = append(values, v.Interface())
	}
	return values
}
