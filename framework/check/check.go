// Package check provides the paired assertion/refutation helpers used inside
// test bodies. Every assertion raises the distinguished assertion-failure
// kind on failure, which the execution wrapper coerces to a plain failed
// result, and returns true on success so a body can end with
// "return check.Equal(got, want)". Every refutation is the logical dual built
// on the same primitive.
package check

import (
	"reflect"

	"github.com/spectre-test/spectre/framework/matchers"
	"github.com/spectre-test/spectre/framework/spectre"
)

// Assert tests a value against a matcher and flunks with the matcher's
// failure description when it does not hold.
func Assert(value interface{}, m matchers.Matcher) bool {
	if pass, desc := m.Test(value); !pass {
		spectre.Flunk("%s", desc)
	}
	return true
}

// Refute is the dual of Assert: it flunks when the matcher holds.
func Refute(value interface{}, m matchers.Matcher) bool {
	return Assert(value, matchers.Not(m))
}

// True flunks unless the condition holds.
func True(condition bool, format string, args ...interface{}) bool {
	if !condition {
		spectre.Flunk(format, args...)
	}
	return true
}

// False flunks when the condition holds.
func False(condition bool, format string, args ...interface{}) bool {
	return True(!condition, format, args...)
}

// Equal asserts deep equality.
func Equal(actual, expected interface{}) bool {
	return Assert(actual, matchers.Equal(expected))
}

// NotEqual refutes deep equality.
func NotEqual(actual, expected interface{}) bool {
	return Refute(actual, matchers.Equal(expected))
}

// Same asserts identity: the two values are the same object, not merely
// deep-equal.
func Same(actual, expected interface{}) bool {
	return Assert(actual, matchers.Same(expected))
}

// NotSame refutes identity.
func NotSame(actual, expected interface{}) bool {
	return Refute(actual, matchers.Same(expected))
}

// Compare asserts an operator comparison between two values. Only the
// operators in matchers.CompareOps are allowed; any other operator symbol is
// itself an assertion failure, for both Compare and RefuteCompare.
func Compare(actual interface{}, op string, expected interface{}) bool {
	requireCompareOp(op)
	return Assert(actual, matchers.Compare(op, expected))
}

// RefuteCompare is the dual of Compare.
func RefuteCompare(actual interface{}, op string, expected interface{}) bool {
	requireCompareOp(op)
	return Refute(actual, matchers.Compare(op, expected))
}

func requireCompareOp(op string) {
	if !matchers.IsCompareOp(op) {
		spectre.Flunk("unknown comparison operator %q", op)
	}
}

// RespondsTo asserts that the value has a method with the given name.
func RespondsTo(value interface{}, methodName string) bool {
	return Assert(value, matchers.RespondsTo(methodName))
}

// NotRespondsTo refutes the capability check.
func NotRespondsTo(value interface{}, methodName string) bool {
	return Refute(value, matchers.RespondsTo(methodName))
}

// Includes asserts membership: substring for strings, element for slices and
// arrays, key for maps.
func Includes(collection, item interface{}) bool {
	return Assert(collection, matchers.Contains(item))
}

// Excludes refutes membership.
func Excludes(collection, item interface{}) bool {
	return Refute(collection, matchers.Contains(item))
}

// Empty asserts emptiness.
func Empty(value interface{}) bool {
	return Assert(value, matchers.Empty())
}

// NotEmpty refutes emptiness.
func NotEmpty(value interface{}) bool {
	return Refute(value, matchers.Empty())
}

// Match asserts that the value matches a regular expression pattern (a string
// or a *regexp.Regexp).
func Match(value interface{}, pattern interface{}) bool {
	return Assert(value, matchers.MatchesRegex(pattern))
}

// NoMatch refutes the pattern match.
func NoMatch(value interface{}, pattern interface{}) bool {
	return Refute(value, matchers.MatchesRegex(pattern))
}

// IsType asserts that the value's dynamic type is exactly the sample's type.
func IsType(value, sample interface{}) bool {
	return Assert(value, matchers.TypeOf(sample))
}

// IsNotType refutes the exact-type check.
func IsNotType(value, sample interface{}) bool {
	return Refute(value, matchers.TypeOf(sample))
}

// KindOf asserts the value's broader category (reflect.Kind).
func KindOf(value interface{}, kind reflect.Kind) bool {
	return Assert(value, matchers.KindOf(kind))
}

// NotKindOf refutes the category check.
func NotKindOf(value interface{}, kind reflect.Kind) bool {
	return Refute(value, matchers.KindOf(kind))
}
