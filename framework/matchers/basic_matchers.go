package matchers

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/spectre-test/spectre/framework/helpers"
)

// Equal is a matcher that tests whether the input value matches the expected
// value according to reflect.DeepEqual.
func Equal(expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			return reflect.DeepEqual(value, expectedValue)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("equal to %s", desc(expectedValue))
		},
	)
}

// Same is an identity matcher: it passes only when the input value and the
// expected value are the same pointer, or the same value of a comparable
// type. Unlike Equal, two distinct but deep-equal values do not match.
func Same(expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			ev := reflect.ValueOf(expectedValue)
			av := reflect.ValueOf(value)
			if !ev.IsValid() || !av.IsValid() {
				return expectedValue == nil && value == nil
			}
			switch ev.Kind() {
			case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
				return av.Kind() == ev.Kind() && av.Pointer() == ev.Pointer()
			case reflect.Slice:
				return av.Kind() == reflect.Slice && av.Pointer() == ev.Pointer() && av.Len() == ev.Len()
			}
			return ev.Comparable() && av.Comparable() && value == expectedValue
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("the same object as %s", desc(expectedValue))
		},
	)
}

// CompareOps is the fixed allow-list of comparison operators accepted by
// Compare. Any other operator symbol is itself an assertion failure, which
// the check package enforces before building the matcher.
var CompareOps = []string{"==", "!=", "<", ">", "<=", ">="} //nolint:gochecknoglobals

// IsCompareOp reports whether op is in the allow-list.
func IsCompareOp(op string) bool {
	return helpers.SliceContains(op, CompareOps)
}

// Compare tests the input value against the expected value with one of the
// allow-listed comparison operators. Ordering operators apply to numeric and
// string values; the equality operators fall back to deep equality for
// everything else. An unknown operator never matches.
func Compare(op string, expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			return compare(value, op, expectedValue)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("value %s %s", op, desc(expectedValue))
		},
	)
}

func compare(a interface{}, op string, b interface{}) bool {
	ordering, ordered := orderValues(a, b)
	switch op {
	case "==":
		return helpers.IfElse(ordered, ordering == 0, reflect.DeepEqual(a, b))
	case "!=":
		return helpers.IfElse(ordered, ordering != 0, !reflect.DeepEqual(a, b))
	case "<":
		return ordered && ordering < 0
	case ">":
		return ordered && ordering > 0
	case "<=":
		return ordered && ordering <= 0
	case ">=":
		return ordered && ordering >= 0
	}
	return false
}

// orderValues compares two values that share an ordered domain (numbers with
// numbers, strings with strings). The second return is false when the pair
// has no ordering.
func orderValues(a, b interface{}) (int, bool) {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// RespondsTo tests whether the input value has a method with the given name,
// the capability check for dynamic-looking code.
func RespondsTo(methodName string) Matcher {
	return New(
		func(value interface{}) bool {
			if value == nil {
				return false
			}
			return reflect.ValueOf(value).MethodByName(methodName).IsValid()
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("responds to %q", methodName)
		},
	)
}

// Empty tests for emptiness: nil, or a zero-length string, slice, array, map,
// or channel. Values with no length concept are never empty.
func Empty() Matcher {
	return New(
		func(value interface{}) bool {
			if value == nil {
				return true
			}
			rv := reflect.ValueOf(value)
			switch rv.Kind() {
			case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
				return rv.Len() == 0
			case reflect.Ptr:
				return rv.IsNil()
			}
			return false
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return "an empty value"
		},
	)
}

// MatchesRegex tests a string value against a regular expression. The pattern
// can be a string or a precompiled *regexp.Regexp; an invalid pattern string
// never matches.
func MatchesRegex(pattern interface{}) Matcher {
	var rx *regexp.Regexp
	switch p := pattern.(type) {
	case *regexp.Regexp:
		rx = p
	case string:
		rx, _ = regexp.Compile(p)
	}
	return New(
		func(value interface{}) bool {
			if rx == nil {
				return false
			}
			s, ok := value.(string)
			if !ok {
				if str, isStr := value.(fmt.Stringer); isStr {
					s, ok = str.String(), true
				}
			}
			return ok && rx.MatchString(s)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("a string matching %s", DefaultDescription(pattern))
		},
	)
}

// TypeOf tests whether the input value's dynamic type is exactly the type of
// the sample value.
func TypeOf(sample interface{}) Matcher {
	expected := reflect.TypeOf(sample)
	return New(
		func(value interface{}) bool {
			return reflect.TypeOf(value) == expected
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("a value of type %v", expected)
		},
	)
}

// KindOf tests the broader category of the input value: its reflect.Kind.
// This is the "kind_of" companion to the exact-type check.
func KindOf(kind reflect.Kind) Matcher {
	return New(
		func(value interface{}) bool {
			if value == nil {
				return false
			}
			return reflect.ValueOf(value).Kind() == kind
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("a value of kind %v", kind)
		},
	)
}
