package matchers

import (
	"fmt"
	"reflect"
	"strings"
)

// Contains is the membership matcher. For a string input it tests substring
// containment; for a slice or array it tests whether any element deep-equals
// the item; for a map it tests key membership.
func Contains(item interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			switch v := value.(type) {
			case string:
				s, ok := item.(string)
				return ok && strings.Contains(v, s)
			}
			rv := reflect.ValueOf(value)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				for i := 0; i < rv.Len(); i++ {
					if reflect.DeepEqual(rv.Index(i).Interface(), item) {
						return true
					}
				}
				return false
			case reflect.Map:
				iv := reflect.ValueOf(item)
				if !iv.IsValid() || !iv.Type().AssignableTo(rv.Type().Key()) {
					return false
				}
				return rv.MapIndex(iv).IsValid()
			}
			return false
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("a collection containing %s", DefaultDescription(item))
		},
	)
}

// Length tests that the input value has the given length. It applies to
// strings, slices, arrays, maps, and channels.
func Length(expected int) Matcher {
	return New(
		func(value interface{}) bool {
			if value == nil {
				return expected == 0
			}
			rv := reflect.ValueOf(value)
			switch rv.Kind() {
			case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
				return rv.Len() == expected
			}
			return false
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("a value of length %d", expected)
		},
	)
}

// ItemsInAnyOrder is a matcher for a slice value. It tests that the slice
// contains the same number of elements as the number of parameters, and that
// each parameter is a matcher that matches one item in the slice.
//
//	s := []int{6,2}
//	matchers.ItemsInAnyOrder(matchers.Equal(2), matchers.Equal(6)).Test(s) // pass
func ItemsInAnyOrder(matchers ...Matcher) Matcher {
	return New(
		func(value interface{}) bool {
			v := reflect.ValueOf(value)
			if v.Kind() != reflect.Slice {
				return false
			}
			if v.Len() != len(matchers) {
				return false
			}
			foundCount := 0
			for _, m := range matchers {
				for j := 0; j < v.Len(); j++ {
					if m.test(v.Index(j).Interface()) {
						foundCount++
						break
					}
				}
			}
			return foundCount == len(matchers)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			v := reflect.ValueOf(value)
			if v.Kind() != reflect.Slice {
				return "a slice"
			}
			if v.Len() != len(matchers) {
				return fmt.Sprintf("should have %d item(s) (had %d)", len(matchers), v.Len())
			}
			return "contains in any order: " + describeMatchersList(matchers, value, ", ")
		},
	)
}
