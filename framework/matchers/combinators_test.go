package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNot(t *testing.T) {
	assertPasses(t, 4, Not(Equal(3)))
	assertFails(t, 3, Not(Equal(3)), "expected: not (equal to 3)\nactual value was: 3")
}

func TestAllOf(t *testing.T) {
	m := AllOf(isString(), Contains("a"))
	assertPasses(t, "cat", m)
	pass, _ := m.Test("dog")
	assert.False(t, pass)
}

func TestAnyOf(t *testing.T) {
	m := AnyOf(Equal("a"), Equal("b"))
	assertPasses(t, "b", m)
	pass, _ := m.Test("c")
	assert.False(t, pass)
}

func TestAllOfListsEveryFailedCondition(t *testing.T) {
	m := AllOf(Equal("a"), Contains("z"))
	_, desc := m.Test("b")
	assert.Contains(t, desc, "equal to a")
	assert.Contains(t, desc, "containing z")
	assert.Contains(t, desc, " and ")
}

func isString() Matcher {
	return New(
		func(value interface{}) bool { _, ok := value.(string); return ok },
		func(value interface{}, desc DescribeValueFunc) string { return "a string" },
	)
}
