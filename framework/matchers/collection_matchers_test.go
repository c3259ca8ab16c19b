package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assertPasses(t, "hello world", Contains("lo wo"))
	assertPasses(t, []int{1, 2, 3}, Contains(2))
	assertPasses(t, map[string]int{"a": 1}, Contains("a"))

	for _, tc := range []struct {
		value interface{}
		item  interface{}
	}{
		{"hello", "xyz"},
		{[]int{1, 2, 3}, 9},
		{map[string]int{"a": 1}, "b"},
		{3, 3},
	} {
		pass, _ := Contains(tc.item).Test(tc.value)
		assert.False(t, pass, "%v should not contain %v", tc.value, tc.item)
	}
}

func TestLength(t *testing.T) {
	assertPasses(t, "abc", Length(3))
	assertPasses(t, []int{1, 2}, Length(2))
	assertPasses(t, nil, Length(0))
	pass, _ := Length(2).Test("abc")
	assert.False(t, pass)
}

func TestItemsInAnyOrder(t *testing.T) {
	assertPasses(t, []int{6, 2}, ItemsInAnyOrder(Equal(2), Equal(6)))
	pass, _ := ItemsInAnyOrder(Equal(2), Equal(6)).Test([]int{6, 3})
	assert.False(t, pass)
	pass, _ = ItemsInAnyOrder(Equal(2)).Test([]int{2, 2})
	assert.False(t, pass)
}
