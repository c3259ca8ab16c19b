package suites

import (
	"github.com/spectre-test/spectre/framework/check"
	"github.com/spectre-test/spectre/framework/mock"
	"github.com/spectre-test/spectre/framework/spec"
	"github.com/spectre-test/spectre/framework/spectre"
)

// Cart totals priced items. It reaches its price source through a function
// slot so tests can substitute it.
type Cart struct {
	PriceOf func(sku string) int
	items   []string
}

func (c *Cart) Add(sku string) { c.items = append(c.items, sku) }

func (c *Cart) Total() int {
	total := 0
	for _, sku := range c.items {
		total += c.PriceOf(sku)
	}
	return total
}

// CartSuite specifies Cart against a mocked price source.
func CartSuite() *spectre.Case {
	s := spec.Describe("Cart", nil)
	s.Let("prices", func(t *spectre.T) interface{} {
		m := mock.New()
		m.Expect("price",
			mock.Args(mock.AnyOfType[string]()),
			mock.Returning(func(args ...interface{}) interface{} {
				if args[0] == "apple" {
					return 30
				}
				return 100
			}))
		return m
	})
	s.Subject(func(t *spectre.T) interface{} {
		m := t.Val("prices").(*mock.Mock)
		return &Cart{PriceOf: func(sku string) int {
			return m.Call("price", sku).(int)
		}}
	})
	s.It("starts empty", func(t *spectre.T) bool {
		return check.Equal(t.Subject().(*Cart).Total(), 0)
	})
	s.It("totals priced items", func(t *spectre.T) bool {
		cart := t.Subject().(*Cart)
		cart.Add("apple")
		cart.Add("pear")
		return check.Equal(cart.Total(), 130)
	})
	s.It("asks the price source once per item", func(t *spectre.T) bool {
		m := mock.New()
		calls := 0
		m.Expect("price",
			mock.Args(mock.AnyOfType[string]()),
			mock.Returning(func() interface{} {
				calls++
				return 1
			}))
		cart := &Cart{PriceOf: func(sku string) int { return m.Call("price", sku).(int) }}
		cart.Add("a")
		cart.Add("b")
		cart.Add("c")
		return check.Equal(cart.Total(), 3) && check.Equal(calls, 3)
	})
	return s.Case()
}
