// Package suites holds the built-in example suites. Each file defines a small
// unit and the suite that exercises it; RegisterAll is the single entry point
// the driver uses to collect them.
package suites

import "github.com/spectre-test/spectre/framework/spectre"

// All returns every built-in case in a stable order.
func All() []*spectre.Case {
	return []*spectre.Case{
		SlugSuite(),
		CartSuite(),
		BannerSuite(),
	}
}

// RegisterAll registers every built-in case.
func RegisterAll(reg *spectre.Registry) {
	for _, c := range All() {
		reg.Register(c)
	}
}
