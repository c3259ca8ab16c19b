package suites

import (
	"fmt"
	"time"

	"github.com/spectre-test/spectre/framework/check"
	"github.com/spectre-test/spectre/framework/helpers"
	"github.com/spectre-test/spectre/framework/mock"
	"github.com/spectre-test/spectre/framework/spec"
	"github.com/spectre-test/spectre/framework/spectre"
)

// bannerClock is the time source for PrintBanner, substitutable in tests.
var bannerClock = time.Now

// PrintBanner writes a greeting with the current year to standard output.
func PrintBanner(product string) {
	fmt.Printf("%s (c) %d\n", product, bannerClock().Year())
}

// BannerSuite specifies PrintBanner using output capture and a stubbed clock.
func BannerSuite() *spectre.Case {
	s := spec.Describe("PrintBanner", nil)
	s.It("prints the product name", func(t *spectre.T) bool {
		out, err := helpers.CaptureOutput(func() { PrintBanner("spectre") })
		return check.True(err == nil, "capture failed: %v", err) &&
			check.Includes(out, "spectre")
	})
	s.It("uses the substituted clock", func(t *spectre.T) bool {
		frozen := time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC)
		var out string
		var err error
		mock.Swap(&bannerClock, func() time.Time { return frozen }, func() {
			out, err = helpers.CaptureOutput(func() { PrintBanner("spectre") })
		})
		return check.True(err == nil, "capture failed: %v", err) &&
			check.Equal(out, "spectre (c) 1999\n")
	})
	s.It("restores the real clock afterwards", func(t *spectre.T) bool {
		frozen := time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC)
		mock.Swap(&bannerClock, func() time.Time { return frozen }, func() {})
		return check.NotEqual(bannerClock().Year(), 1999)
	})
	return s.Case()
}
