package suites

import (
	"strings"

	"github.com/spectre-test/spectre/framework/check"
	"github.com/spectre-test/spectre/framework/spec"
	"github.com/spectre-test/spectre/framework/spectre"
)

// Slugify converts arbitrary text into a URL-safe identifier: lowercase
// alphanumerics with runs of anything else collapsed to single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, ch := range strings.ToLower(s) {
		alnum := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// SlugSuite specifies Slugify.
func SlugSuite() *spectre.Case {
	s := spec.Describe("Slugify", nil)
	s.Let("phrase", func(t *spectre.T) interface{} {
		return "  Release 2.13: the \"Big\" one!  "
	})
	s.It("lowercases and hyphenates", func(t *spectre.T) bool {
		return check.Equal(Slugify("Hello World"), "hello-world")
	})
	s.It("collapses runs of punctuation", func(t *spectre.T) bool {
		return check.Equal(Slugify(t.Val("phrase").(string)), "release-2-13-the-big-one")
	})
	s.It("never starts or ends with a hyphen", func(t *spectre.T) bool {
		return check.NoMatch(Slugify("...edges..."), "^-|-$")
	})
	s.It("returns empty for all-punctuation input", func(t *spectre.T) bool {
		return check.Empty(Slugify("?!?!"))
	})
	return s.Case()
}
