// Package spec is the declarative layer over the case engine. A Suite is a
// builder: each It declaration becomes a data record in the case's test
// table, with an identifier derived from the description and the description
// kept verbatim for reporting. No methods are synthesized at run time.
package spec

import (
	"fmt"
	"strings"

	"github.com/spectre-test/spectre/framework/spectre"
)

// Suite builds one runnable case from describe/it style declarations. The
// builder itself is never registered or runnable; only the case it produces
// is.
type Suite struct {
	c *spectre.Case
}

// Describe starts a suite. The subject function, if given, becomes the
// memoized "subject" binding. An empty name defaults to the dynamic type name
// of the subject, evaluated once against a throwaway instance.
func Describe(name string, subject func(*spectre.T) interface{}) *Suite {
	s := &Suite{c: spectre.NewCase(name)}
	if subject != nil {
		s.c.DefineLet("subject", subject)
		if name == "" {
			probe := spectre.NewT(s.c)
			s.c.SetName(fmt.Sprintf("%T", probe.Subject()))
		}
	}
	return s
}

// Subject replaces the memoized subject binding.
func (s *Suite) Subject(fn func(*spectre.T) interface{}) *Suite {
	s.c.DefineLet("subject", fn)
	return s
}

// Target is an alias for Subject.
func (s *Suite) Target(fn func(*spectre.T) interface{}) *Suite {
	return s.Subject(fn)
}

// Let defines a memoized binding: the function runs at most once per run
// instance, on first access through T.Val, and the result is cached for the
// rest of that run.
func (s *Suite) Let(name string, fn func(*spectre.T) interface{}) *Suite {
	s.c.DefineLet(name, fn)
	return s
}

// Before installs the setup hook, run before every test body. Exactly one
// hook exists; a later call replaces the earlier one.
func (s *Suite) Before(fn func(*spectre.T)) *Suite {
	s.c.SetBefore(fn)
	return s
}

// BeforeEach is an alias for Before.
func (s *Suite) BeforeEach(fn func(*spectre.T)) *Suite { return s.Before(fn) }

// After installs the teardown hook, guaranteed to run after every test body
// on every exit path. Last call wins, same as Before.
func (s *Suite) After(fn func(*spectre.T)) *Suite {
	s.c.SetAfter(fn)
	return s
}

// AfterEach is an alias for After.
func (s *Suite) AfterEach(fn func(*spectre.T)) *Suite { return s.After(fn) }

// It declares one test. The identifier is derived from the description by
// MethodID, and the description is recorded verbatim for reporting. A nil
// body is an intentional omission: the test reports as skipped, never as
// failed or errored. Two descriptions that sanitize to the same identifier
// collide, and the last definition wins.
func (s *Suite) It(description string, body spectre.Body) *Suite {
	s.c.AddTest(MethodID(description), description, body)
	return s
}

// Specify is an alias for It.
func (s *Suite) Specify(description string, body spectre.Body) *Suite {
	return s.It(description, body)
}

// Skip marks the whole case to be bypassed unless a run is forced.
func (s *Suite) Skip() *Suite {
	s.c.MarkSkip()
	return s
}

// Case returns the built case.
func (s *Suite) Case() *spectre.Case { return s.c }

// Register adds the built case to a registry and returns it. Registration is
// idempotent, so registering the same suite's case twice is harmless.
func (s *Suite) Register(r *spectre.Registry) *spectre.Case {
	return r.Register(s.c)
}

// MethodID derives a test identifier from a description: the reserved test
// prefix followed by the description with every character outside
// alphanumerics, underscore, '?' and '!' replaced by an underscore.
func MethodID(description string) string {
	var b strings.Builder
	b.WriteString(spectre.TestPrefix)
	for _, ch := range description {
		switch {
		case ch >= 'a' && ch <= 'z',
			ch >= 'A' && ch <= 'Z',
			ch >= '0' && ch <= '9',
			ch == '_', ch == '?', ch == '!':
			b.WriteRune(ch)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
