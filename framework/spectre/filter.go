package spectre

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether to run a specific test, identified by its case name
// and test ID.
type Filter func(caseName, testID string) bool

// RegexFilters is the standard command-line filtering scheme: a test runs if
// it matches at least one MustMatch pattern (or none are defined) and matches
// no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    PatternList
	MustNotMatch PatternList
}

// Match applies the filter rules to one test.
func (r RegexFilters) Match(caseName, testID string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(caseName, testID)) &&
		!r.MustNotMatch.AnyMatch(caseName, testID)
}

// AsFilter adapts the filters to the Filter function type.
func (r RegexFilters) AsFilter() Filter {
	return r.Match
}

// Pattern is a compiled "case/test" pattern. A pattern with only one
// component matches every test of any matching case.
type Pattern struct {
	Case *regexp.Regexp
	Test *regexp.Regexp
}

// ParsePattern compiles a pattern of the form "caseRegex" or
// "caseRegex/testRegex".
func ParsePattern(s string) (Pattern, error) {
	parts := strings.SplitN(s, "/", 2)
	caseRx, err := regexp.Compile(parts[0])
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid regex: %w", err)
	}
	p := Pattern{Case: caseRx}
	if len(parts) == 2 {
		testRx, err := regexp.Compile(parts[1])
		if err != nil {
			return Pattern{}, fmt.Errorf("invalid regex: %w", err)
		}
		p.Test = testRx
	}
	return p, nil
}

// Match tests one case name and test ID against the pattern.
func (p Pattern) Match(caseName, testID string) bool {
	if p.Case != nil && !p.Case.MatchString(caseName) {
		return false
	}
	if p.Test != nil && !p.Test.MatchString(testID) {
		return false
	}
	return true
}

func (p Pattern) String() string {
	if p.Test == nil {
		return p.Case.String()
	}
	return p.Case.String() + "/" + p.Test.String()
}

// PatternList accumulates patterns; it implements flag.Value so it can be
// used directly with repeated command-line flags.
type PatternList []Pattern

func (l PatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser.
func (l *PatternList) Set(value string) error {
	p, err := ParsePattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// IsDefined reports whether any pattern has been added.
func (l PatternList) IsDefined() bool { return len(l) != 0 }

// AnyMatch reports whether any pattern in the list matches.
func (l PatternList) AnyMatch(caseName, testID string) bool {
	for _, p := range l {
		if p.Match(caseName, testID) {
			return true
		}
	}
	return false
}
