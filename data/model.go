package data

import "fmt"

// CaseFile is the parsed form of one external test-definition file. A file
// declares a single case: a name, an optional skip flag, and an ordered list
// of test definitions.
type CaseFile struct {
	Name  string    `json:"name"`
	Skip  bool      `json:"skip"`
	Tests []TestDef `json:"tests"`
}

// TestDef declares one test. A definition with no checks is a pending test
// and reports as skipped when run.
type TestDef struct {
	Description string     `json:"description"`
	Skip        bool       `json:"skip"`
	SkipReason  string     `json:"skipReason"`
	Checks      []CheckDef `json:"checks"`
}

// CheckDef is one declarative check inside a test. Exactly one of the fields
// must be set; which one decides the assertion applied at run time.
type CheckDef struct {
	Equal    *PairCheck    `json:"equal,omitempty"`
	NotEqual *PairCheck    `json:"notEqual,omitempty"`
	Compare  *CompareCheck `json:"compare,omitempty"`
	Match    *MatchCheck   `json:"match,omitempty"`
	NoMatch  *MatchCheck   `json:"noMatch,omitempty"`
	Includes *MemberCheck  `json:"includes,omitempty"`
	Excludes *MemberCheck  `json:"excludes,omitempty"`
	Empty    *ValueCheck   `json:"empty,omitempty"`
	NotEmpty *ValueCheck   `json:"notEmpty,omitempty"`
}

// PairCheck compares an actual value against an expected one.
type PairCheck struct {
	Actual   interface{} `json:"actual"`
	Expected interface{} `json:"expected"`
}

// CompareCheck applies an ordering operator between two values.
type CompareCheck struct {
	Actual   interface{} `json:"actual"`
	Op       string      `json:"op"`
	Expected interface{} `json:"expected"`
}

// MatchCheck tests a value against a regular expression pattern.
type MatchCheck struct {
	Value   string `json:"value"`
	Pattern string `json:"pattern"`
}

// MemberCheck tests membership of an item in a collection.
type MemberCheck struct {
	Collection interface{} `json:"collection"`
	Item       interface{} `json:"item"`
}

// ValueCheck carries a single value for unary checks.
type ValueCheck struct {
	Value interface{} `json:"value"`
}

// Validate rejects malformed definitions before any case is built, so file
// errors surface at load time rather than mid-run.
func (cf CaseFile) Validate() error {
	for i, td := range cf.Tests {
		if td.Description == "" {
			return fmt.Errorf("test %d has no description", i)
		}
		for j, cd := range td.Checks {
			if err := cd.validate(); err != nil {
				return fmt.Errorf("test %q check %d: %w", td.Description, j, err)
			}
		}
	}
	return nil
}

func (cd CheckDef) validate() error {
	n := 0
	for _, set := range []bool{
		cd.Equal != nil, cd.NotEqual != nil, cd.Compare != nil,
		cd.Match != nil, cd.NoMatch != nil,
		cd.Includes != nil, cd.Excludes != nil,
		cd.Empty != nil, cd.NotEmpty != nil,
	} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one check field, found %d", n)
	}
	return nil
}
