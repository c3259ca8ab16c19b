package spectre

import (
	"strings"

	"github.com/spectre-test/spectre/framework/opt"
)

// Status is the coerced outcome of executing one test body.
type Status int

const (
	// Passed means the body returned true.
	Passed Status = iota
	// Failed means the body returned false, or raised an assertion failure.
	Failed
	// Skipped means the body requested a skip, or had no body at all.
	Skipped
	// Errored means the body raised anything other than an assertion failure
	// or a skip request. The original error is preserved in Result.Err.
	Errored
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// Result is the outcome of one runnable test.
type Result struct {
	Case        string
	ID          string
	Description string
	Status      Status
	Err         error             // non-nil only for Errored
	SkipReason  opt.Maybe[string] // set when the skip carried a reason
}

// Results is an ordered list of per-test outcomes.
type Results []Result

// OK reports whether the run had no failures and no errors.
func (rs Results) OK() bool {
	for _, r := range rs {
		if r.Status == Failed || r.Status == Errored {
			return false
		}
	}
	return true
}

// Tally holds the aggregate counts used by the footer report and the driver.
type Tally struct {
	Total   int
	Passed  int
	Skipped int
	Failed  int
	Errored int
}

// Count tallies a result list.
func Count(rs []Result) Tally {
	t := Tally{Total: len(rs)}
	for _, r := range rs {
		switch r.Status {
		case Passed:
			t.Passed++
		case Failed:
			t.Failed++
		case Skipped:
			t.Skipped++
		default:
			t.Errored++
		}
	}
	return t
}

// Summarize renders a run as one character per result, in input order:
// "." for pass, "S" for skip, "F" for fail, and "E" for anything else.
// The format is a stable contract consumed by external summary displays.
func Summarize(rs []Result) string {
	var b strings.Builder
	for _, r := range rs {
		switch r.Status {
		case Passed:
			b.WriteByte('.')
		case Skipped:
			b.WriteByte('S')
		case Failed:
			b.WriteByte('F')
		default:
			b.WriteByte('E')
		}
	}
	return b.String()
}
