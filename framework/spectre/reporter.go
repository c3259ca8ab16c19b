package spectre

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spectre-test/spectre/framework/helpers"
)

// ReportKind selects a formatter in the reporter's dispatch table.
type ReportKind string

const (
	KindHeader ReportKind = "header"
	KindCase   ReportKind = "case"
	KindFooter ReportKind = "footer"
)

// Tags for the per-test report line. An error always reports ERR! regardless
// of the coerced status.
const (
	TagPassed  = " OK "
	TagFailed  = "FAIL"
	TagSkipped = "SKIP"
	TagErrored = "ERR!"
)

// Reporter is pure formatting over an output sink. The sink is its only
// mutable attribute; everything else is a fixed dispatch table from report
// kind to formatter. Unknown report kinds are a no-op, never an error.
type Reporter struct {
	Output io.Writer

	formats map[ReportKind]func(args []interface{}) string
}

// NewReporter creates a reporter writing to the given sink, or to standard
// output when sink is nil.
func NewReporter(sink io.Writer) *Reporter {
	if sink == nil {
		sink = os.Stdout
	}
	r := &Reporter{Output: sink}
	r.formats = map[ReportKind]func([]interface{}) string{
		KindHeader: r.formatHeader,
		KindCase:   r.formatCase,
		KindFooter: r.formatFooter,
	}
	return r
}

// Report formats the given kind and streams it to the sink, returning the
// formatted text. A kind with no registered formatter returns the empty
// string and writes nothing.
func (r *Reporter) Report(kind ReportKind, args ...interface{}) string {
	format, ok := r.formats[kind]
	if !ok {
		return ""
	}
	s := format(args)
	_, _ = io.WriteString(r.Output, s)
	if kind == KindCase {
		// The per-test format carries no terminator of its own; the line is
		// closed here when streaming.
		_, _ = io.WriteString(r.Output, "\n")
	}
	return s
}

// FormatHeader renders the case header: "Test Case: <name>\n".
func (r *Reporter) FormatHeader(name string) string {
	return fmt.Sprintf("Test Case: %s\n", name)
}

// FormatCase renders one per-test line:
//
//	"  [<TAG>] <name> <description> <error-suffix>"
//
// where the error suffix is "\n\t -- <message>" when an error is present and
// empty otherwise.
func (r *Reporter) FormatCase(res Result) string {
	tag := helpers.IfElse(res.Err != nil, TagErrored, r.statusTag(res.Status))
	desc := res.Description
	if desc == "" {
		desc = DescribeMethod(res.ID)
	}
	suffix := ""
	if res.Err != nil {
		suffix = "\n\t -- " + res.Err.Error()
	}
	return fmt.Sprintf("  [%s] %s %s %s", tag, res.Case, desc, suffix)
}

// FormatFooter renders the aggregate line:
//
//	"\n  <n> tests, <p> passed, <s> skipped, <f> failed, <e> errors\n "
func (r *Reporter) FormatFooter(results []Result) string {
	t := Count(results)
	return fmt.Sprintf("\n  %d tests, %d passed, %d skipped, %d failed, %d errors\n ",
		t.Total, t.Passed, t.Skipped, t.Failed, t.Errored)
}

func (r *Reporter) statusTag(s Status) string {
	switch s {
	case Failed:
		return TagFailed
	case Skipped:
		return TagSkipped
	case Errored:
		return TagErrored
	}
	return TagPassed
}

func (r *Reporter) formatHeader(args []interface{}) string {
	if len(args) == 0 {
		return r.FormatHeader("")
	}
	name, _ := args[0].(string)
	return r.FormatHeader(name)
}

func (r *Reporter) formatCase(args []interface{}) string {
	if len(args) == 0 {
		return ""
	}
	res, ok := args[0].(Result)
	if !ok {
		return ""
	}
	return r.FormatCase(res)
}

func (r *Reporter) formatFooter(args []interface{}) string {
	if len(args) == 0 {
		return r.FormatFooter(nil)
	}
	results, _ := args[0].([]Result)
	return r.FormatFooter(results)
}

// DescribeMethod turns a generated method identifier back into readable text
// by stripping the reserved prefix and converting separators to spaces. The
// spec DSL records richer descriptions; this is the fallback for hand-written
// identifiers.
func DescribeMethod(id string) string {
	return strings.ReplaceAll(strings.TrimPrefix(id, TestPrefix), "_", " ")
}
