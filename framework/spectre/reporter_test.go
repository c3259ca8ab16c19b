package spectre

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHeader(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})
	assert.Equal(t, "Test Case: WidgetTest\n", r.FormatHeader("WidgetTest"))
}

func TestFormatCaseLinePerStatus(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})

	res := Result{Case: "WidgetTest", ID: "test_spins", Description: "spins freely"}
	assert.Equal(t, "  [ OK ] WidgetTest spins freely ", r.FormatCase(res))

	res.Status = Failed
	assert.Equal(t, "  [FAIL] WidgetTest spins freely ", r.FormatCase(res))

	res.Status = Skipped
	assert.Equal(t, "  [SKIP] WidgetTest spins freely ", r.FormatCase(res))

	res.Status = Errored
	res.Err = errors.New("axle snapped")
	assert.Equal(t, "  [ERR!] WidgetTest spins freely \n\t -- axle snapped", r.FormatCase(res))
}

func TestErrorTagOverridesStatus(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})
	res := Result{Case: "C", ID: "test_x", Description: "x", Status: Passed, Err: errors.New("late")}
	assert.Equal(t, "  [ERR!] C x \n\t -- late", r.FormatCase(res))
}

func TestFormatCaseFallsBackToDerivedDescription(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})
	res := Result{Case: "C", ID: "test_handles_empty_input"}
	assert.Equal(t, "  [ OK ] C handles empty input ", r.FormatCase(res))
}

func TestFormatFooterExactShape(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})
	rs := []Result{
		{Status: Passed},
		{Status: Skipped},
		{Status: Failed},
		{Status: Errored},
	}
	assert.Equal(t, "\n  4 tests, 1 passed, 1 skipped, 1 failed, 1 errors\n ", r.FormatFooter(rs))
	assert.Equal(t, "\n  0 tests, 0 passed, 0 skipped, 0 failed, 0 errors\n ", r.FormatFooter(nil))
}

func TestReportStreamsToSink(t *testing.T) {
	var sink bytes.Buffer
	r := NewReporter(&sink)

	out := r.Report(KindHeader, "C")
	assert.Equal(t, "Test Case: C\n", out)
	assert.Equal(t, "Test Case: C\n", sink.String())

	sink.Reset()
	r.Report(KindCase, Result{Case: "C", ID: "test_a", Description: "a"})
	// streamed case lines gain the terminator the format itself omits
	assert.Equal(t, "  [ OK ] C a \n", sink.String())
}

func TestReportUnknownKindIsNoOp(t *testing.T) {
	var sink bytes.Buffer
	r := NewReporter(&sink)
	assert.Equal(t, "", r.Report(ReportKind("banner"), "anything"))
	assert.Zero(t, sink.Len())
}

func TestDescribeMethod(t *testing.T) {
	assert.Equal(t, "handles empty input", DescribeMethod("test_handles_empty_input"))
	assert.Equal(t, "plain", DescribeMethod("plain"))
}
