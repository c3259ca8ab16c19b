package spectre

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/spectre-test/spectre/framework"
)

var consoleTestErrorColor = color.New(color.FgYellow)              //nolint:gochecknoglobals
var consoleTestFailedColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleTestSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)               //nolint:gochecknoglobals
var allTestsPassedColor = color.New(color.FgGreen)                 //nolint:gochecknoglobals

// TestLogger receives status information about each test as a run progresses.
// It observes the run; the Reporter owns the stable text contract.
type TestLogger interface {
	TestStarted(caseName, testID string)
	TestFinished(result Result, debugOutput framework.CapturedOutput)
	EndLog(results []Result) error
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(string, string)                    {}
func (n nullTestLogger) TestFinished(Result, framework.CapturedOutput) {}
func (n nullTestLogger) EndLog([]Result) error                        { return nil }

// NullTestLogger returns a TestLogger that ignores everything.
func NullTestLogger() TestLogger { return nullTestLogger{} }

// ConsoleTestLogger writes colorized per-test status to standard output,
// optionally including the captured debug output of each test.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleTestLogger) TestStarted(caseName, testID string) {
	fmt.Printf("[%s/%s]\n", caseName, testID)
}

func (c ConsoleTestLogger) TestFinished(result Result, debugOutput framework.CapturedOutput) {
	switch result.Status {
	case Errored:
		if result.Err != nil {
			for _, line := range strings.Split(result.Err.Error(), "\n") {
				_, _ = consoleTestErrorColor.Printf("  %s\n", line)
			}
		}
		_, _ = consoleTestFailedColor.Printf("  ERROR: %s/%s\n", result.Case, result.ID)
	case Failed:
		_, _ = consoleTestFailedColor.Printf("  FAILED: %s/%s\n", result.Case, result.ID)
	case Skipped:
		if reason := result.SkipReason.Value(); reason != "" {
			_, _ = consoleTestSkippedColor.Printf("  SKIPPED: %s/%s (%s)\n", result.Case, result.ID, reason)
		} else {
			_, _ = consoleTestSkippedColor.Printf("  SKIPPED: %s/%s\n", result.Case, result.ID)
		}
	}
	failed := result.Status == Failed || result.Status == Errored
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Println(debugOutput.ToString("    DEBUG "))
	}
}

func (c ConsoleTestLogger) EndLog(results []Result) error {
	PrintResults(results)
	return nil
}

// PrintResults writes the final colorized recap to the console.
func PrintResults(results []Result) {
	if Results(results).OK() {
		_, _ = allTestsPassedColor.Println("All tests passed")
		return
	}
	var bad []Result
	for _, r := range results {
		if r.Status == Failed || r.Status == Errored {
			bad = append(bad, r)
		}
	}
	_, _ = consoleTestFailedColor.Fprintf(os.Stderr, "FAILED TESTS (%d):\n", len(bad))
	for _, r := range bad {
		_, _ = consoleTestFailedColor.Fprintf(os.Stderr, "  * %s/%s\n", r.Case, r.ID)
	}
}

// MultiTestLogger fans out to several loggers.
type MultiTestLogger struct {
	Loggers []TestLogger
}

func (m *MultiTestLogger) TestStarted(caseName, testID string) {
	for _, l := range m.Loggers {
		l.TestStarted(caseName, testID)
	}
}

func (m *MultiTestLogger) TestFinished(result Result, debugOutput framework.CapturedOutput) {
	for _, l := range m.Loggers {
		l.TestFinished(result, debugOutput)
	}
}

func (m *MultiTestLogger) EndLog(results []Result) error {
	var firstErr error
	for _, l := range m.Loggers {
		if err := l.EndLog(results); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
