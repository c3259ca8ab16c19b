package spectre

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/spectre-test/spectre/framework"
	"github.com/spectre-test/spectre/framework/opt"
)

// JUnitTestLogger accumulates per-test timing and output during a run and
// writes a JUnit XML document at the end, one testsuite per case.
type JUnitTestLogger struct {
	filePath string
	keys     []string // preserves run order
	tests    map[string]*jUnitTestStatus
}

type jUnitTestStatus struct {
	skipped   opt.Maybe[string]
	output    string
	startTime time.Time
	duration  time.Duration
}

// Struct definitions for the JUnit XML schema - see https://github.com/jstemmer/go-junit-report

type jUnitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []jUnitXMLTestSuite `xml:"testsuite"`
}

type jUnitXMLTestSuite struct {
	XMLName   xml.Name           `xml:"testsuite"`
	Tests     int                `xml:"tests,attr"`
	Failures  int                `xml:"failures,attr"`
	Errors    int                `xml:"errors,attr"`
	Time      string             `xml:"time,attr"`
	Name      string             `xml:"name,attr"`
	TestCases []jUnitXMLTestCase `xml:"testcase"`
}

type jUnitXMLTestCase struct {
	XMLName     xml.Name             `xml:"testcase"`
	Classname   string               `xml:"classname,attr"`
	Name        string               `xml:"name,attr"`
	Time        string               `xml:"time,attr"`
	SkipMessage *jUnitXMLSkipMessage `xml:"skipped,omitempty"`
	Failure     *jUnitXMLFailure     `xml:"failure,omitempty"`
}

type jUnitXMLSkipMessage struct {
	Message string `xml:"message,attr"`
}

type jUnitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

// NewJUnitTestLogger creates a logger that will write to filePath at EndLog.
func NewJUnitTestLogger(filePath string) *JUnitTestLogger {
	return &JUnitTestLogger{
		filePath: filePath,
		tests:    make(map[string]*jUnitTestStatus),
	}
}

func junitKey(caseName, testID string) string { return caseName + "/" + testID }

func (j *JUnitTestLogger) TestStarted(caseName, testID string) {
	key := junitKey(caseName, testID)
	if _, ok := j.tests[key]; !ok {
		j.keys = append(j.keys, key)
	}
	j.tests[key] = &jUnitTestStatus{startTime: time.Now()}
}

func (j *JUnitTestLogger) TestFinished(result Result, debugOutput framework.CapturedOutput) {
	status := j.tests[junitKey(result.Case, result.ID)]
	if status == nil {
		return
	}
	status.output = debugOutput.ToString("")
	status.duration = time.Since(status.startTime)
	if result.Status == Skipped {
		status.skipped = opt.Some(result.SkipReason.Value())
	}
}

// EndLog writes the XML document.
func (j *JUnitTestLogger) EndLog(results []Result) error {
	fmt.Printf("Writing JUnit data to %s\n", j.filePath)

	byKey := make(map[string]Result, len(results))
	for _, r := range results {
		byKey[junitKey(r.Case, r.ID)] = r
	}

	var doc jUnitXMLDocument
	for _, caseName := range j.caseNamesInOrder() {
		suite := jUnitXMLTestSuite{Name: caseName}
		suiteTotalDuration := time.Duration(0)
		for _, key := range j.keys {
			result, ok := byKey[key]
			if !ok || result.Case != caseName {
				continue
			}
			status := j.tests[key]

			suite.Tests++
			switch result.Status {
			case Failed:
				suite.Failures++
			case Errored:
				suite.Errors++
			}
			suiteTotalDuration += status.duration

			testCase := jUnitXMLTestCase{
				Classname: caseName,
				Name:      result.ID,
				Time:      jUnitDurationString(status.duration),
			}
			if status.skipped.IsDefined() {
				testCase.SkipMessage = &jUnitXMLSkipMessage{Message: status.skipped.Value()}
			}
			switch result.Status {
			case Failed:
				testCase.Failure = &jUnitXMLFailure{
					Message:  "assertion failed or falsy result",
					Contents: status.output,
				}
			case Errored:
				message := ""
				if result.Err != nil {
					message = result.Err.Error()
				}
				testCase.Failure = &jUnitXMLFailure{
					Message:  message,
					Type:     "error",
					Contents: status.output,
				}
			}

			suite.TestCases = append(suite.TestCases, testCase)
		}
		suite.Time = jUnitDurationString(suiteTotalDuration)
		doc.Suites = append(doc.Suites, suite)
	}

	bytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	bytes = append(bytes, '\n')

	return os.WriteFile(j.filePath, bytes, 0644) //nolint:gosec
}

func (j *JUnitTestLogger) caseNamesInOrder() []string {
	var ret []string
	seen := make(map[string]bool)
	for _, key := range j.keys {
		caseName := key
		for i := 0; i < len(key); i++ {
			if key[i] == '/' {
				caseName = key[:i]
				break
			}
		}
		if !seen[caseName] {
			ret = append(ret, caseName)
			seen[caseName] = true
		}
	}
	return ret
}

func jUnitDurationString(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
