package spectre

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectre-test/spectre/framework"
)

func TestJUnitLoggerWritesOneSuitePerCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	logger := NewJUnitTestLogger(path)

	results := []Result{
		{Case: "Alpha", ID: "test_passes", Status: Passed},
		{Case: "Alpha", ID: "test_fails", Status: Failed},
		{Case: "Beta", ID: "test_breaks", Status: Errored, Err: errors.New("boom")},
	}
	for _, r := range results {
		logger.TestStarted(r.Case, r.ID)
		logger.TestFinished(r, framework.CapturedOutput{})
	}
	require.NoError(t, logger.EndLog(results))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Suites []struct {
			Name     string `xml:"name,attr"`
			Tests    int    `xml:"tests,attr"`
			Failures int    `xml:"failures,attr"`
			Errors   int    `xml:"errors,attr"`
			Cases    []struct {
				Name    string `xml:"name,attr"`
				Failure *struct {
					Message string `xml:"message,attr"`
					Type    string `xml:"type,attr"`
				} `xml:"failure"`
			} `xml:"testcase"`
		} `xml:"testsuite"`
	}
	require.NoError(t, xml.Unmarshal(raw, &doc))

	require.Len(t, doc.Suites, 2)
	alpha := doc.Suites[0]
	assert.Equal(t, "Alpha", alpha.Name)
	assert.Equal(t, 2, alpha.Tests)
	assert.Equal(t, 1, alpha.Failures)
	require.Len(t, alpha.Cases, 2)
	assert.Nil(t, alpha.Cases[0].Failure)
	require.NotNil(t, alpha.Cases[1].Failure)

	beta := doc.Suites[1]
	assert.Equal(t, 1, beta.Errors)
	require.Len(t, beta.Cases, 1)
	require.NotNil(t, beta.Cases[0].Failure)
	assert.Equal(t, "boom", beta.Cases[0].Failure.Message)
	assert.Equal(t, "error", beta.Cases[0].Failure.Type)
}

func TestJUnitLoggerRecordsSkipReason(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	logger := NewJUnitTestLogger(path)

	c := NewCase("Skips")
	c.AddTest("test_skipped", "", func(t *T) bool {
		t.SkipWithReason("not ready")
		return false
	})
	results := c.Run(RunOptions{Silent: true, Logger: logger})
	require.NoError(t, logger.EndLog(results))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `<skipped message="not ready">`)
}
