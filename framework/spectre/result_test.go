package spectre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeOneCharacterPerResultInOrder(t *testing.T) {
	rs := []Result{
		{Status: Passed},
		{Status: Skipped},
		{Status: Failed},
		{Status: Errored},
	}
	assert.Equal(t, ".SFE", Summarize(rs))
	assert.Equal(t, "", Summarize(nil))
	assert.Equal(t, "....", Summarize([]Result{{}, {}, {}, {}}))
}

func TestCountTallies(t *testing.T) {
	rs := []Result{
		{Status: Passed},
		{Status: Passed},
		{Status: Skipped},
		{Status: Failed},
		{Status: Errored},
	}
	tally := Count(rs)
	assert.Equal(t, Tally{Total: 5, Passed: 2, Skipped: 1, Failed: 1, Errored: 1}, tally)
}

func TestResultsOK(t *testing.T) {
	assert.True(t, Results{{Status: Passed}, {Status: Skipped}}.OK())
	assert.False(t, Results{{Status: Passed}, {Status: Failed}}.OK())
	assert.False(t, Results{{Status: Errored}}.OK())
	assert.True(t, Results{}.OK())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "passed", Passed.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "errored", Errored.String())
	assert.Equal(t, "unknown", Status(99).String())
}
