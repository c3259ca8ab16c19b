package spec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectre-test/spectre/framework/spectre"
)

func silentRun(c *spectre.Case) []spectre.Result {
	return c.Run(spectre.RunOptions{Force: true, Silent: true, Output: &bytes.Buffer{}})
}

func TestMethodIDSanitizesDisallowedCharacters(t *testing.T) {
	assert.Equal(t, "test___testing__", MethodID("@#testing&^"))
	assert.Equal(t, "test_keeps_ok?_and_bang!", MethodID("keeps ok? and bang!"))
	assert.Equal(t, "test_", MethodID(""))
}

func TestItRecordsVerbatimDescription(t *testing.T) {
	s := Describe("Sanitizing", nil)
	s.It("@#testing&^", func(tt *spectre.T) bool { return true })

	tests := s.Case().Tests()
	require.Len(t, tests, 1)
	assert.Equal(t, "test___testing__", tests[0].ID)
	assert.Equal(t, "@#testing&^", tests[0].Description)

	results := silentRun(s.Case())
	require.Len(t, results, 1)
	assert.Equal(t, spectre.Passed, results[0].Status)
	assert.Equal(t, "@#testing&^", results[0].Description)
}

func TestItWithoutBodySkipsInsteadOfFailing(t *testing.T) {
	s := Describe("Pending", nil)
	s.It("will be written later", nil)

	results := silentRun(s.Case())
	require.Len(t, results, 1)
	assert.Equal(t, spectre.Skipped, results[0].Status)
	assert.Nil(t, results[0].Err)
}

func TestCollidingIdentifiersLastDefinitionWins(t *testing.T) {
	s := Describe("Collisions", nil)
	s.It("same id", func(tt *spectre.T) bool { return false })
	s.It("same/id", func(tt *spectre.T) bool { return true })

	tests := s.Case().Tests()
	require.Len(t, tests, 1)
	assert.Equal(t, "same/id", tests[0].Description)

	results := silentRun(s.Case())
	require.Len(t, results, 1)
	assert.Equal(t, spectre.Passed, results[0].Status)
}

func TestLetEvaluatesAtMostOncePerInstance(t *testing.T) {
	evaluations := 0
	s := Describe("Memoization", nil)
	s.Let("x", func(tt *spectre.T) interface{} {
		evaluations++
		return evaluations
	})
	s.It("sees the same value twice", func(tt *spectre.T) bool {
		return tt.Val("x") == 1 && tt.Val("x") == 1
	})
	s.It("shares the memo across tests of one run", func(tt *spectre.T) bool {
		return tt.Val("x") == 1
	})

	results := silentRun(s.Case())
	require.Len(t, results, 2)
	assert.Equal(t, spectre.Passed, results[0].Status)
	assert.Equal(t, spectre.Passed, results[1].Status)
	assert.Equal(t, 1, evaluations)

	// a fresh run uses a fresh instance, so the memo starts over
	_ = silentRun(s.Case())
	assert.Equal(t, 2, evaluations)
}

func TestSubjectAndDefaultName(t *testing.T) {
	s := Describe("", func(tt *spectre.T) interface{} { return errors.New("x") })
	assert.Equal(t, "*errors.errorString", s.Case().Name())

	s2 := Describe("Named", func(tt *spectre.T) interface{} { return 3 })
	assert.Equal(t, "Named", s2.Case().Name())
	s2.It("exposes the subject", func(tt *spectre.T) bool {
		return tt.Subject() == 3
	})
	results := silentRun(s2.Case())
	require.Len(t, results, 1)
	assert.Equal(t, spectre.Passed, results[0].Status)
}

func TestBeforeAndAfterLastCallWins(t *testing.T) {
	var order []string
	s := Describe("Hooks", nil)
	s.Before(func(tt *spectre.T) { order = append(order, "first-before") })
	s.BeforeEach(func(tt *spectre.T) { order = append(order, "before") })
	s.After(func(tt *spectre.T) { order = append(order, "first-after") })
	s.AfterEach(func(tt *spectre.T) { order = append(order, "after") })
	s.It("runs between the hooks", func(tt *spectre.T) bool {
		order = append(order, "body")
		return true
	})

	_ = silentRun(s.Case())
	assert.Equal(t, []string{"before", "body", "after"}, order)
}

func TestSuiteSkipBypassesRunUnlessForced(t *testing.T) {
	ran := false
	s := Describe("Bypassed", nil).Skip()
	s.It("never runs", func(tt *spectre.T) bool { ran = true; return true })

	results := s.Case().Run(spectre.RunOptions{Silent: true})
	assert.Empty(t, results)
	assert.False(t, ran)

	_ = silentRun(s.Case())
	assert.True(t, ran)
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := spectre.NewRegistry()
	s := Describe("Once", nil)
	s.It("exists", func(tt *spectre.T) bool { return true })
	s.Register(reg)
	s.Register(reg)
	assert.Len(t, reg.Cases(), 1)
}
