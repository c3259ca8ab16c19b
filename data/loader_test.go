package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectre-test/spectre/framework/spectre"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

const arithmeticYAML = `
name: Arithmetic
tests:
  - description: adds up
    checks:
      - equal: {actual: 4, expected: 4}
      - compare: {actual: 3, op: "<", expected: 5}
  - description: does not conflate
    checks:
      - notEqual: {actual: 4, expected: 5}
`

const stringsJSON = `{
  "tests": [
    {
      "description": "finds substrings",
      "checks": [
        {"includes": {"collection": "hello world", "item": "world"}},
        {"match": {"value": "v2.13.1", "pattern": "^v[0-9]+"}}
      ]
    },
    {"description": "not written yet"}
  ]
}`

func TestLoadDirDiscoversAndSortsDefinitions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0700))
	writeFile(t, dir, "zz_arith.spec.yaml", arithmeticYAML)
	writeFile(t, filepath.Join(dir, "nested"), "strings.spec.json", stringsJSON)
	writeFile(t, dir, "notes.txt", "ignored")

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	// sorted by path, and the unnamed file takes its base name
	assert.Equal(t, "strings", files[0].Name)
	assert.Equal(t, "Arithmetic", files[1].Name)
}

func TestLoadFileRejectsInvalidDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.spec.yaml", `
tests:
  - description: two checks in one slot
    checks:
      - equal: {actual: 1, expected: 1}
        empty: {value: ""}
`)
	_, err := LoadFile(filepath.Join(dir, "bad.spec.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one check field")

	writeFile(t, dir, "anon.spec.yaml", `
tests:
  - checks:
      - equal: {actual: 1, expected: 1}
`)
	_, err = LoadFile(filepath.Join(dir, "anon.spec.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no description")
}

func TestBuildCaseRunsDeclaredChecks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.spec.yaml", `
name: Mixed
tests:
  - description: passes
    checks:
      - empty: {value: ""}
      - excludes: {collection: [1, 2], item: 3}
  - description: fails
    checks:
      - equal: {actual: 1, expected: 2}
  - description: sits this one out
    skip: true
    skipReason: flaky upstream
    checks:
      - equal: {actual: 1, expected: 1}
  - description: pending
`)
	cf, err := LoadFile(filepath.Join(dir, "mixed.spec.yaml"))
	require.NoError(t, err)

	results := BuildCase(cf).Run(spectre.RunOptions{Silent: true})
	require.Len(t, results, 4)
	assert.Equal(t, ".FSS", spectre.Summarize(results))
	assert.Equal(t, "flaky upstream", results[2].SkipReason.Value())
}

func TestBuildCaseHonorsFileLevelSkip(t *testing.T) {
	cf := CaseFile{
		Name: "Shelved",
		Skip: true,
		Tests: []TestDef{
			{Description: "anything", Checks: []CheckDef{{Empty: &ValueCheck{Value: ""}}}},
		},
	}
	c := BuildCase(cf)
	assert.Empty(t, c.Run(spectre.RunOptions{Silent: true}))
	assert.Len(t, c.Run(spectre.RunOptions{Force: true, Silent: true}), 1)
}

func TestBuildCaseFlagsBadCompareOperator(t *testing.T) {
	cf := CaseFile{
		Name: "Operators",
		Tests: []TestDef{
			{Description: "bogus op", Checks: []CheckDef{
				{Compare: &CompareCheck{Actual: 1, Op: "<>", Expected: 2}},
			}},
		},
	}
	results := BuildCase(cf).Run(spectre.RunOptions{Silent: true})
	require.Len(t, results, 1)
	assert.Equal(t, spectre.Failed, results[0].Status)
}

func TestRegisterDirLoadsExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.spec.yaml", arithmeticYAML)

	reg := spectre.NewRegistry()
	n, err := RegisterDir(reg, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, reg.Cases(), 1)

	n, err = RegisterDir(reg, dir)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, reg.Cases(), 1)

	results := reg.RunAll(spectre.RunOptions{Silent: true})
	assert.Equal(t, "..", spectre.Summarize(results))
}
