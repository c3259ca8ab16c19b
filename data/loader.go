// Package data loads external test definitions from JSON or YAML files and
// turns them into runnable cases. File discovery is recursive and
// deterministic, and loading is gated through the registry so a definition
// tree is read at most once per run context.
package data

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/spectre-test/spectre/framework/check"
	"github.com/spectre-test/spectre/framework/spec"
	"github.com/spectre-test/spectre/framework/spectre"
)

var fileSuffixes = []string{".spec.json", ".spec.yaml", ".spec.yml"}

// LoadDir reads every test-definition file under root, recursively, in sorted
// path order. A file's case name defaults to its base name without the
// definition suffix.
func LoadDir(root string) ([]CaseFile, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasFileSuffix(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %q: %w", root, err)
	}
	slices.Sort(paths)

	var out []CaseFile
	for _, path := range paths {
		cf, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, cf)
	}
	return out, nil
}

// LoadFile reads and validates a single test-definition file.
func LoadFile(path string) (CaseFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CaseFile{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	var cf CaseFile
	if err := ParseJSONOrYAML(raw, &cf); err != nil {
		return CaseFile{}, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if cf.Name == "" {
		cf.Name = trimFileSuffix(filepath.Base(path))
	}
	if err := cf.Validate(); err != nil {
		return CaseFile{}, fmt.Errorf("invalid definition in %q: %w", path, err)
	}
	return cf, nil
}

// BuildCase turns a parsed definition into a runnable case. Each declared
// check maps onto the corresponding assertion helper, so a failing check
// reports as a failure and a malformed comparison operator as well.
func BuildCase(cf CaseFile) *spectre.Case {
	s := spec.Describe(cf.Name, nil)
	if cf.Skip {
		s.Skip()
	}
	for _, td := range cf.Tests {
		td := td
		if len(td.Checks) == 0 && !td.Skip {
			s.It(td.Description, nil)
			continue
		}
		s.It(td.Description, func(t *spectre.T) bool {
			if td.Skip {
				if td.SkipReason != "" {
					t.SkipWithReason(td.SkipReason)
				}
				t.Skip()
			}
			for _, cd := range td.Checks {
				applyCheck(cd)
			}
			return true
		})
	}
	return s.Case()
}

func applyCheck(cd CheckDef) {
	switch {
	case cd.Equal != nil:
		check.Equal(cd.Equal.Actual, cd.Equal.Expected)
	case cd.NotEqual != nil:
		check.NotEqual(cd.NotEqual.Actual, cd.NotEqual.Expected)
	case cd.Compare != nil:
		check.Compare(cd.Compare.Actual, cd.Compare.Op, cd.Compare.Expected)
	case cd.Match != nil:
		check.Match(cd.Match.Value, cd.Match.Pattern)
	case cd.NoMatch != nil:
		check.NoMatch(cd.NoMatch.Value, cd.NoMatch.Pattern)
	case cd.Includes != nil:
		check.Includes(cd.Includes.Collection, cd.Includes.Item)
	case cd.Excludes != nil:
		check.Excludes(cd.Excludes.Collection, cd.Excludes.Item)
	case cd.Empty != nil:
		check.Empty(cd.Empty.Value)
	case cd.NotEmpty != nil:
		check.NotEmpty(cd.NotEmpty.Value)
	}
}

// RegisterDir loads every definition file under root and registers the built
// cases. The load is gated by the registry's load-once flag: the first call
// does the work and returns the number of cases registered, later calls
// return zero with no error.
func RegisterDir(reg *spectre.Registry, root string) (int, error) {
	count := 0
	_, err := reg.LoadOnce(func() error {
		files, err := LoadDir(root)
		if err != nil {
			return err
		}
		for _, cf := range files {
			reg.Register(BuildCase(cf))
			count++
		}
		return nil
	})
	return count, err
}

func hasFileSuffix(path string) bool {
	for _, suffix := range fileSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func trimFileSuffix(base string) string {
	for _, suffix := range fileSuffixes {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}
