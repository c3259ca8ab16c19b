package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spectre-test/spectre/framework/spectre"
)

type commandParams struct {
	dataDir        string
	filters        spectre.RegexFilters
	skipFile       string
	recordFailures string
	jUnitFile      string
	force          bool
	silent         bool
	debug          bool
	debugAll       bool
	progress       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.dataDir, "dir", "", "directory of external test definition files to load")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-file", "", "file of test IDs to suppress, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write IDs of failed tests to the specified path")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.BoolVar(&c.force, "force", false, "run cases even if they are marked skip")
	fs.BoolVar(&c.silent, "silent", false, "suppress the per-case report output")
	fs.BoolVar(&c.debug, "debug", false, "enable debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug output for all tests")
	fs.BoolVar(&c.progress, "progress", false, "show a progress bar instead of per-test console output")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
