package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/spectre-test/spectre/data"
	"github.com/spectre-test/spectre/framework"
	"github.com/spectre-test/spectre/framework/spectre"
	"github.com/spectre-test/spectre/suites"
)

const version = "1.0.0"

func main() {
	fmt.Printf("spectre v%s\n", version)

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (spectre.Results, error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	reg := spectre.NewRegistry()
	suites.RegisterAll(reg)
	if params.dataDir != "" {
		if _, err := data.RegisterDir(reg, params.dataDir); err != nil {
			return nil, err
		}
	}

	opts := spectre.RunOptions{
		Force:  params.force,
		Silent: params.silent || params.progress,
		Filter: params.filters.AsFilter(),
	}

	var loggers []spectre.TestLogger
	if params.progress {
		loggers = append(loggers, newProgressLogger(countRunnableTests(reg, opts)))
	} else {
		loggers = append(loggers, spectre.ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		})
	}
	if params.jUnitFile != "" {
		loggers = append(loggers, spectre.NewJUnitTestLogger(params.jUnitFile))
	}
	testLogger := &spectre.MultiTestLogger{Loggers: loggers}
	opts.Logger = testLogger

	results := reg.RunAll(opts)

	fmt.Println()
	fmt.Println(spectre.Summarize(results))
	logErr := testLogger.EndLog(results)
	if logErr != nil {
		return nil, fmt.Errorf("error writing log: %v", logErr)
	}

	if params.recordFailures != "" {
		if err := recordFailures(params.recordFailures, results); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// countRunnableTests pre-counts the tests a run will execute, for sizing the
// progress bar.
func countRunnableTests(reg *spectre.Registry, opts spectre.RunOptions) int {
	total := 0
	for _, c := range reg.Cases() {
		if c.Skipped() && !opts.Force {
			continue
		}
		for _, test := range c.Tests() {
			if opts.Filter == nil || opts.Filter(c.Name(), test.ID) {
				total++
			}
		}
	}
	return total
}

type progressLogger struct {
	bar *progressbar.ProgressBar
}

func newProgressLogger(total int) *progressLogger {
	return &progressLogger{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("running"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p *progressLogger) TestStarted(caseName, testID string) {}

func (p *progressLogger) TestFinished(result spectre.Result, debugOutput framework.CapturedOutput) {
	_ = p.bar.Add(1)
}

func (p *progressLogger) EndLog(results []spectre.Result) error {
	_ = p.bar.Finish()
	spectre.PrintResults(results)
	return nil
}

func recordFailures(path string, results []spectre.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create suppression file: %v", err)
	}
	for _, r := range results {
		if r.Status == spectre.Failed || r.Status == spectre.Errored {
			fmt.Fprintf(f, "%s/%s\n", r.Case, r.ID)
		}
	}
	return f.Close()
}

func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %v", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.MustNotMatch.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse suppression: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %v", err)
	}
	return nil
}
