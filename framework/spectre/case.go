package spectre

import (
	"fmt"
	"io"

	"github.com/spectre-test/spectre/framework"
	"github.com/spectre-test/spectre/framework/opt"
)

// TestPrefix is the reserved prefix that marks an identifier as a runnable
// test method.
const TestPrefix = "test_"

// Body is one runnable test body. Returning true marks the test passed and
// returning false marks it failed; a body can also bail out through the skip
// or assertion mechanisms on T. A nil Body is a standing skip request.
type Body func(*T) bool

// Test is one declarative entry in a case's test table. The table replaces
// runtime method generation: each entry is just an identifier, a description,
// and a closure, collected at declaration time and iterated by the runner.
type Test struct {
	ID          string
	Description string
	Body        Body
}

// Case is the base runnable unit of testing logic: a named, ordered table of
// tests plus optional setup/teardown hooks. Tests run in declaration order,
// which is the documented stable ordering for positional result checks.
type Case struct {
	name     string
	skip     bool
	before   func(*T)
	after    func(*T)
	tests    []Test
	lets     map[string]func(*T) interface{}
	reporter *Reporter
}

// NewCase creates an empty case with the given display name.
func NewCase(name string) *Case {
	return &Case{name: name, lets: make(map[string]func(*T) interface{})}
}

// Name returns the case's display name.
func (c *Case) Name() string { return c.name }

// SetName overrides the display name.
func (c *Case) SetName(name string) { c.name = name }

// MarkSkip flags the whole case to be bypassed unless a run is forced.
func (c *Case) MarkSkip() { c.skip = true }

// Skipped reports whether the case is flagged to be bypassed.
func (c *Case) Skipped() bool { return c.skip }

// SetBefore installs the setup hook. There is exactly one; a later call
// replaces the earlier hook.
func (c *Case) SetBefore(fn func(*T)) { c.before = fn }

// SetAfter installs the teardown hook, with the same last-call-wins rule.
func (c *Case) SetAfter(fn func(*T)) { c.after = fn }

// AddTest appends a test record. Adding an ID that already exists replaces
// the earlier body and description in place, keeping the original position:
// colliding identifiers are allowed and the last definition wins.
func (c *Case) AddTest(id, description string, body Body) {
	for i := range c.tests {
		if c.tests[i].ID == id {
			c.tests[i].Description = description
			c.tests[i].Body = body
			return
		}
	}
	c.tests = append(c.tests, Test{ID: id, Description: description, Body: body})
}

// Tests returns a copy of the test table in run order.
func (c *Case) Tests() []Test {
	return append([]Test(nil), c.tests...)
}

// DefineLet registers a memoized binding evaluated at most once per run
// instance. The spec DSL uses this for let and subject.
func (c *Case) DefineLet(name string, fn func(*T) interface{}) {
	c.lets[name] = fn
}

// Reporter returns the case's formatter, creating it on first use. The
// reporter is memoized so its sink can be redirected once and reused.
func (c *Case) Reporter() *Reporter {
	if c.reporter == nil {
		c.reporter = NewReporter(nil)
	}
	return c.reporter
}

// RunOptions controls a single case run.
type RunOptions struct {
	// Force runs the case even if it is marked skip.
	Force bool
	// Silent suppresses all reporter output.
	Silent bool
	// Filter optionally restricts which tests run, by case name and test ID.
	Filter Filter
	// Output redirects the reporter sink for this run when non-nil.
	Output io.Writer
	// Logger receives status notifications for each test.
	Logger TestLogger
}

// Run executes every test in the table through the uniform wrapper and
// returns the ordered result list. A case marked skip returns an empty list
// immediately, with no reporter interaction, unless the run is forced.
func (c *Case) Run(opts RunOptions) []Result {
	if c.skip && !opts.Force {
		return nil
	}
	rep := c.Reporter()
	if opts.Output != nil {
		rep.Output = opts.Output
	}
	logger := opts.Logger
	if logger == nil {
		logger = nullTestLogger{}
	}
	if !opts.Silent {
		rep.Report(KindHeader, c.name)
	}
	t := NewT(c)
	var results []Result
	for _, test := range c.tests {
		if opts.Filter != nil && !opts.Filter(c.name, test.ID) {
			continue
		}
		logger.TestStarted(c.name, test.ID)
		t.debug = &framework.CapturingLogger{}
		res := c.invoke(t, test)
		results = append(results, res)
		if !opts.Silent {
			rep.Report(KindCase, res)
		}
		logger.TestFinished(res, t.debug.Output())
	}
	if !opts.Silent {
		rep.Report(KindFooter, results)
	}
	return results
}

// invoke is the execution envelope for one test: setup before, teardown
// always, body exactly once, outcome coerced into a Result. A panic in the
// teardown hook is contained here as an erratic result rather than aborting
// sibling tests.
func (c *Case) invoke(t *T, test Test) (res Result) {
	res = Result{Case: c.name, ID: test.ID, Description: test.Description}
	defer func() {
		if r := recover(); r != nil {
			switch sig := r.(type) {
			case *skipSignal:
				res.Status = Skipped
				if sig.reason != "" {
					res.SkipReason = opt.Some(sig.reason)
				}
			case *AssertionError:
				res.Status = Failed
			default:
				res.Status = Errored
				res.Err = toError(r)
			}
		}
	}()
	if c.before != nil {
		c.before(t)
	}
	defer func() {
		if c.after != nil {
			c.after(t)
		}
	}()
	if test.Body == nil {
		t.Skip()
	}
	if test.Body(t) {
		res.Status = Passed
	} else {
		res.Status = Failed
	}
	return res
}

// T is the per-run instance state handed to every hook and body of one case
// run. It carries the memo table for let bindings, which is why memoized
// values persist across the tests of a single run but never across runs.
type T struct {
	c     *Case
	memo  map[string]interface{}
	debug *framework.CapturingLogger
}

// NewT creates a fresh run instance for a case.
func NewT(c *Case) *T {
	return &T{c: c, memo: make(map[string]interface{}), debug: &framework.CapturingLogger{}}
}

// Skip raises the skip-requested signal, unwinding out of the current body
// without marking it failing.
func (t *T) Skip() {
	panic(&skipSignal{})
}

// SkipWithReason is equivalent to Skip but records a reason.
func (t *T) SkipWithReason(reason string) {
	panic(&skipSignal{reason: reason})
}

// Val returns the value of a let binding, evaluating it on first access and
// returning the cached value thereafter.
func (t *T) Val(name string) interface{} {
	if v, ok := t.memo[name]; ok {
		return v
	}
	fn := t.c.lets[name]
	if fn == nil {
		panic(fmt.Errorf("no binding named %q on case %q", name, t.c.name))
	}
	v := fn(t)
	t.memo[name] = v
	return v
}

// Subject returns the memoized subject binding.
func (t *T) Subject() interface{} { return t.Val("subject") }

// Debug writes a message to the captured output for the current test.
func (t *T) Debug(message string, args ...interface{}) {
	t.debug.Printf(message, args...)
}

// DebugLogger returns the Logger receiving this test's captured output.
func (t *T) DebugLogger() framework.Logger { return t.debug }
