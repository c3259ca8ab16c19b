// Package spectre is the test case execution engine. It is run as regular
// application code rather than through Go's testing package, so it can live
// inside a host application that has no external tooling.
//
// A Case is a named, ordered table of test records. Each record's body is run
// through a uniform wrapper that invokes the setup hook, guarantees the
// teardown hook on every exit path, and coerces whatever the body did into
// exactly one of four outcomes: passed, failed, skipped, or errored. Cases are
// collected in an explicitly owned Registry and run by a driver, with results
// streamed to a Reporter and to any number of TestLogger observers.
package spectre
