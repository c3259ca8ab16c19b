// Package framework contains the low-level infrastructure shared by the rest
// of the test framework: the Logger abstraction used for all diagnostic
// output, and the capturing logger that records per-test debug output so a
// test logger can decide later whether to display it.
//
// The higher-level components are in the subpackages:
//
// 1. spectre is the test case execution engine: cases, the registry, the
// run/report life cycle, and result coercion.
//
// 2. spec is the declarative layer that builds cases from describe/it style
// declarations.
//
// 3. matchers, check, and mock provide the assertion and test-double
// vocabulary used inside test bodies.
package framework
