// Package fixtures builds the canonical small graphs used across this
// module's tests: the named topologies from spec.md's end-to-end scenarios
// (star, path, complete, cycle) plus the literal 9-vertex mixed graph whose
// minimal admissible p is known (p = 3).
package fixtures
