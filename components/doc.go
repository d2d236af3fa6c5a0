// Package components buckets a graph's vertices into connected components
// via iterative DFS. The admissibility decider can run independently on
// each component (spec.md §9's concurrency note), so callers are expected
// to pass each returned component to its own engine.Engine.
package components
