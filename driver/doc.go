// Package driver is the outside-the-core surface spec.md §6 names: CLI
// argument parsing, gzipped network loading and ordering output, optional
// peak-memory sampling, and the exit codes a caller script depends on. None
// of it touches engine invariants directly — it only builds a core.Graph,
// calls into engine/psearch/components, and serialises the result.
package driver
