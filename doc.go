// Package p2adm decides p-2-admissibility for simple undirected graphs:
// whether a graph admits an ordering of its vertices into a shrinking set L
// and a growing set R such that every vertex can always reach R through at
// most p vertex-disjoint paths of length at most two.
//
// The decision procedure lives in package engine, built from two smaller
// pieces: vertexstate (per-vertex L/R neighbourhood and matching
// bookkeeping) and augpath (a bounded augmenting-path search used to repair
// a vertex's matching when its direct neighbourhood runs out of capacity).
// package psearch wraps engine in a doubling-then-bisection search for the
// smallest admissible p; package components lets independent connected
// pieces of a graph be decided separately; package fixtures builds the
// canonical small graphs used in tests and demos; package driver is the CLI
// surface around all of it.
//
//	core/        — the Graph type everything else operates on
//	augpath/     — bounded augmenting-path search over a per-vertex view
//	vertexstate/ — per-vertex L/R neighbourhoods and local matching
//	engine/      — the admissibility decision procedure itself
//	components/  — connected-component decomposition
//	fixtures/    — canonical topology builders for tests and demos
//	augcheck/    — independent matching oracle, test-only
//	psearch/     — search for the smallest admissible p
//	driver/      — CLI: graph I/O, argument parsing, exit codes
//	cmd/padm2/   — the padm2 binary
package p2adm
