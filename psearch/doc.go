// Package psearch looks for the smallest p at which a graph is
// p-2-admissible without the caller having to guess it: starting from p0,
// it doubles upward on failure and bisects downward on success, relying on
// property P3 (admissibility is monotone in p) to make a binary search
// valid.
//
// Each candidate p is evaluated through a fresh run — callers pass a
// closure that constructs a new engine per call, since engine state is not
// meant to be reused across a p-search (spec.md §4.4).
package psearch
