// Package augpath implements a single, bounded augmenting-path search over a
// local bipartite view handed to it by package engine.
//
// Given a pivot vertex's matching state, the caller builds a View: a set of
// start vertices S (matched R-side witnesses that have a viable direct
// replacement), a set of target vertices T (free R-side witnesses reachable
// from the pivot), and a successor map Edges describing the one alternating
// step available from any vertex on the path. FindAugmentingPath performs a
// depth-first search from each start until some target is reached, then
// extracts the matching delta (the pairs to remove from, and add to, the
// pivot's own M_LR) implied by that path (spec §4.3.2).
//
// The search never mutates its input; it returns a description of the
// change, leaving application to vertexstate.State.ApplyDelta.
//
// Core Methods:
//
//	NewView() *View                                     // O(1)
//	(*View).FindAugmentingPath() (Delta, bool)          // see Complexity
//
// View fields (populated by the caller, not augpath itself):
//
//	S     map[core.VertexID]struct{}              // matched R-witnesses with a viable replacement
//	T     map[core.VertexID]struct{}              // free R-witnesses reachable from the pivot
//	Out   map[core.VertexID]core.VertexID         // for s ∈ S, the L-partner s would take
//	Edges map[core.VertexID][]core.VertexID       // one alternating step per vertex already on a path
//
// Delta fields (the return value of a successful search):
//
//	Remove map[core.VertexID]core.VertexID   // pairs broken by the path, keyed by L-side vertex
//	Add    map[core.VertexID]core.VertexID   // pairs formed by the path, keyed by L-side vertex
//
// Size invariant: len(Add) == len(Remove)+1 always — applying a Delta grows
// the pivot's matching by exactly one pair (spec §8 Property P5).
//
// Errors: none. FindAugmentingPath reports failure to find a path as
// (Delta{}, false), not an error — an augmenting path not existing is an
// expected outcome of the search, not a precondition violation.
//
// Complexity:
//
//	A single DFS visits each vertex in the View at most once per start
//	vertex tried (the visited set is scoped per-start, not shared across
//	S), so FindAugmentingPath is O(|S| · (|View.Edges| + |View.T|)) worst
//	case. In practice |S| and the View itself are bounded by p (the
//	admissibility parameter), since engine only ever builds a View over one
//	vertex's own N_L/N_R/M_LR/M_RL, all of which are capped near p by
//	property P4.
package augpath
