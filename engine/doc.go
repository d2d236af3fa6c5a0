// Package engine drives the incremental p-2-admissibility decision
// procedure: starting from L = V, R = ∅, it repeatedly moves one admissible
// candidate vertex from L to R, repairs the per-vertex matchings this
// disturbs, and runs a bounded augmenting-path search wherever a repair
// alone does not restore admissibility. It terminates with an ordering when
// L empties, or reports failure when no candidate remains while L is still
// non-empty (spec §4.3).
//
// Engine owns every vertexstate.State; no other type holds one. Augmenting-
// path views (package augpath) are built fresh per check and discarded
// immediately — nothing about them outlives a single check-processing
// pass.
//
// Configuration (Option):
//
//	WithStrictInvariants()
//	    Re-checks INV-1..INV-5 and property P4 after every move (O(|V|)
//	    extra work per move) and panics with *InvariantViolation on a
//	    broken one, instead of silently continuing on corrupted state.
//	    Off by default; on in every engine and psearch test (driver's
//	    tests run engines without it).
//
// Core Methods:
//
//	New(g *core.Graph, opts ...Option) *Engine            // O(|V|), one vertexstate.State per vertex
//	InitialiseCandidates(p int)                           // O(|V|)
//	Run(p int) ([]core.VertexID, error)                   // O(|V| moves + bounded check-processing per move)
//	Step(p int) (core.VertexID, bool)                     // one move_one_candidate_to_R; false once candidates is empty
//	MatchingSize(v core.VertexID) (int, bool)             // O(1)
//	LocalBipartiteGraph(v core.VertexID) ([]core.VertexID, map[core.VertexID][]core.VertexID, bool) // O(|N_R(v)| · max deg)
//
// Run is InitialiseCandidates followed by Step driven to completion; a
// caller driving Step itself calls InitialiseCandidates first. Most callers
// want Run.
// MatchingSize and LocalBipartiteGraph exist for introspection — notably
// the test suite's independent oracle cross-check (package augcheck) — and
// are not needed to drive a decision.
//
// Errors:
//
//	ErrNotAdmissible   – Run exhausted candidates with L still non-empty. Ordinary
//	                     control flow (spec §7 NotAdmissible), not a program bug.
//	                     Step returns no error; it reports an empty candidate set
//	                     as ok == false.
//	InvariantViolation – panicked (not returned) when WithStrictInvariants is set and
//	                     INV-1, INV-2, INV-3, INV-5, or P4 is found broken. Wraps the
//	                     specific invariant's sentinel error and the vertex it failed
//	                     at; spec §7 treats this as a fatal program bug with no
//	                     sensible recovery, hence panic rather than a returned error.
//
// Complexity:
//
//	A successful Run performs exactly |V| moves (property P2); each move
//	does O(deg(v)) one-hop propagation, O(|M_LR(v)|·deg) two-hop
//	propagation, and a bounded number of check-processing rounds whose
//	per-check cost is the augmenting-path search's own O(p) bound (package
//	augpath). WithStrictInvariants adds O(|V|) re-verification per move and
//	should not be enabled on a production decide loop over a large graph.
package engine
