// Package vertexstate holds the per-vertex incremental bookkeeping the
// admissibility engine maintains while it grows the R side of the
// ordering: for a vertex v, which neighbours currently sit in L versus R,
// and a local matching M_LR/M_RL certifying length-2 routes from v into R
// through an L-vertex (spec §3 VertexState).
//
// A State never reaches into another vertex's State directly — it only
// stores vertex IDs. Cross-vertex lookups (e.g. reading another vertex's
// N_L while repairing a matching) are the engine's job; this keeps States
// free of the cyclic back-references an earlier design iteration used.
//
// Core Methods:
//
//	New(id core.VertexID, neighbours []core.VertexID) *State  // O(deg(v)), N_L seeded, N_R/M_LR/M_RL empty
//	ID() core.VertexID                                        // O(1)
//	Deleted() bool                                             // O(1)
//	NL(u core.VertexID) bool                                   // O(1)
//	NR(u core.VertexID) bool                                   // O(1)
//	NLLen() int                                                // O(1)
//	NLVertices() []core.VertexID                               // O(|N_L|), fresh slice
//	NRVertices() []core.VertexID                               // O(|N_R|), fresh slice
//	MLR(x core.VertexID) (core.VertexID, bool)                 // O(1)
//	MRL(y core.VertexID) (core.VertexID, bool)                 // O(1)
//	MLRKeys() []core.VertexID                                  // O(|M_LR|), fresh slice
//	MRLKeys() []core.VertexID                                  // O(|M_RL|), fresh slice
//	MLRLen() int                                                // O(1)
//	MoveNeighbourLToR(u core.VertexID) error                   // O(1)
//	CanAddToM(x core.VertexID) bool                            // O(1)
//	AddMatching(x, y core.VertexID) error                      // O(1)
//	RemoveMatching(x core.VertexID) (core.VertexID, bool)      // O(1)
//	ApplyDelta(delta augpath.Delta) error                      // O(|delta.Add|+|delta.Remove|)
//	LocalBudgetAtMostP(p int) bool                             // O(1)
//	DeleteM()                                                   // O(|M_LR|), clears both matching maps
//
// Errors:
//
//	ErrNotAnLNeighbour  – MoveNeighbourLToR(u) where u ∉ N_L.
//	ErrAlreadyMatchedL  – AddMatching(x, _) where x is already an M_LR key.
//	ErrAlreadyMatchedR  – AddMatching(_, y) where y is already an M_RL key.
//	ErrLNeighbourAsKey  – AddMatching(x, _) where x ∈ N_L (can_add_to_M violation).
//	ErrSelfAsKey        – AddMatching(x, _) where x equals this vertex's own id.
//	ErrMatchingNotFound – ApplyDelta's Remove names an x that is not a current M_LR key.
//
// None of these ever indicate a problem with the input graph: every one
// signals the engine called an operation out of contract, i.e. an internal
// invariant violation (see engine.InvariantViolation, which wraps these
// under WithStrictInvariants rather than letting them escape as plain
// errors — spec §7 treats a broken precondition here as a fatal program
// bug, not recoverable control flow).
package vertexstate
