package vertexstate

import (
	"errors"

	"github.com/katalvlaran/p2adm/augpath"
	"github.com/katalvlaran/p2adm/core"
)

// Sentinel errors for State precondition violations. These never indicate a
// problem with the input graph — they indicate the engine called an
// operation out of contract, i.e. an internal invariant violation (see
// engine.InvariantViolation, which wraps these under WithStrictInvariants).
var (
	ErrNotAnLNeighbour  = errors.New("vertexstate: vertex is not a current L-neighbour")
	ErrAlreadyMatchedL  = errors.New("vertexstate: x is already a key in M_LR")
	ErrAlreadyMatchedR  = errors.New("vertexstate: y is already a value in M_LR")
	ErrLNeighbourAsKey  = errors.New("vertexstate: x is a direct L-neighbour, cannot be a matching key")
	ErrSelfAsKey        = errors.New("vertexstate: x equals this vertex's own id")
	ErrMatchingNotFound = errors.New("vertexstate: x is not a current M_LR key")
)

// State is one vertex's incremental bookkeeping (spec §3 VertexState).
type State struct {
	id core.VertexID

	nL map[core.VertexID]struct{}
	nR map[core.VertexID]struct{}

	mLR map[core.VertexID]core.VertexID
	mRL map[core.VertexID]core.VertexID

	deletedM bool
}

// New builds a State for id with N_L seeded from neighbours. N_R, M_LR and
// M_RL start empty (spec §4.2 construct).
func New(id core.VertexID, neighbours []core.VertexID) *State {
	nL := make(map[core.VertexID]struct{}, len(neighbours))
	for _, n := range neighbours {
		nL[n] = struct{}{}
	}

	return &State{
		id:  id,
		nL:  nL,
		nR:  make(map[core.VertexID]struct{}),
		mLR: make(map[core.VertexID]core.VertexID),
		mRL: make(map[core.VertexID]core.VertexID),
	}
}

// ID returns the vertex this state belongs to.
func (s *State) ID() core.VertexID { return s.id }

// Deleted reports whether DeleteM has been called on this state.
func (s *State) Deleted() bool { return s.deletedM }

// NL reports whether u is currently an L-neighbour.
func (s *State) NL(u core.VertexID) bool {
	_, ok := s.nL[u]
	return ok
}

// NR reports whether u is currently an R-neighbour.
func (s *State) NR(u core.VertexID) bool {
	_, ok := s.nR[u]
	return ok
}

// NLLen returns |N_L(v)|.
func (s *State) NLLen() int { return len(s.nL) }

// NRVertices returns a fresh copy of N_R(v).
func (s *State) NRVertices() []core.VertexID {
	out := make([]core.VertexID, 0, len(s.nR))
	for v := range s.nR {
		out = append(out, v)
	}
	return out
}

// NLVertices returns a fresh copy of N_L(v).
func (s *State) NLVertices() []core.VertexID {
	out := make([]core.VertexID, 0, len(s.nL))
	for v := range s.nL {
		out = append(out, v)
	}
	return out
}

// MLR returns the matched R-witness for x, if x is currently a key.
func (s *State) MLR(x core.VertexID) (core.VertexID, bool) {
	y, ok := s.mLR[x]
	return y, ok
}

// MRL returns the matched L-partner for y, if y is currently a value.
func (s *State) MRL(y core.VertexID) (core.VertexID, bool) {
	x, ok := s.mRL[y]
	return x, ok
}

// MLRKeys returns a fresh copy of M_LR's keys (the L-side bridges).
func (s *State) MLRKeys() []core.VertexID {
	out := make([]core.VertexID, 0, len(s.mLR))
	for x := range s.mLR {
		out = append(out, x)
	}
	return out
}

// MRLKeys returns a fresh copy of M_RL's keys (the R-side witnesses).
func (s *State) MRLKeys() []core.VertexID {
	out := make([]core.VertexID, 0, len(s.mRL))
	for y := range s.mRL {
		out = append(out, y)
	}
	return out
}

// MLRLen returns |M_LR(v)|.
func (s *State) MLRLen() int { return len(s.mLR) }

// MoveNeighbourLToR moves u from N_L to N_R. Precondition: u ∈ N_L.
func (s *State) MoveNeighbourLToR(u core.VertexID) error {
	if _, ok := s.nL[u]; !ok {
		return ErrNotAnLNeighbour
	}
	delete(s.nL, u)
	s.nR[u] = struct{}{}

	return nil
}

// CanAddToM reports whether x may become a new M_LR key: not already a key,
// not a direct L-neighbour, and not this vertex itself (spec §4.2
// can_add_to_M — conjunction form; see DESIGN.md for why not disjunction).
func (s *State) CanAddToM(x core.VertexID) bool {
	if _, ok := s.mLR[x]; ok {
		return false
	}
	if _, ok := s.nL[x]; ok {
		return false
	}
	return x != s.id
}

// AddMatching inserts (x, y) into M_LR/M_RL. Precondition: x ∉ M_LR.keys,
// y ∉ M_RL.keys, x ∉ N_L, x ≠ id.
func (s *State) AddMatching(x, y core.VertexID) error {
	if _, ok := s.mLR[x]; ok {
		return ErrAlreadyMatchedL
	}
	if _, ok := s.mRL[y]; ok {
		return ErrAlreadyMatchedR
	}
	if _, ok := s.nL[x]; ok {
		return ErrLNeighbourAsKey
	}
	if x == s.id {
		return ErrSelfAsKey
	}

	s.mLR[x] = y
	s.mRL[y] = x

	return nil
}

// RemoveMatching atomically removes (x, M_LR[x]) from both maps, returning
// the removed witness. Returns (0, false) if x is not currently a key.
func (s *State) RemoveMatching(x core.VertexID) (core.VertexID, bool) {
	y, ok := s.mLR[x]
	if !ok {
		return 0, false
	}
	delete(s.mLR, x)
	delete(s.mRL, y)

	return y, true
}

// ApplyDelta applies an augpath.Delta: every remove pair first, then every
// add pair, preserving INV-2 (M_LR/M_RL remain exact inverses) throughout.
func (s *State) ApplyDelta(delta augpath.Delta) error {
	for x := range delta.Remove {
		if _, ok := s.RemoveMatching(x); !ok {
			return ErrMatchingNotFound
		}
	}
	for x, y := range delta.Add {
		if err := s.AddMatching(x, y); err != nil {
			return err
		}
	}

	return nil
}

// LocalBudgetAtMostP reports whether |N_L| + |M_LR| ≤ p — the candidate
// predicate (spec §4.2 local_budget_at_most_p).
func (s *State) LocalBudgetAtMostP(p int) bool {
	return len(s.nL)+len(s.mLR) <= p
}

// DeleteM empties both matching maps and marks this state deleted. Called
// exactly once, when v itself enters R.
func (s *State) DeleteM() {
	s.mLR = make(map[core.VertexID]core.VertexID)
	s.mRL = make(map[core.VertexID]core.VertexID)
	s.deletedM = true
}
