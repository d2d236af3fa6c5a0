package engine

import (
	"github.com/katalvlaran/p2adm/core"
	"github.com/katalvlaran/p2adm/vertexstate"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithStrictInvariants enables INV-1..INV-5 assertions after every mutating
// step; a violation panics with *InvariantViolation (spec §7). Off by
// default since the checks add O(|V|) work per step — enable it in tests
// and debug builds, not in a production decide loop over a large graph.
func WithStrictInvariants() Option {
	return func(e *Engine) { e.strict = true }
}

// Engine drives the incremental admissibility decision over a fixed graph.
// It owns every vertexstate.State; nothing else references one directly.
type Engine struct {
	g      *core.Graph
	states map[core.VertexID]*vertexstate.State

	l map[core.VertexID]struct{}
	r map[core.VertexID]struct{}

	candidates map[core.VertexID]struct{}
	checks     map[core.VertexID]struct{}

	order []core.VertexID

	strict bool
}

// New builds an Engine over g: one vertexstate.State per vertex, L = V, R =
// ∅, candidates and checks empty (spec §4.3 Construction).
func New(g *core.Graph, opts ...Option) *Engine {
	vertices := g.Vertices()

	e := &Engine{
		g:          g,
		states:     make(map[core.VertexID]*vertexstate.State, len(vertices)),
		l:          make(map[core.VertexID]struct{}, len(vertices)),
		r:          make(map[core.VertexID]struct{}),
		candidates: make(map[core.VertexID]struct{}),
		checks:     make(map[core.VertexID]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, v := range vertices {
		e.states[v] = vertexstate.New(v, g.Neighbours(v))
		e.l[v] = struct{}{}
	}

	return e
}

// InitialiseCandidates inserts every vertex whose raw L-degree already
// satisfies the candidate predicate (spec §4.3 initialise_candidates).
func (e *Engine) InitialiseCandidates(p int) {
	for v := range e.l {
		if e.states[v].NLLen() <= p {
			e.candidates[v] = struct{}{}
		}
	}
}

// Run drives move_one_candidate_to_R to completion: repeatedly pops a
// candidate until none remain. Returns the ordering and nil on success (L
// empty), or ErrNotAdmissible if candidates ran out with L still non-empty
// (spec §4.3.3).
func (e *Engine) Run(p int) ([]core.VertexID, error) {
	e.InitialiseCandidates(p)

	for {
		if _, ok := e.moveOneCandidateToR(p); !ok {
			break
		}
	}

	if len(e.l) != 0 {
		return nil, ErrNotAdmissible
	}

	return e.order, nil
}

// Step moves a single candidate to R (spec §4.3 step 1-6) and reports which
// vertex moved. The second return is false once candidates is empty, with
// no vertex moved. Run is InitialiseCandidates followed by this loop
// driven to completion; a caller of Step calls InitialiseCandidates first.
// Step
// exists so callers — notably tests that need to inspect state between
// moves — can drive the engine one move at a time.
func (e *Engine) Step(p int) (core.VertexID, bool) {
	return e.moveOneCandidateToR(p)
}

// MatchingSize returns |M_LR(v)|, the number of R-witnesses currently
// bridging v into R (spec §8 Property P4). ok is false if v is not tracked
// by this engine.
func (e *Engine) MatchingSize(v core.VertexID) (size int, ok bool) {
	st, tracked := e.states[v]
	if !tracked {
		return 0, false
	}
	return st.MLRLen(), true
}

// LocalBipartiteGraph returns v's full candidate bipartite graph: left is
// every vertex other than v itself, not currently a direct L-neighbour of
// v, that is adjacent to at least one vertex of v's current N_R; right is
// v's current N_R, and an edge (w, r) exists iff w and r are adjacent in
// the underlying graph. M_LR(v) is, by construction (spec §4.2
// can_add_to_M, §4.3.2 view), always a matching within this graph — so its
// size can never exceed this graph's true maximum matching. The graph is
// derived only from G and v's current N_L/N_R, never from M_LR itself,
// which makes it suitable as an independent cross-check input (see
// package augcheck). ok is false if v is not tracked by this engine.
func (e *Engine) LocalBipartiteGraph(v core.VertexID) (left []core.VertexID, adjacency map[core.VertexID][]core.VertexID, ok bool) {
	st, tracked := e.states[v]
	if !tracked {
		return nil, nil, false
	}

	adjacency = make(map[core.VertexID][]core.VertexID)
	seen := make(map[core.VertexID]struct{})
	for _, r := range st.NRVertices() {
		for _, w := range e.g.Neighbours(r) {
			if w == v || st.NL(w) {
				continue
			}
			adjacency[w] = append(adjacency[w], r)
			seen[w] = struct{}{}
		}
	}

	left = make([]core.VertexID, 0, len(seen))
	for w := range seen {
		left = append(left, w)
	}

	return left, adjacency, true
}
