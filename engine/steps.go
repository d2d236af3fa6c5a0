package engine

import (
	"github.com/katalvlaran/p2adm/augpath"
	"github.com/katalvlaran/p2adm/core"
)

// moveOneCandidateToR pops one candidate, moves it from L to R, repairs the
// 1-hop and 2-hop neighbourhoods this disturbs, drains checks, and finally
// retires the moved vertex's own matching. Returns (0, false) if candidates
// is empty (spec §4.3 step 1-6).
func (e *Engine) moveOneCandidateToR(p int) (core.VertexID, bool) {
	v, ok := e.popCandidate()
	if !ok {
		return 0, false
	}

	delete(e.l, v)
	e.r[v] = struct{}{}

	e.propagateOneHop(v)
	e.propagateTwoHop(v)
	e.processChecks(p)

	e.states[v].DeleteM()
	e.order = append(e.order, v)

	if e.strict {
		e.assertInvariants(p)
	}

	return v, true
}

func (e *Engine) popCandidate() (core.VertexID, bool) {
	for v := range e.candidates {
		delete(e.candidates, v)
		return v, true
	}
	return 0, false
}

// propagateOneHop handles spec §4.3 step 3: every L-neighbour u of v learns
// v has moved to R, and may repair its matching using v as a fresh witness.
func (e *Engine) propagateOneHop(v core.VertexID) {
	vState := e.states[v]

	for _, u := range e.g.Neighbours(v) {
		if _, stillL := e.l[u]; !stillL {
			continue
		}
		uState := e.states[u]

		if err := uState.MoveNeighbourLToR(v); err != nil {
			e.fatal("INV-1", u, err)
		}

		if !uState.Deleted() {
			for _, w := range vState.NLVertices() {
				if uState.CanAddToM(w) {
					if err := uState.AddMatching(w, v); err != nil {
						e.fatal("INV-3", u, err)
					}
					break
				}
			}
		}

		e.addCheckIfNotCandidate(u)
	}
}

// propagateTwoHop handles spec §4.3 step 4: every vertex that used v as an
// M_LR bridge loses that entry (v has left L, so it is no longer a legal
// key), and is given a chance to repair via v's former witness. Such a
// vertex is adjacent to that witness, which is one of v's R-neighbours, so
// the N_L sets of v's R-neighbours cover every holder.
func (e *Engine) propagateTwoHop(v core.VertexID) {
	vState := e.states[v]

	affected := make(map[core.VertexID]struct{})
	for _, y := range vState.NRVertices() {
		for _, u := range e.states[y].NLVertices() {
			affected[u] = struct{}{}
		}
	}

	for u := range affected {
		uState := e.states[u]

		if _, ok := uState.MLR(v); !ok {
			continue
		}
		y, removed := uState.RemoveMatching(v)
		if !removed {
			continue
		}

		// y is in R, so its N_L is no longer kept current; only z still in L
		// may become a key.
		yState := e.states[y]
		for _, z := range yState.NLVertices() {
			if _, inL := e.l[z]; inL && uState.CanAddToM(z) {
				if err := uState.AddMatching(z, y); err != nil {
					e.fatal("INV-3", u, err)
				}
				break
			}
		}

		e.addCheckIfNotCandidate(u)
	}
}

// processChecks drains checks once (spec §4.3.1): a snapshot-then-clear, so
// entries added while draining wait for the next outer step. A found delta
// is applied only when |Add| + |N_L(u)| = p+1; otherwise u becomes a
// candidate.
func (e *Engine) processChecks(p int) {
	snapshot := e.checks
	e.checks = make(map[core.VertexID]struct{})

	for u := range snapshot {
		uState := e.states[u]
		if !uState.LocalBudgetAtMostP(p) {
			continue
		}

		view := e.buildAugmentingPathView(u)
		delta, found := view.FindAugmentingPath()
		if !found || len(delta.Add)+uState.NLLen() != p+1 {
			e.candidates[u] = struct{}{}
			continue
		}

		if err := uState.ApplyDelta(delta); err != nil {
			e.fatal("P5", u, err)
		}
	}
}

// buildAugmentingPathView constructs the local bipartite view for u (spec
// §4.3.2). S follows the literal predicate from spec.md line 127: a matched
// witness y qualifies if its *current L-partner's* own neighbourhood holds
// an available replacement — not y's own neighbourhood (see DESIGN.md for
// why this reading was chosen over admGraph.rs's construction). The
// replacement must also be adjacent to y, so the pair it forms is a valid
// M_LR entry.
func (e *Engine) buildAugmentingPathView(u core.VertexID) *augpath.View {
	uState := e.states[u]
	view := augpath.NewView()

	for _, y := range uState.MRLKeys() {
		w0, _ := uState.MRL(y)
		view.Edges[y] = []core.VertexID{w0}

		w0State := e.states[w0]
		for _, w := range w0State.NLVertices() {
			if uState.CanAddToM(w) && e.g.Adjacent(w, y) {
				view.S[y] = struct{}{}
				view.Out[y] = w
				break
			}
		}
	}

	for _, w := range uState.MLRKeys() {
		var succ []core.VertexID
		for _, r := range uState.NRVertices() {
			if e.g.Adjacent(w, r) {
				succ = append(succ, r)
			}
		}
		view.Edges[w] = succ
	}

	for _, r := range uState.NRVertices() {
		if _, matched := uState.MRL(r); !matched {
			view.T[r] = struct{}{}
		}
	}

	return view
}

func (e *Engine) addCheckIfNotCandidate(u core.VertexID) {
	if _, isCandidate := e.candidates[u]; !isCandidate {
		e.checks[u] = struct{}{}
	}
}

func (e *Engine) fatal(invariant string, v core.VertexID, err error) {
	if !e.strict {
		return
	}
	panic(&InvariantViolation{Invariant: invariant, Vertex: int64(v), Err: err})
}
