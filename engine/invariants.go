package engine

import "errors"

var (
	errINV1 = errors.New("N_L ∪ N_R does not equal G-neighbours")
	errINV2 = errors.New("M_LR and M_RL are not exact inverses")
	errINV3 = errors.New("M_LR entry violates the matching-key contract")
	errINV5 = errors.New("deleted vertex still reachable as L or still carries a matching")
	errP4   = errors.New("|M_LR(v)| exceeds p")
)

// assertInvariants re-checks INV-1..INV-5 (spec §3) and property P4 (spec
// §8) for every vertex. Only called when WithStrictInvariants is set; O(|V|)
// per call, so reserved for tests and debug runs, not a production loop over
// a large graph.
func (e *Engine) assertInvariants(p int) {
	for v, st := range e.states {
		for _, n := range e.g.Neighbours(v) {
			if st.NL(n) == st.NR(n) {
				e.fatal("INV-1", v, errINV1)
			}
		}

		for _, x := range st.MLRKeys() {
			y, _ := st.MLR(x)
			if backX, ok := st.MRL(y); !ok || backX != x {
				e.fatal("INV-2", v, errINV2)
			}
			if _, inL := e.l[x]; !inL {
				e.fatal("INV-3", v, errINV3)
			}
			if _, inR := e.r[y]; !inR {
				e.fatal("INV-3", v, errINV3)
			}
			if x == v || st.NL(x) || !e.g.Adjacent(x, y) {
				e.fatal("INV-3", v, errINV3)
			}
		}

		if st.MLRLen() > p {
			e.fatal("P4", v, errP4)
		}

		if st.Deleted() {
			if _, stillL := e.l[v]; stillL {
				e.fatal("INV-5", v, errINV5)
			}
			if st.MLRLen() != 0 {
				e.fatal("INV-5", v, errINV5)
			}
		}
	}
}
