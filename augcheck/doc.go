// Package augcheck is a test-only independent oracle: a small Dinic-style
// maximum bipartite matching solver used by engine's test suite
// (engine_test.crossCheckAgainstOracle, in engine/engine_test.go) to
// cross-check property P4 (spec §8) against a second, structurally
// unrelated implementation — one that shares no code with vertexstate or
// engine's own bounded augmenting-path search.
//
// engine.LocalBipartiteGraph exports, for a tracked vertex v, the full
// candidate bipartite graph M_LR(v) is a matching within; the test suite
// feeds that graph to MaxBipartiteMatching after every engine.Step and
// asserts the engine's own |M_LR(v)| never exceeds the independently
// computed maximum. Production code never imports this package.
package augcheck
