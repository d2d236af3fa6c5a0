package driver

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/katalvlaran/p2adm/components"
	"github.com/katalvlaran/p2adm/core"
	"github.com/katalvlaran/p2adm/engine"
	"github.com/katalvlaran/p2adm/fixtures"
	"github.com/katalvlaran/p2adm/psearch"
)

const memSampleInterval = 50 * time.Millisecond

// Execute parses os.Args, dispatches to the requested subcommand or the
// main decide-and-report flow, and returns the process exit code.
func Execute() int {
	var args Args
	arg.MustParse(&args)

	if args.Synth != nil {
		return runSynth(args.Synth)
	}

	return runDecide(&args)
}

func runDecide(args *Args) int {
	networkFile := fmt.Sprintf("%s/%s.txt.gz", args.NetworkPath, args.Network)

	g, err := LoadGraph(networkFile)
	if err != nil {
		log.Printf("driver: %v", err)
		return ExitLoadFailure
	}

	var sampler *memSampler
	if args.TrackMemory {
		sampler = startMemSampler(memSampleInterval)
	}

	ordering, foundP, err := decide(g, args.StartP, args.MaxP, args.Concurrency)

	if sampler != nil {
		peak := sampler.Stop()
		log.Printf("driver: peak Sys = %d bytes", peak)
	}

	if err != nil {
		log.Printf("driver: %v", err)
		return ExitNotAdmissible
	}

	log.Printf("driver: p = %d, |ordering| = %d", foundP, len(ordering))

	if args.Save != nil {
		if err := SaveOrdering(args.Save.OutDir, args.Network, ordering); err != nil {
			log.Printf("driver: %v", err)
			return ExitUsageError
		}
	}

	return ExitOK
}

// decide runs the p-search, splitting across connected components when
// concurrency is requested (spec.md §9's note that component-independent
// engines never observe each other's state, and SPEC_FULL.md §5's
// concretization of it).
func decide(g *core.Graph, startP, maxP int, concurrent bool) ([]core.VertexID, int, error) {
	if !concurrent {
		return decideWhole(g, startP, maxP)
	}

	parts := components.ConnectedComponents(g)
	orderings := make([][]core.VertexID, len(parts))
	foundPs := make([]int, len(parts))
	errs := make([]error, len(parts))

	var wg sync.WaitGroup
	for i, part := range parts {
		wg.Add(1)
		go func(i int, part []core.VertexID) {
			defer wg.Done()
			sub := subgraph(g, part)
			ordering, p, err := decideWhole(sub, startP, maxP)
			orderings[i], foundPs[i], errs[i] = ordering, p, err
		}(i, part)
	}
	wg.Wait()

	var combined []core.VertexID
	maxFoundP := 0
	for i := range parts {
		if errs[i] != nil {
			return nil, 0, errs[i]
		}
		combined = append(combined, orderings[i]...)
		if foundPs[i] > maxFoundP {
			maxFoundP = foundPs[i]
		}
	}

	return combined, maxFoundP, nil
}

// decideWhole runs the p-search over a single connected piece. It first
// probes maxP directly: if even that fails, property P3 (monotonicity)
// means every p <= maxP fails too, so no admissible p lies within the bound
// and Search's doubling phase would only climb past maxP.
func decideWhole(g *core.Graph, startP, maxP int) ([]core.VertexID, int, error) {
	if _, err := engine.New(g).Run(maxP); err != nil {
		return nil, 0, err
	}

	result, err := psearch.Search(func(p int) ([]core.VertexID, error) {
		return engine.New(g).Run(p)
	}, startP)
	if err != nil {
		return nil, 0, err
	}

	return result.Ordering, result.P, nil
}

func subgraph(g *core.Graph, vertices []core.VertexID) *core.Graph {
	sub := core.NewGraph()
	member := make(map[core.VertexID]bool, len(vertices))
	for _, v := range vertices {
		member[v] = true
		sub.AddVertex(v)
	}
	for _, u := range vertices {
		for _, v := range g.Neighbours(u) {
			if member[v] && u < v {
				_ = sub.AddEdge(u, v)
			}
		}
	}
	return sub
}

func runSynth(cmd *SynthCmd) int {
	var g *core.Graph
	switch cmd.Topology {
	case "star":
		g = fixtures.Star(cmd.N)
	case "path":
		g = fixtures.Path(cmd.N)
	case "complete":
		g = fixtures.Complete(cmd.N)
	case "cycle":
		g = fixtures.Cycle(cmd.N)
	case "nine":
		g = fixtures.NineVertexMixed()
	default:
		log.Printf("driver: unknown topology %q", cmd.Topology)
		return ExitUsageError
	}

	f, err := os.Create(cmd.OutFile)
	if err != nil {
		log.Printf("driver: %v", err)
		return ExitUsageError
	}
	defer f.Close()

	if err := writeGraphEdges(f, g); err != nil {
		log.Printf("driver: %v", err)
		return ExitUsageError
	}

	return ExitOK
}
