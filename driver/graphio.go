package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/p2adm/core"
)

// LoadGraph reads a gzipped "u v" edge-list file into a core.Graph.
// Self-loops (u == v) are dropped rather than passed through — spec.md §8
// scenario 6 requires loading to strip them, since INV-1 fails immediately
// on a vertex adjacent to itself.
func LoadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrMalformedGraph, path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip %s: %v", ErrMalformedGraph, path, err)
	}
	defer zr.Close()

	g := core.NewGraph()
	scanner := bufio.NewScanner(zr)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		u, v, err := parseEdgeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedGraph, path, lineNo, err)
		}
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedGraph, path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMalformedGraph, path, err)
	}

	return g, nil
}

func parseEdgeLine(line string) (core.VertexID, core.VertexID, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	u, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("vertex %q: %w", fields[0], err)
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("vertex %q: %w", fields[1], err)
	}

	return core.VertexID(u), core.VertexID(v), nil
}

// SaveOrdering writes ordering to dir/network.txt.gz, one vertex ID per
// line, in order (spec.md §6 output format).
func SaveOrdering(dir, network string, ordering []core.VertexID) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("driver: creating %s: %w", dir, err)
	}

	outPath := fmt.Sprintf("%s/%s.txt.gz", dir, network)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("driver: creating %s: %w", outPath, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	defer zw.Close()

	return writeOrdering(zw, ordering)
}

// writeGraphEdges gzip-encodes g as a "u v" edge-list file, one edge per
// line, each unordered pair emitted once (spec.md §6 network file format).
func writeGraphEdges(f io.Writer, g *core.Graph) error {
	zw := gzip.NewWriter(f)
	defer zw.Close()

	bw := bufio.NewWriter(zw)
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbours(u) {
			if u >= v {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeOrdering(w io.Writer, ordering []core.VertexID) error {
	bw := bufio.NewWriter(w)
	for _, v := range ordering {
		if _, err := fmt.Fprintf(bw, "%d\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
