package driver

// Args is the top-level CLI parsing structure (spec.md §6 CLI surface):
// positional network selector plus the starting p, with the optional
// memory-tracking and concurrency flags and the save/synth subcommands.
type Args struct {
	Network     string `arg:"positional,required" help:"network name (file stem, without .txt.gz)"`
	StartP      int    `arg:"positional" default:"1" help:"starting p value for the doubling-then-bisection search"`
	NetworkPath string `arg:"positional" default:"./networks" help:"directory containing gzipped network files"`

	TrackMemory bool `arg:"--track-memory" help:"sample peak resident memory while the search runs"`
	MaxP        int  `arg:"--max-p" default:"64" help:"give up and report NotAdmissible once p-search exceeds this bound"`
	Concurrency bool `arg:"--concurrency" help:"decide each connected component on its own goroutine"`

	Save  *SaveCmd  `arg:"subcommand:save" help:"write the last computed ordering to a directory"`
	Synth *SynthCmd `arg:"subcommand:synth" help:"emit one of the built-in topologies as a gzipped network file"`
}

// SaveCmd writes a previously computed ordering out to disk.
type SaveCmd struct {
	OutDir string `arg:"positional" default:"results" help:"output directory"`
}

// SynthCmd emits a canonical fixtures topology, gzip-encoded, so the CLI
// has something to decide without an external network corpus.
type SynthCmd struct {
	Topology string `arg:"positional" help:"star|path|complete|cycle|nine"`
	N        int    `arg:"positional" help:"topology size parameter (ignored by nine)"`
	OutFile  string `arg:"positional" help:"destination .txt.gz path"`
}

func (Args) Version() string {
	return "padm2"
}

func (Args) Description() string {
	return "decide p-2-admissibility for a network and report the ordering"
}
