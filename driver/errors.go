package driver

import "errors"

// ErrMalformedGraph indicates the network file could not be parsed into a
// core.Graph (spec.md §7: "the driver's concern; never surfaces into the
// core").
var ErrMalformedGraph = errors.New("driver: malformed network file")

// Exit codes returned by Execute.
const (
	ExitOK            = 0
	ExitLoadFailure   = 1
	ExitNotAdmissible = 2
	ExitUsageError    = 3
)
