package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; this Graph models
	// simple graphs only.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// VertexID is an opaque integer vertex identifier (spec: "opaque integer
// identifiers"). The zero value is a valid vertex ID.
type VertexID int64
