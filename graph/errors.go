package graph

import (
	"errors"
	"strings"
)

// ErrInvalidGraph indicates a graph structure error.
var ErrInvalidGraph = errors.New("draft: invalid graph")

// ValidationError describes why a graph failed validation.
type ValidationError struct {
	Kind   string // "node" or "edge"
	Name   string // offending identifier or label
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("draft: invalid graph")
	if e.Kind != "" {
		b.WriteString(" ")
		b.WriteString(e.Kind)
	}
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(e.Name)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether the target error matches ErrInvalidGraph.
func (e *ValidationError) Is(err error) bool {
	return err == ErrInvalidGraph
}
