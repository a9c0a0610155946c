// Package draft holds the shared text-model for design diagrams: a tagged
// root over the three diagram kinds produced and consumed by the toolchain
// (high-level flowcharts, low-level design flowcharts, and database ER
// models), plus the caching contract used to memoize parsed diagrams.
//
// The concrete models live in the subpackages:
//
//   - [schema]: entities, fields and crow's-foot relationships (ER/DBD)
//   - [graph]: layered flowchart nodes and edges (HLD/LLD)
//   - [mermaid]: parsing and emitting the Mermaid notation
//   - [design]: building LLD/HLD graphs from free-text features and stories
//   - [style]: deterministic domain/palette/shape heuristics
//   - [gen]: Go model code generation from an ER model
//   - [inspect]: database introspection into an ER model
package draft

import (
	"github.com/syssam/draft/graph"
	"github.com/syssam/draft/schema"
)

// Mode discriminates the payload of a DiagramRoot.
type Mode uint8

// Diagram modes.
const (
	ModeHLD Mode = iota // high-level design flowchart
	ModeLLD             // low-level design flowchart
	ModeDBD             // database ER model
	endModes
)

var modeNames = [...]string{
	ModeHLD: "hld",
	ModeLLD: "lld",
	ModeDBD: "dbd",
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m < endModes {
		return modeNames[m]
	}
	return "invalid"
}

// Valid reports if the mode is a known diagram mode.
func (m Mode) Valid() bool { return m < endModes }

// DiagramRoot is a tagged union over the three diagram kinds. Exactly one
// payload field is populated, selected by Mode. Roots are transient value
// objects: they are rebuilt on every render/edit cycle and never mutated
// in place.
type DiagramRoot struct {
	Mode Mode          `msgpack:"mode"`
	HLD  *graph.Graph  `msgpack:"hld,omitempty"`
	LLD  *graph.Graph  `msgpack:"lld,omitempty"`
	DBD  *schema.Model `msgpack:"dbd,omitempty"`
}

// NewHLD returns a DiagramRoot carrying a high-level design graph.
func NewHLD(g *graph.Graph) *DiagramRoot { return &DiagramRoot{Mode: ModeHLD, HLD: g} }

// NewLLD returns a DiagramRoot carrying a low-level design graph.
func NewLLD(g *graph.Graph) *DiagramRoot { return &DiagramRoot{Mode: ModeLLD, LLD: g} }

// NewDBD returns a DiagramRoot carrying a database ER model.
func NewDBD(m *schema.Model) *DiagramRoot { return &DiagramRoot{Mode: ModeDBD, DBD: m} }

// Payload returns the populated payload for the root's mode, or nil if the
// mode is invalid or the matching payload was never set.
func (d *DiagramRoot) Payload() any {
	switch d.Mode {
	case ModeHLD:
		if d.HLD != nil {
			return d.HLD
		}
	case ModeLLD:
		if d.LLD != nil {
			return d.LLD
		}
	case ModeDBD:
		if d.DBD != nil {
			return d.DBD
		}
	}
	return nil
}
