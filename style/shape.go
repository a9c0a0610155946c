package style

import (
	"strings"

	"github.com/syssam/draft/graph"
)

// NodeType is the detected architectural role of a node label.
type NodeType uint8

// Node types, in tie-break order: when two types score equally on a label,
// the one declared first wins.
const (
	NodeService NodeType = iota
	NodeController
	NodeDecision
	NodeDatabase
	NodeExternal
	NodeUI
	endNodeTypes
)

var nodeTypeNames = [...]string{
	NodeService:    "service",
	NodeController: "controller",
	NodeDecision:   "decision",
	NodeDatabase:   "database",
	NodeExternal:   "external",
	NodeUI:         "ui",
}

// String returns the node type name.
func (t NodeType) String() string {
	if t < endNodeTypes {
		return nodeTypeNames[t]
	}
	return "invalid"
}

// Valid reports if t is a known node type.
func (t NodeType) Valid() bool { return t < endNodeTypes }

// nodeRule pairs a node type with its scoring keywords. Each keyword found
// in the label adds one point; the highest-scoring type wins and
// declaration order breaks ties, so a label with no hits stays NodeService.
type nodeRule struct {
	typ      NodeType
	keywords []string
}

var nodeRules = []nodeRule{
	{NodeService, []string{"service", "engine", "processor", "manager", "worker", "handler"}},
	{NodeController, []string{"controller", "endpoint", "router", "gateway", "entry"}},
	{NodeDecision, []string{"check", "verify", "validate", "decision", "approve", "if "}},
	{NodeDatabase, []string{"database", "storage", "repository", "cache", "table", "db"}},
	{NodeExternal, []string{"external", "third-party", "webhook", "integration", "provider"}},
	{NodeUI, []string{"ui", "screen", "page", "view", "form", "dashboard"}},
}

// DetectNodeType classifies a node label into an architectural role.
func DetectNodeType(label string) NodeType {
	ll := strings.ToLower(label)
	best, bestScore := NodeService, 0
	for _, rule := range nodeRules {
		score := 0
		for _, kw := range rule.keywords {
			if strings.Contains(ll, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = rule.typ, score
		}
	}
	return best
}

// ShapeFor maps a node type to its flowchart shape.
func ShapeFor(t NodeType) graph.Shape {
	switch t {
	case NodeController:
		return graph.ShapeStadium
	case NodeDecision:
		return graph.ShapeDiamond
	case NodeDatabase:
		return graph.ShapeCylinder
	case NodeExternal:
		return graph.ShapeParallelogram
	case NodeUI:
		return graph.ShapeCircle
	default:
		return graph.ShapeRectangle
	}
}
