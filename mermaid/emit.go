package mermaid

import (
	"fmt"
	"strings"

	"github.com/syssam/draft/graph"
	"github.com/syssam/draft/schema"
)

// EmitER serializes a schema model back into erDiagram text: relationship
// lines first, then one block per entity with its fields. Duplicate
// relationships collapse to one line. The output parses back into an equal
// model.
func EmitER(m *schema.Model) string {
	var sb strings.Builder
	sb.WriteString("erDiagram\n")

	if len(m.Rels) > 0 {
		seen := make(map[string]bool)
		for _, r := range m.Rels {
			key := fmt.Sprintf("%s:%s:%s:%s:%s", r.Left, r.CardLeft, r.CardRight, r.Right, r.Label)
			if seen[key] {
				continue
			}
			seen[key] = true
			// The right-side cardinality is stored canonically and
			// written back in its right-facing spelling.
			sb.WriteString(fmt.Sprintf("    %s %s--%s %s : %q\n",
				r.Left, r.CardLeft, r.CardRight.Mirror(), r.Right, r.Label))
		}
		sb.WriteString("\n")
	}

	for _, e := range m.Entities {
		sb.WriteString(fmt.Sprintf("    %s {\n", e.Name))
		for _, f := range e.Fields {
			sb.WriteString("        ")
			sb.WriteString(string(f.Type))
			sb.WriteString(" ")
			sb.WriteString(f.Name)
			if f.Constraint != "" {
				sb.WriteString(" ")
				sb.WriteString(f.Constraint)
			}
			if f.Comment != "" {
				sb.WriteString(" ")
				sb.WriteString(fmt.Sprintf("%q", f.Comment))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("    }\n\n")
	}

	return sb.String()
}

// shapeDelims returns the opening and closing delimiters for a node shape.
func shapeDelims(s graph.Shape) (string, string) {
	switch s {
	case graph.ShapeStadium:
		return "([", "])"
	case graph.ShapeDiamond:
		return "{", "}"
	case graph.ShapeCylinder:
		return "[(", ")]"
	case graph.ShapeParallelogram:
		return "[/", "/]"
	case graph.ShapeCircle:
		return "((", "))"
	default:
		return "[", "]"
	}
}

// EmitFlowchart serializes a design graph into flowchart text: the graph
// header, one subgraph block per non-empty layer, ungrouped nodes, edge
// statements, then class assignments and classDef directives.
//
// Every node line starts with the node's generated identifier; a bare shape
// literal directly inside a subgraph block is a parse error in the
// notation, so labels are never used as identifiers. Labels pass through
// Sanitize once more so hand-built graphs degrade instead of breaking the
// render.
func EmitFlowchart(g *graph.Graph) string {
	dir := g.Direction
	if dir == "" {
		dir = "TD"
	}
	var sb strings.Builder
	sb.WriteString("graph ")
	sb.WriteString(dir)
	sb.WriteString("\n")

	for i, layer := range g.Layers() {
		sb.WriteString(fmt.Sprintf("    subgraph L%d[%s]\n", i, Sanitize(layer)))
		for _, n := range g.NodesIn(layer) {
			sb.WriteString("        ")
			writeNode(&sb, n)
		}
		sb.WriteString("    end\n")
	}
	for _, n := range g.Nodes {
		if n.Group != "" {
			continue
		}
		sb.WriteString("    ")
		writeNode(&sb, n)
	}

	if len(g.Edges) > 0 {
		sb.WriteString("\n")
		for _, e := range g.Edges {
			if e.Label != "" {
				sb.WriteString(fmt.Sprintf("    %s -->|%s| %s\n", e.From, Sanitize(e.Label), e.To))
			} else {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", e.From, e.To))
			}
		}
	}

	writeClasses(&sb, g)
	return sb.String()
}

func writeNode(sb *strings.Builder, n graph.Node) {
	open, closing := shapeDelims(n.Shape)
	label := Sanitize(n.Label)
	if label == "" {
		label = n.ID
	}
	sb.WriteString(n.ID)
	sb.WriteString(open)
	sb.WriteString(label)
	sb.WriteString(closing)
	sb.WriteString("\n")
}

// writeClasses emits one class assignment per style class in
// first-appearance order, then the classDef directives.
func writeClasses(sb *strings.Builder, g *graph.Graph) {
	var order []string
	members := make(map[string][]string)
	for _, n := range g.Nodes {
		if n.Class == "" {
			continue
		}
		if _, ok := members[n.Class]; !ok {
			order = append(order, n.Class)
		}
		members[n.Class] = append(members[n.Class], n.ID)
	}
	if len(order) == 0 && len(g.Classes) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, class := range order {
		sb.WriteString(fmt.Sprintf("    class %s %s\n", strings.Join(members[class], ","), class))
	}
	for _, def := range g.Classes {
		sb.WriteString(fmt.Sprintf("    classDef %s %s\n", def.Name, def.Style))
	}
}
