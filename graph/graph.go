// Package graph provides the in-memory model for flowchart diagrams: nodes
// grouped into layers, directed edges, and the style classes attached to
// them.
//
// A Graph is the intermediate representation between the design builders and
// the Mermaid emitter. Node identifiers are machine-generated and distinct
// from display labels; labels are free text, identifiers must stay bare
// tokens the notation can reference.
package graph

// Shape selects the node outline used when the graph is rendered.
type Shape uint8

// Node shapes, in the order the style heuristics rank them.
const (
	ShapeRectangle     Shape = iota // services, default
	ShapeStadium                    // controllers / entry points
	ShapeDiamond                    // decisions
	ShapeCylinder                   // databases
	ShapeParallelogram              // external systems
	ShapeCircle                     // UI touch points
	endShapes
)

var shapeNames = [...]string{
	ShapeRectangle:     "rectangle",
	ShapeStadium:       "stadium",
	ShapeDiamond:       "diamond",
	ShapeCylinder:      "cylinder",
	ShapeParallelogram: "parallelogram",
	ShapeCircle:        "circle",
}

// String returns the shape name.
func (s Shape) String() string {
	if s < endShapes {
		return shapeNames[s]
	}
	return "invalid"
}

// Valid reports if s is a known shape.
func (s Shape) Valid() bool { return s < endShapes }

// Node is one referenceable element of the flowchart. ID is a bare
// generated identifier; Label is the sanitized display text; Group assigns
// the node to a layer subgraph, empty for top-level nodes; Class names the
// style class the node is assigned to, empty for unstyled nodes.
type Node struct {
	ID    string `msgpack:"id"`
	Label string `msgpack:"label"`
	Group string `msgpack:"group,omitempty"`
	Shape Shape  `msgpack:"shape,omitempty"`
	Class string `msgpack:"class,omitempty"`
}

// Edge is a directed connection between two node identifiers.
type Edge struct {
	From  string `msgpack:"from"`
	To    string `msgpack:"to"`
	Label string `msgpack:"label,omitempty"`
}

// ClassDef pairs a style class name with its raw style properties, emitted
// verbatim as a classDef directive.
type ClassDef struct {
	Name  string `msgpack:"name"`
	Style string `msgpack:"style"`
}

// Graph is one flowchart diagram.
type Graph struct {
	// Direction is the layout direction directive, e.g. "TD" or "LR".
	Direction string     `msgpack:"direction"`
	Nodes     []Node     `msgpack:"nodes"`
	Edges     []Edge     `msgpack:"edges"`
	Classes   []ClassDef `msgpack:"classes,omitempty"`
}

// New returns an empty graph with the given layout direction. An empty
// direction defaults to top-down.
func New(direction string) *Graph {
	if direction == "" {
		direction = "TD"
	}
	return &Graph{Direction: direction}
}

// AddNode appends a node. Existing IDs are not rewritten; the first node
// with a given ID wins so repeated builds stay deterministic.
func (g *Graph) AddNode(n Node) {
	if g.Node(n.ID) != nil {
		return
	}
	g.Nodes = append(g.Nodes, n)
}

// AddEdge appends an edge.
func (g *Graph) AddEdge(e Edge) {
	g.Edges = append(g.Edges, e)
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Layers returns the non-empty group names in first-appearance order.
func (g *Graph) Layers() []string {
	var layers []string
	seen := make(map[string]bool)
	for _, n := range g.Nodes {
		if n.Group == "" || seen[n.Group] {
			continue
		}
		seen[n.Group] = true
		layers = append(layers, n.Group)
	}
	return layers
}

// NodesIn returns the nodes assigned to the given layer, in insertion
// order.
func (g *Graph) NodesIn(layer string) []Node {
	var nodes []Node
	for _, n := range g.Nodes {
		if n.Group == layer {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Validate checks hand-built graphs: node IDs must be unique and edge
// endpoints must reference existing nodes. Builder output always passes;
// the emitter never calls this, rendering stays best-effort.
func (g *Graph) Validate() error {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return &ValidationError{Kind: "node", Name: n.Label, Reason: "empty identifier"}
		}
		if ids[n.ID] {
			return &ValidationError{Kind: "node", Name: n.ID, Reason: "duplicate identifier"}
		}
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		if !ids[e.From] {
			return &ValidationError{Kind: "edge", Name: e.From, Reason: "unknown source node"}
		}
		if !ids[e.To] {
			return &ValidationError{Kind: "edge", Name: e.To, Reason: "unknown target node"}
		}
	}
	return nil
}
