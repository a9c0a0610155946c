package design_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/draft/design"
	"github.com/syssam/draft/graph"
	"github.com/syssam/draft/mermaid"
)

func TestBuildLLD(t *testing.T) {
	t.Parallel()

	stories := []string{"As a shopper, I want to search for products"}
	features := []string{"Product Catalog & Search"}

	g := design.BuildLLD("shop", stories, features)
	require.NoError(t, g.Validate())

	feats := g.NodesIn(design.LayerFeatures)
	require.Len(t, feats, 1)
	assert.Equal(t, "F1", feats[0].ID)
	assert.Equal(t, "Product Catalog & Search", feats[0].Label)

	sts := g.NodesIn(design.LayerStories)
	require.Len(t, sts, 1)
	assert.Equal(t, "S1", sts[0].ID)
	assert.True(t, strings.HasPrefix(sts[0].Label, "As a shopper, I want to search for"))

	require.Len(t, g.Edges, 1)
	assert.Equal(t, graph.Edge{From: "F1", To: "S1"}, g.Edges[0])

	out := mermaid.EmitFlowchart(g)
	assert.Contains(t, out, "subgraph L0[Features]")
	assert.Contains(t, out, "subgraph L1[Stories]")
	assert.Contains(t, out, "F1 --> S1")
}

// Rebuilding from the same input must produce an identical graph, so
// regenerated diagrams never flicker or reorder.
func TestBuildLLDDeterministic(t *testing.T) {
	t.Parallel()

	stories := []string{"first story about checkout", "second story about tracking"}
	features := []string{"Checkout", "Order Tracking"}

	a := design.BuildLLD("shop", stories, features)
	b := design.BuildLLD("shop", stories, features)
	assert.Equal(t, a, b)
	assert.Equal(t, mermaid.EmitFlowchart(a), mermaid.EmitFlowchart(b))
}

func TestBuildLLDEmpty(t *testing.T) {
	t.Parallel()

	g := design.BuildLLD("", nil, nil)
	require.NoError(t, g.Validate())
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "ROOT", g.Nodes[0].ID)
	assert.Equal(t, "System Overview", g.Nodes[0].Label)
	assert.Contains(t, mermaid.EmitFlowchart(g), "subgraph L0[System]")

	named := design.BuildLLD("My Project", nil, nil)
	assert.Equal(t, "My Project", named.Nodes[0].Label)
}

// The linkage rule: a feature whose whole title appears in the story wins
// outright; otherwise shared significant words decide, earlier features
// breaking ties; a story matching nothing links to the first feature.
func TestStoryFeatureLinkage(t *testing.T) {
	t.Parallel()

	// Whole-title containment beats word overlap.
	g := design.BuildLLD("", []string{"Improve cart checkout flow"}, []string{"Search", "Cart"})
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "F2", g.Edges[0].From)

	// Word overlap with prefix matching: "search"/"products" hit
	// "Product Catalog & Search".
	g = design.BuildLLD("",
		[]string{"As a shopper, I want to search for products"},
		[]string{"User Accounts", "Product Catalog & Search"})
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "F2", g.Edges[0].From)

	// No match at all falls back to the first feature.
	g = design.BuildLLD("", []string{"completely unrelated sentence"}, []string{"Alpha", "Beta"})
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "F1", g.Edges[0].From)

	// No features: stories stand alone.
	g = design.BuildLLD("", []string{"orphan story"}, nil)
	assert.Empty(t, g.Edges)
	assert.Len(t, g.NodesIn(design.LayerStories), 1)
}

func TestBuildLLDSanitizesLabels(t *testing.T) {
	t.Parallel()

	g := design.BuildLLD("", []string{`A story with [brackets] and "quotes"`}, []string{"Fea<ture>"})
	for _, n := range g.Nodes {
		for _, c := range `[](){}<>"` {
			assert.NotContains(t, n.Label, string(c))
		}
	}
	require.NoError(t, g.Validate())
}

func TestBuildHLD(t *testing.T) {
	t.Parallel()

	g := design.BuildHLD("shop", []string{"Checkout", "Catalog"})
	require.NoError(t, g.Validate())
	assert.Equal(t, "LR", g.Direction)
	assert.Equal(t, []string{"Client", "Data", "Services"}, g.Layers())
	require.Len(t, g.NodesIn("Services"), 2)
	// client -> service -> store, per feature.
	assert.Len(t, g.Edges, 4)

	empty := design.BuildHLD("", nil)
	require.NoError(t, empty.Validate())
	require.Len(t, empty.Edges, 1)
	assert.Equal(t, graph.Edge{From: "C1", To: "D1"}, empty.Edges[0])
}
