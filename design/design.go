// Package design builds layered flowchart graphs out of free project text:
// feature titles and user-story sentences become grouped, styled nodes
// without any semantic analysis beyond naming heuristics.
//
// Builders are deterministic: the same ordered inputs always produce a
// deeply equal graph, so a diagram regenerated on every edit tick never
// reorders or re-colors spuriously.
package design

import (
	"fmt"
	"strings"

	"github.com/syssam/draft/graph"
	"github.com/syssam/draft/mermaid"
	"github.com/syssam/draft/style"
)

// Layer names used by the LLD builder.
const (
	LayerFeatures = "Features"
	LayerStories  = "Stories"
	LayerSystem   = "System"
)

// Style class names attached to built nodes.
const (
	classFeature = "featureNode"
	classStory   = "storyNode"
	classSystem  = "systemNode"
)

// BuildLLD turns feature titles and story sentences into a low-level
// design graph: one node per feature under the Features layer, one node per
// story under the Stories layer, and an edge from each story's feature to
// the story. Labels are sanitized for the notation; node identifiers are
// generated (F1, S1, ...) and never derived from labels.
//
// Empty input still yields a renderable graph with a single placeholder
// node.
func BuildLLD(project string, stories, features []string) *graph.Graph {
	g := graph.New("TD")
	pal := style.PaletteFor(style.DetectDomain(project + " " + strings.Join(features, " ")))

	if len(features) == 0 && len(stories) == 0 {
		g.AddNode(graph.Node{
			ID:    "ROOT",
			Label: placeholderLabel(project),
			Group: LayerSystem,
			Shape: graph.ShapeStadium,
			Class: classSystem,
		})
		g.Classes = classDefs(pal)
		return g
	}

	for i, title := range features {
		g.AddNode(graph.Node{
			ID:    fmt.Sprintf("F%d", i+1),
			Label: mermaid.Sanitize(title),
			Group: LayerFeatures,
			Shape: style.ShapeFor(style.DetectNodeType(title)),
			Class: classFeature,
		})
	}
	for i, story := range stories {
		id := fmt.Sprintf("S%d", i+1)
		g.AddNode(graph.Node{
			ID:    id,
			Label: mermaid.Sanitize(story),
			Group: LayerStories,
			Class: classStory,
		})
		if f := linkFeature(story, features); f >= 0 {
			g.AddEdge(graph.Edge{From: fmt.Sprintf("F%d", f+1), To: id})
		}
	}

	g.Classes = classDefs(pal)
	return g
}

// BuildHLD sketches a high-level view: a client node, one service node per
// feature, and a data store, wired client -> service -> store.
func BuildHLD(project string, features []string) *graph.Graph {
	g := graph.New("LR")
	pal := style.PaletteFor(style.DetectDomain(project + " " + strings.Join(features, " ")))

	g.AddNode(graph.Node{
		ID:    "C1",
		Label: "Web App",
		Group: "Client",
		Shape: graph.ShapeCircle,
		Class: classSystem,
	})
	g.AddNode(graph.Node{
		ID:    "D1",
		Label: "Database",
		Group: "Data",
		Shape: graph.ShapeCylinder,
		Class: classSystem,
	})

	if len(features) == 0 {
		g.AddEdge(graph.Edge{From: "C1", To: "D1"})
		g.Classes = classDefs(pal)
		return g
	}
	for i, title := range features {
		id := fmt.Sprintf("A%d", i+1)
		g.AddNode(graph.Node{
			ID:    id,
			Label: mermaid.Sanitize(title),
			Group: "Services",
			Shape: style.ShapeFor(style.DetectNodeType(title)),
			Class: classFeature,
		})
		g.AddEdge(graph.Edge{From: "C1", To: id})
		g.AddEdge(graph.Edge{From: id, To: "D1"})
	}

	g.Classes = classDefs(pal)
	return g
}

func placeholderLabel(project string) string {
	if p := mermaid.Sanitize(project); p != "" {
		return p
	}
	return "System Overview"
}

func classDefs(pal style.Palette) []graph.ClassDef {
	return []graph.ClassDef{
		{Name: classFeature, Style: fmt.Sprintf("fill:%s,stroke:%s,color:#fff", pal.Primary(), pal.Border())},
		{Name: classStory, Style: fmt.Sprintf("fill:%s,stroke:%s", pal.Surface(), pal.Border())},
		{Name: classSystem, Style: fmt.Sprintf("fill:%s,stroke:%s,color:#fff", pal.Accent(), pal.Border())},
	}
}

// linkFeature picks the feature a story was most likely authored against.
// The rule: a feature whose whole title appears in the story
// (case-insensitive) wins outright; otherwise the feature sharing the most
// significant words with the story wins, earlier features breaking ties.
// A story matching nothing links to the first feature so the graph stays
// connected. Returns -1 only when there are no features.
func linkFeature(story string, features []string) int {
	if len(features) == 0 {
		return -1
	}
	ls := strings.ToLower(story)
	for i, f := range features {
		if f != "" && strings.Contains(ls, strings.ToLower(f)) {
			return i
		}
	}
	best, bestScore := 0, 0
	storyWords := keywords(story)
	for i, f := range features {
		score := 0
		for _, fw := range keywords(f) {
			for _, sw := range storyWords {
				if sw == fw || strings.HasPrefix(sw, fw) || strings.HasPrefix(fw, sw) {
					score++
					break
				}
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// keywords lowercases, strips non-alphanumerics and drops short words.
func keywords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, w)
		if len(w) >= 3 {
			out = append(out, w)
		}
	}
	return out
}
