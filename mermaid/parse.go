package mermaid

import (
	"regexp"
	"strings"

	"github.com/syssam/draft/schema"
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

// Line grammar for the erDiagram dialect. Anything that matches none of
// these is skipped.
var (
	reEntityOpen = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*\{$`)
	reEntityLine = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*\{\s*(.+?)\s*\}$`)
	reBlockClose = regexp.MustCompile(`^\}$`)
	reField      = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_()\[\]]*)\s+([A-Za-z_][A-Za-z0-9_-]*)` +
		`(?:\s+((?:PK|FK|UK)(?:\s*,?\s*(?:PK|FK|UK))*))?` +
		`(?:\s+"([^"]*)")?$`)
	reRel = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*` +
		`(\|\||\|o|o\||\}\||\|\{|\}o|o\{)` +
		`(?:--|\.\.)` +
		`(\|\||\|o|o\||\}\||\|\{|\}o|o\{)` +
		`\s*([A-Za-z_][A-Za-z0-9_-]*)` +
		`(?:\s*:\s*"([^"]*)")?$`)
)

// ParseER scans erDiagram text into a schema model. The scan is total:
// for any input, including empty text, pure comments or garbage, it returns
// a (possibly empty) model and never fails. Entities keep file order,
// fields keep declaration order, and unknown field type tags are preserved
// verbatim. Relationship endpoints are not checked against declared
// entities.
func ParseER(src string) *schema.Model {
	m := &schema.Model{}
	var cur *schema.Entity
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.HasPrefix(line, "%%"), line == "erDiagram":
			continue
		}
		if cur != nil {
			if reBlockClose.MatchString(line) {
				cur = nil
				continue
			}
			if f, ok := parseField(line); ok {
				cur.Fields = append(cur.Fields, f)
			}
			// Unrecognized lines inside a block are skipped, and an
			// unclosed block swallows the rest of the section without
			// failing the scan.
			continue
		}
		if g := reEntityLine.FindStringSubmatch(line); g != nil {
			e := m.AddEntity(g[1])
			if f, ok := parseField(g[2]); ok {
				e.Fields = append(e.Fields, f)
			}
			continue
		}
		if g := reEntityOpen.FindStringSubmatch(line); g != nil {
			cur = m.AddEntity(g[1])
			continue
		}
		if g := reRel.FindStringSubmatch(line); g != nil {
			left, _ := card.Parse(g[2])
			right, _ := card.Parse(g[3])
			m.AddRel(schema.Relationship{
				Left:      g[1],
				Right:     g[4],
				CardLeft:  left,
				CardRight: right,
				Label:     g[5],
			})
		}
	}
	return m
}

func parseField(line string) (schema.Field, bool) {
	g := reField.FindStringSubmatch(line)
	if g == nil {
		return schema.Field{}, false
	}
	return schema.Field{
		Type:       field.Type(g[1]),
		Name:       g[2],
		Constraint: normalizeConstraint(g[3]),
		Comment:    g[4],
	}, true
}

// normalizeConstraint rewrites "PK , FK"-style spellings to "PK FK" so
// equivalent inputs compare equal after a round trip.
func normalizeConstraint(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Join(strings.Fields(s), " ")
}
