package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/syssam/draft/schema"
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

// genEntity generates the model file for one entity: the struct with its
// typed fields and, when the entity participates in relationships with
// declared entities, the edges struct holding them.
func (g *Generator) genEntity(e *schema.Entity) *jen.File {
	f := jen.NewFile(g.pkg)
	if g.header != "" {
		f.HeaderComment(g.header)
	}

	name := structName(e.Name)
	edges := g.entityEdges(e)

	f.Commentf("%s is the model for the %s entity.", name, e.Name)
	f.Type().Id(name).StructFunc(func(s *jen.Group) {
		for _, fd := range e.Fields {
			stmt := s.Id(fieldName(fd.Name)).Add(goType(fd.Type))
			tag := strings.ToLower(fd.Name)
			if strings.Contains(fd.Constraint, "PK") {
				stmt.Tag(map[string]string{"json": tag})
			} else {
				stmt.Tag(map[string]string{"json": tag + ",omitempty"})
			}
			if fd.Comment != "" {
				stmt.Comment(fd.Comment)
			}
		}
		if len(edges) > 0 {
			s.Id("Edges").Id(name + "Edges").Tag(map[string]string{"json": "edges"})
		}
	})

	if len(edges) > 0 {
		f.Line()
		f.Commentf("%sEdges holds the relations of the %s model.", name, name)
		f.Type().Id(name + "Edges").StructFunc(func(s *jen.Group) {
			for _, ed := range edges {
				stmt := s.Id(ed.name)
				if ed.many {
					stmt.Index().Op("*").Id(ed.target)
				} else {
					stmt.Op("*").Id(ed.target)
				}
				stmt.Tag(map[string]string{"json": strings.ToLower(ed.name) + ",omitempty"})
			}
		})
	}

	return f
}

// entityEdge is one generated relation field.
type entityEdge struct {
	name   string
	target string
	many   bool
}

// entityEdges collects the relations of an entity whose far endpoint is a
// declared entity. Dangling endpoints are ignored; the diagram tolerates
// them but there is no type to point at.
func (g *Generator) entityEdges(e *schema.Entity) []entityEdge {
	var edges []entityEdge
	seen := make(map[string]bool)
	add := func(target string, many bool) {
		if g.model.Entity(target) == nil {
			return
		}
		ts := structName(target)
		name := ts
		if many {
			name = inflect.Pluralize(ts)
		}
		if seen[name] {
			return
		}
		seen[name] = true
		edges = append(edges, entityEdge{name: name, target: ts, many: many})
	}
	for _, r := range g.model.Rels {
		switch {
		case r.Left == e.Name:
			add(r.Right, r.CardRight == card.OneOrMany || r.CardRight == card.ZeroOrMany)
		case r.Right == e.Name:
			add(r.Left, r.CardLeft == card.OneOrMany || r.CardLeft == card.ZeroOrMany)
		}
	}
	return edges
}

// goType maps a field type tag to its Go type. Unknown tags fall back to
// string, matching the parser's leniency: a diagram that renders should
// also generate.
func goType(t field.Type) *jen.Statement {
	switch t {
	case field.TypeString, field.TypeText, field.TypeVarchar:
		return jen.String()
	case field.TypeInt:
		return jen.Int()
	case "bigint":
		return jen.Int64()
	case "smallint":
		return jen.Int16()
	case field.TypeFloat, field.TypeNumber:
		return jen.Float64()
	case field.TypeBool:
		return jen.Bool()
	case field.TypeDatetime, field.TypeTimestamp, "timestamptz", "date", "time":
		return jen.Qual("time", "Time")
	case field.TypeUUID:
		return jen.Qual("github.com/google/uuid", "UUID")
	case field.TypeJSON:
		return jen.Qual("encoding/json", "RawMessage")
	case "blob":
		return jen.Index().Byte()
	default:
		return jen.String()
	}
}
