// Package inspect introspects a live SQL database into the ER model, so an
// existing schema can be visualized or regenerated as a diagram.
//
// Cardinalities are inferred from constraints: a junction table (all
// foreign keys inside the primary key, few columns) collapses into a
// many-to-many relationship between the tables it joins; a foreign key on a
// uniquely-constrained column is one-to-one; any other foreign key is
// one-to-many.
package inspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/syssam/draft/schema"
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

// Junction-table detection bounds.
const (
	maxJunctionColumns = 6
	minJunctionFKs     = 2
)

// Column is one introspected table column.
type Column struct {
	Name     string
	DataType string
	Nullable bool
}

// ForeignKey is one introspected foreign-key constraint column.
type ForeignKey struct {
	FromColumn string
	ToTable    string
	ToColumn   string
}

// Table is one introspected table with its constraints.
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKeys []string
	ForeignKeys []ForeignKey
	uniqueCols  map[string]bool
}

// Inspector reads schema metadata through a database/sql connection.
type Inspector struct {
	db *sql.DB
}

// New returns an inspector over an open connection.
func New(db *sql.DB) *Inspector {
	return &Inspector{db: db}
}

// Model introspects the connected database into an ER model: one entity
// per table in listing order, with relationships inferred from foreign
// keys. Junction tables are kept as entities but their foreign keys are
// reported as a single many-to-many relationship.
func (i *Inspector) Model(ctx context.Context) (*schema.Model, error) {
	tables, err := i.tables(ctx)
	if err != nil {
		return nil, err
	}

	m := &schema.Model{}
	for _, t := range tables {
		e := m.AddEntity(entityName(t.Name))
		for _, col := range t.Columns {
			e.Fields = append(e.Fields, schema.Field{
				Type:       field.Simplify(col.DataType),
				Name:       col.Name,
				Constraint: constraintFor(t, col.Name),
			})
		}
	}

	for _, r := range buildRelationships(tables) {
		m.AddRel(r)
	}
	return m, nil
}

// entityName follows the diagram convention of uppercased entity names.
func entityName(table string) string {
	return strings.ToUpper(table)
}

func constraintFor(t Table, col string) string {
	var parts []string
	for _, pk := range t.PrimaryKeys {
		if pk == col {
			parts = append(parts, "PK")
			break
		}
	}
	for _, fk := range t.ForeignKeys {
		if fk.FromColumn == col {
			parts = append(parts, "FK")
			break
		}
	}
	return strings.Join(parts, " ")
}

// buildRelationships infers the relationship list from foreign keys,
// deduplicated.
func buildRelationships(tables []Table) []schema.Relationship {
	junctions := detectJunctions(tables)

	var rels []schema.Relationship
	seen := make(map[string]bool)
	add := func(r schema.Relationship) {
		key := fmt.Sprintf("%s:%s:%s:%s", r.Left, r.CardLeft, r.CardRight, r.Right)
		if seen[key] {
			return
		}
		seen[key] = true
		rels = append(rels, r)
	}

	for _, t := range tables {
		if junctions[t.Name] {
			// Each pair of referenced tables joins many-to-many.
			for i := 0; i < len(t.ForeignKeys); i++ {
				for j := i + 1; j < len(t.ForeignKeys); j++ {
					add(schema.Relationship{
						Left:      entityName(t.ForeignKeys[i].ToTable),
						Right:     entityName(t.ForeignKeys[j].ToTable),
						CardLeft:  card.ZeroOrMany,
						CardRight: card.ZeroOrMany,
					})
				}
			}
			continue
		}
		for _, fk := range t.ForeignKeys {
			right := card.ZeroOrMany
			if t.uniqueCols[fk.FromColumn] {
				right = card.One
			}
			add(schema.Relationship{
				Left:      entityName(fk.ToTable),
				Right:     entityName(t.Name),
				CardLeft:  card.One,
				CardRight: right,
			})
		}
	}
	return rels
}

// detectJunctions flags tables that exist only to join two others: at
// least two foreign keys, all of them part of the primary key, and only a
// handful of columns.
func detectJunctions(tables []Table) map[string]bool {
	junctions := make(map[string]bool)
	for _, t := range tables {
		if len(t.ForeignKeys) < minJunctionFKs ||
			len(t.PrimaryKeys) < minJunctionFKs ||
			len(t.Columns) > maxJunctionColumns {
			continue
		}
		allInPK := true
		for _, fk := range t.ForeignKeys {
			found := false
			for _, pk := range t.PrimaryKeys {
				if pk == fk.FromColumn {
					found = true
					break
				}
			}
			if !found {
				allInPK = false
				break
			}
		}
		if allInPK {
			junctions[t.Name] = true
		}
	}
	return junctions
}
