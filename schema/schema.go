// Package schema provides the in-memory model for database ER diagrams:
// entities with ordered fields, and crow's-foot relationships between them.
//
// Models are value objects built per render pass. Producers (the parser, the
// inspector) always return a fresh model; nothing mutates a model in place
// after it is handed out.
package schema

import (
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

// Model is one database design diagram: the declared entities in source
// order and the relationships between them.
type Model struct {
	Entities []*Entity      `msgpack:"entities"`
	Rels     []Relationship `msgpack:"rels"`
}

// Entity is one declared entity block. Name is unique within a model;
// fields keep declaration order.
type Entity struct {
	Name   string  `msgpack:"name"`
	Fields []Field `msgpack:"fields"`
}

// Field is one attribute line of an entity. Constraint carries bare key
// annotations (PK, FK, UK) as written; Comment carries the optional quoted
// trailer.
type Field struct {
	Type       field.Type `msgpack:"type"`
	Name       string     `msgpack:"name"`
	Constraint string     `msgpack:"constraint,omitempty"`
	Comment    string     `msgpack:"comment,omitempty"`
}

// Relationship connects two entities by name with a cardinality on each
// side, both stored in canonical form. Endpoints are not required to
// reference declared entities; the notation allows dangling references and
// the parser preserves them.
type Relationship struct {
	Left      string    `msgpack:"left"`
	Right     string    `msgpack:"right"`
	CardLeft  card.Card `msgpack:"card_left"`
	CardRight card.Card `msgpack:"card_right"`
	Label     string    `msgpack:"label,omitempty"`
}

// Entity returns the entity with the given name, or nil.
func (m *Model) Entity(name string) *Entity {
	for _, e := range m.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// AddEntity appends a new entity, or returns the existing one when the name
// was already declared. Duplicate blocks merge rather than shadow, keeping
// the uniqueness invariant without rejecting input.
func (m *Model) AddEntity(name string) *Entity {
	if e := m.Entity(name); e != nil {
		return e
	}
	e := &Entity{Name: name}
	m.Entities = append(m.Entities, e)
	return e
}

// AddRel appends a relationship.
func (m *Model) AddRel(r Relationship) {
	m.Rels = append(m.Rels, r)
}

// Empty reports if the model declares nothing at all.
func (m *Model) Empty() bool {
	return len(m.Entities) == 0 && len(m.Rels) == 0
}

// Dangling returns the relationship endpoint names that do not reference a
// declared entity, in first-appearance order. Useful for diagnostics; never
// treated as an error.
func (m *Model) Dangling() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range m.Rels {
		for _, n := range []string{r.Left, r.Right} {
			if seen[n] || m.Entity(n) != nil {
				continue
			}
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}
