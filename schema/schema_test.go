package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/draft/schema"
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

func TestAddEntity(t *testing.T) {
	t.Parallel()

	m := &schema.Model{}
	u := m.AddEntity("USERS")
	u.Fields = append(u.Fields, schema.Field{Type: field.TypeUUID, Name: "id", Constraint: "PK"})

	// A second block with the same name merges instead of shadowing.
	again := m.AddEntity("USERS")
	require.Same(t, u, again)
	again.Fields = append(again.Fields, schema.Field{Type: field.TypeString, Name: "email"})

	require.Len(t, m.Entities, 1)
	assert.Len(t, m.Entities[0].Fields, 2)
	assert.Equal(t, "id", m.Entities[0].Fields[0].Name)

	assert.Nil(t, m.Entity("PROJECTS"))
	assert.NotNil(t, m.Entity("USERS"))
}

func TestDangling(t *testing.T) {
	t.Parallel()

	m := &schema.Model{}
	m.AddEntity("USERS")
	m.AddRel(schema.Relationship{Left: "USERS", Right: "PROJECTS", CardLeft: card.One, CardRight: card.ZeroOrMany})
	m.AddRel(schema.Relationship{Left: "PROJECTS", Right: "TASKS", CardLeft: card.One, CardRight: card.ZeroOrMany})

	assert.Equal(t, []string{"PROJECTS", "TASKS"}, m.Dangling())
	assert.False(t, m.Empty())
	assert.True(t, (&schema.Model{}).Empty())
}
