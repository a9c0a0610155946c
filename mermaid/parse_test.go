package mermaid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/draft/mermaid"
	"github.com/syssam/draft/schema"
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

func TestParseER(t *testing.T) {
	t.Parallel()

	src := `erDiagram
    USERS ||--o{ PROJECTS : "owns"

    USERS {
        uuid id PK
        string email "unique login"
        datetime created_at
    }

    PROJECTS {
        uuid id PK
        uuid user_id FK
        varchar name
    }
`
	m := mermaid.ParseER(src)
	require.Len(t, m.Entities, 2)
	assert.Equal(t, "USERS", m.Entities[0].Name)
	assert.Equal(t, "PROJECTS", m.Entities[1].Name)

	users := m.Entities[0]
	require.Len(t, users.Fields, 3)
	assert.Equal(t, schema.Field{Type: field.TypeUUID, Name: "id", Constraint: "PK"}, users.Fields[0])
	assert.Equal(t, schema.Field{Type: field.TypeString, Name: "email", Comment: "unique login"}, users.Fields[1])
	assert.Equal(t, schema.Field{Type: field.TypeDatetime, Name: "created_at"}, users.Fields[2])

	require.Len(t, m.Rels, 1)
	rel := m.Rels[0]
	assert.Equal(t, "USERS", rel.Left)
	assert.Equal(t, "PROJECTS", rel.Right)
	assert.Equal(t, card.One, rel.CardLeft)
	// The right-side token "o{" is stored canonically as "}o".
	assert.Equal(t, card.ZeroOrMany, rel.CardRight)
	assert.Equal(t, "}o", rel.CardRight.String())
	assert.Equal(t, "owns", rel.Label)
}

func TestParseERInlineBlock(t *testing.T) {
	t.Parallel()

	m := mermaid.ParseER(`USERS { uuid id PK }`)
	require.Len(t, m.Entities, 1)
	require.Len(t, m.Entities[0].Fields, 1)
	assert.Equal(t, schema.Field{Type: field.TypeUUID, Name: "id", Constraint: "PK"}, m.Entities[0].Fields[0])
}

// The scan is total: any input yields a model, never a failure.
func TestParseERNeverFails(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\n\n\n",
		"%% just a comment\n%% another",
		"erDiagram",
		"this line matches nothing",
		"USERS {",                 // unclosed block
		"{ }",                     // block without a name
		"A ||--?? B",              // bad cardinality
		"\x00\x01 garbage \xff",   // binary junk
		strings.Repeat("}{[]", 64),
	}
	for _, src := range inputs {
		m := mermaid.ParseER(src)
		require.NotNil(t, m, "input %q", src)
	}
	assert.True(t, mermaid.ParseER("").Empty())
}

func TestParseERSkipsMalformedLines(t *testing.T) {
	t.Parallel()

	src := `erDiagram
    what even is this line
    USERS {
        uuid id PK
        ??? not a field ???
    }
    USERS ||--|| ACCOUNTS
    broken ||--
`
	m := mermaid.ParseER(src)
	require.Len(t, m.Entities, 1)
	assert.Len(t, m.Entities[0].Fields, 1)
	require.Len(t, m.Rels, 1)
	assert.Equal(t, "ACCOUNTS", m.Rels[0].Right)
	assert.Equal(t, "", m.Rels[0].Label)
}

func TestParseERLeniency(t *testing.T) {
	t.Parallel()

	// Unknown field types are preserved verbatim, not rejected.
	m := mermaid.ParseER("ITEMS {\n    money price\n}")
	require.Len(t, m.Entities, 1)
	require.Len(t, m.Entities[0].Fields, 1)
	assert.Equal(t, field.Type("money"), m.Entities[0].Fields[0].Type)
	assert.False(t, m.Entities[0].Fields[0].Type.Known())

	// Dotted connectors are tolerated.
	m = mermaid.ParseER(`A |o..o| B`)
	require.Len(t, m.Rels, 1)
	assert.Equal(t, card.ZeroOrOne, m.Rels[0].CardLeft)
	assert.Equal(t, card.ZeroOrOne, m.Rels[0].CardRight)

	// Comma-separated constraints normalize to the space form.
	m = mermaid.ParseER("T {\n    int user_id PK, FK\n}")
	require.Len(t, m.Entities[0].Fields, 1)
	assert.Equal(t, "PK FK", m.Entities[0].Fields[0].Constraint)

	// Endpoints are not validated against declared entities.
	m = mermaid.ParseER(`GHOSTS ||--o{ PHANTOMS : ""`)
	assert.Empty(t, m.Entities)
	require.Len(t, m.Rels, 1)
	assert.Equal(t, []string{"GHOSTS", "PHANTOMS"}, m.Dangling())
}

func TestParseERDuplicateBlocksMerge(t *testing.T) {
	t.Parallel()

	src := `
USERS {
    uuid id PK
}
USERS {
    string email
}
`
	m := mermaid.ParseER(src)
	require.Len(t, m.Entities, 1)
	assert.Len(t, m.Entities[0].Fields, 2)
}
