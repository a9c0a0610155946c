package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/draft"
	"github.com/syssam/draft/graph"
	"github.com/syssam/draft/schema"
	"github.com/syssam/draft/schema/card"
	"github.com/syssam/draft/schema/field"
)

func TestMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hld", draft.ModeHLD.String())
	assert.Equal(t, "lld", draft.ModeLLD.String())
	assert.Equal(t, "dbd", draft.ModeDBD.String())
	assert.Equal(t, "invalid", draft.Mode(42).String())

	assert.True(t, draft.ModeDBD.Valid())
	assert.False(t, draft.Mode(42).Valid())
}

func TestPayload(t *testing.T) {
	t.Parallel()

	g := graph.New("TD")
	m := &schema.Model{}

	assert.Equal(t, g, draft.NewHLD(g).Payload())
	assert.Equal(t, g, draft.NewLLD(g).Payload())
	assert.Equal(t, m, draft.NewDBD(m).Payload())

	// A root whose payload field was never set yields nil.
	assert.Nil(t, (&draft.DiagramRoot{Mode: draft.ModeLLD}).Payload())
	assert.Nil(t, (&draft.DiagramRoot{Mode: draft.Mode(42)}).Payload())
}

func TestModeError(t *testing.T) {
	t.Parallel()

	err := draft.NewModeError(draft.Mode(9))
	assert.ErrorIs(t, err, draft.ErrUnknownMode)
	assert.Equal(t, draft.Mode(9), err.Mode())
	assert.Contains(t, err.Error(), "(9)")

	assert.True(t, draft.IsUnknownMode(err))
	assert.True(t, draft.IsUnknownMode(draft.ErrUnknownMode))
	assert.False(t, draft.IsUnknownMode(nil))
	assert.False(t, draft.IsUnknownMode(draft.ErrNilDiagram))
}

func TestEncodeDecodeDiagram(t *testing.T) {
	t.Parallel()

	m := &schema.Model{}
	m.AddEntity("USERS").Fields = []schema.Field{
		{Type: field.TypeUUID, Name: "id", Constraint: "PK"},
	}
	m.AddEntity("PROJECTS")
	m.AddRel(schema.Relationship{
		Left: "USERS", Right: "PROJECTS",
		CardLeft: card.One, CardRight: card.ZeroOrMany,
		Label: "owns",
	})

	root := draft.NewDBD(m)
	b, err := draft.EncodeDiagram(root)
	require.NoError(t, err)

	back, err := draft.DecodeDiagram(b)
	require.NoError(t, err)
	assert.Equal(t, root, back)

	g := graph.New("LR")
	g.AddNode(graph.Node{ID: "A1", Label: "Api", Shape: graph.ShapeRectangle})
	g.AddEdge(graph.Edge{From: "A1", To: "A1"})
	b, err = draft.EncodeDiagram(draft.NewHLD(g))
	require.NoError(t, err)
	back, err = draft.DecodeDiagram(b)
	require.NoError(t, err)
	assert.Equal(t, draft.ModeHLD, back.Mode)
	assert.Equal(t, g, back.HLD)
}

func TestEncodeDiagramRejects(t *testing.T) {
	t.Parallel()

	_, err := draft.EncodeDiagram(nil)
	assert.ErrorIs(t, err, draft.ErrNilDiagram)

	_, err = draft.EncodeDiagram(&draft.DiagramRoot{Mode: draft.Mode(42)})
	assert.True(t, draft.IsUnknownMode(err))

	_, err = draft.DecodeDiagram([]byte("not msgpack at all"))
	assert.Error(t, err)
}
