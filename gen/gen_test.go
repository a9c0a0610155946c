package gen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/draft/gen"
	"github.com/syssam/draft/mermaid"
)

const testDiagram = `erDiagram
    USERS ||--o{ PROJECTS : "owns"

    USERS {
        uuid id PK
        string email
        datetime created_at
    }

    PROJECTS {
        uuid id PK
        uuid user_id FK
        varchar name
        json settings
    }
`

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := mermaid.ParseER(testDiagram)
	g, err := gen.NewGenerator(m, dir, gen.WithPackage("models"))
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	user, err := os.ReadFile(filepath.Join(dir, "user.go"))
	require.NoError(t, err)
	assert.Contains(t, string(user), "package models")
	assert.Contains(t, string(user), "type User struct")
	assert.Regexp(t, `ID\s+uuid\.UUID`, string(user))
	assert.Regexp(t, `CreatedAt\s+time\.Time`, string(user))
	assert.Contains(t, string(user), "type UserEdges struct")
	assert.Contains(t, string(user), "Projects []*Project")
	assert.Contains(t, string(user), "Code generated by draft, DO NOT EDIT.")

	project, err := os.ReadFile(filepath.Join(dir, "project.go"))
	require.NoError(t, err)
	assert.Contains(t, string(project), "type Project struct")
	assert.Regexp(t, `UserID\s+uuid\.UUID`, string(project))
	assert.Regexp(t, `Settings\s+json\.RawMessage`, string(project))
	// The inverse side of ||--o{ is singular.
	assert.Contains(t, string(project), "User *User")

	metrics := g.Metrics()
	assert.Equal(t, 2, metrics.FilesGenerated)
	assert.Positive(t, metrics.TotalBytes)
}

func TestGenerateUnknownTypeFallsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := mermaid.ParseER("ITEMS {\n    money price\n}")
	g, err := gen.NewGenerator(m, dir)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	item, err := os.ReadFile(filepath.Join(dir, "item.go"))
	require.NoError(t, err)
	assert.Contains(t, string(item), "Price string")
}

func TestGenerateCollision(t *testing.T) {
	t.Parallel()

	m := mermaid.ParseER("USERS {\n    uuid id PK\n}\nUSER {\n    uuid id PK\n}")
	g, err := gen.NewGenerator(m, t.TempDir())
	require.NoError(t, err)

	err = g.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gen.ErrInvalidModel))

	var merr *gen.ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "USER", merr.Entity)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	m := mermaid.ParseER(testDiagram)

	_, err := gen.NewGenerator(nil, t.TempDir())
	assert.ErrorIs(t, err, gen.ErrInvalidModel)

	_, err = gen.NewGenerator(m, "")
	assert.ErrorIs(t, err, gen.ErrMissingConfig)

	_, err = gen.NewGenerator(m, t.TempDir(), gen.WithPackage(""))
	assert.ErrorIs(t, err, gen.ErrMissingConfig)

	_, err = gen.NewGenerator(m, t.TempDir(), gen.WithWorkers(0))
	assert.ErrorIs(t, err, gen.ErrMissingConfig)

	g, err := gen.NewGenerator(m, t.TempDir(), gen.WithHeader(""), gen.WithWorkers(1))
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))
}

func TestWatchCanceled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "diagram.mmd")
	require.NoError(t, os.WriteFile(path, []byte("erDiagram\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := gen.Watch(ctx, path, func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
