package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	FormatTime     int64 // nanoseconds
	WriteTime      int64 // nanoseconds
}

// Generate writes one Go source file per entity into the output directory,
// in parallel. Output is formatted with goimports before it hits disk.
func (g *Generator) Generate(ctx context.Context) error {
	if err := g.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g.metrics = WriterMetrics{}
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for _, e := range g.model.Entities {
		e := e
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var buf bytes.Buffer
			if err := g.genEntity(e).Render(&buf); err != nil {
				return &ModelError{Entity: e.Name, Message: "render failed", Cause: err}
			}

			name := filepath.Join(g.outDir, fileName(e.Name))
			start := time.Now()
			src, err := imports.Process(name, buf.Bytes(), nil)
			formatted := time.Since(start)
			if err != nil {
				return &ModelError{Entity: e.Name, Message: "format failed", Cause: err}
			}

			start = time.Now()
			if err := os.WriteFile(name, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}

			mu.Lock()
			g.metrics.FilesGenerated++
			g.metrics.TotalBytes += int64(len(src))
			g.metrics.FormatTime += int64(formatted)
			g.metrics.WriteTime += int64(time.Since(start))
			mu.Unlock()
			return nil
		})
	}
	return eg.Wait()
}

// fileName maps an entity name to its generated file name: ORDER_ITEMS ->
// order_item.go.
func fileName(entity string) string {
	name := structName(entity)
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String() + ".go"
}
