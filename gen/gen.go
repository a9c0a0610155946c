package gen

import (
	"runtime"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/draft/schema"
)

// Generator turns a database ER model into Go model source files, one file
// per entity plus the shared package file.
type Generator struct {
	model   *schema.Model
	outDir  string
	pkg     string
	header  string
	workers int

	metrics WriterMetrics
}

// Option configures code generation.
type Option func(*Generator) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(g *Generator) error {
		g.header = header
		return nil
	}
}

// WithPackage sets the generated package name. Defaults to the base name
// of the output directory.
func WithPackage(pkg string) Option {
	return func(g *Generator) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		g.pkg = pkg
		return nil
	}
}

// WithWorkers sets the number of parallel writer workers.
func WithWorkers(n int) Option {
	return func(g *Generator) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		g.workers = n
		return nil
	}
}

// NewGenerator creates a generator for the given model writing into outDir.
func NewGenerator(m *schema.Model, outDir string, opts ...Option) (*Generator, error) {
	if m == nil {
		return nil, &ModelError{Message: "nil model"}
	}
	if outDir == "" {
		return nil, NewConfigError("OutDir", nil, "output directory cannot be empty")
	}
	g := &Generator{
		model:   m,
		outDir:  outDir,
		pkg:     pkgName(outDir),
		header:  "Code generated by draft, DO NOT EDIT.",
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Metrics returns the metrics of the last Generate run.
func (g *Generator) Metrics() WriterMetrics { return g.metrics }

func pkgName(dir string) string {
	dir = strings.TrimRight(dir, "/")
	if i := strings.LastIndexByte(dir, '/'); i >= 0 {
		dir = dir[i+1:]
	}
	if dir == "" || dir == "." {
		return "models"
	}
	return strings.ToLower(dir)
}

// structName maps an entity name to its Go struct name:
// USERS -> User, order_items -> OrderItem.
func structName(entity string) string {
	return inflect.Camelize(inflect.Singularize(strings.ToLower(entity)))
}

// fieldName maps a field name to its exported Go name with common
// initialisms fixed up: id -> ID, user_id -> UserID.
func fieldName(name string) string {
	n := inflect.Camelize(strings.ToLower(name))
	for _, r := range initialisms {
		if n == r.from {
			return r.to
		}
		if strings.HasSuffix(n, r.from) {
			n = strings.TrimSuffix(n, r.from) + r.to
		}
		if strings.HasPrefix(n, r.from) {
			n = r.to + strings.TrimPrefix(n, r.from)
		}
	}
	return n
}

var initialisms = []struct{ from, to string }{
	{"Uuid", "UUID"},
	{"Url", "URL"},
	{"Api", "API"},
	{"Json", "JSON"},
	{"Sku", "SKU"},
	{"Html", "HTML"},
	{"Id", "ID"},
}

// validate rejects models whose entities collapse onto the same Go struct
// name; everything else is generatable.
func (g *Generator) validate() error {
	seen := make(map[string]string, len(g.model.Entities))
	for _, e := range g.model.Entities {
		name := structName(e.Name)
		if prev, ok := seen[name]; ok {
			return &ModelError{
				Entity:  e.Name,
				Message: "maps to the same Go type as entity " + prev,
			}
		}
		seen[name] = e.Name
	}
	return nil
}
