package style

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/syssam/draft/graph"
)

// ErrInvalidConfig indicates a malformed style configuration file.
var ErrInvalidConfig = errors.New("draft: invalid style config")

// ConfigError describes what part of a style config file was rejected.
type ConfigError struct {
	Domain  string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Domain != "" {
		return fmt.Sprintf("draft: invalid style config for domain %s: %s", e.Domain, e.Message)
	}
	return "draft: invalid style config: " + e.Message
}

// Is reports whether the target error matches ErrInvalidConfig.
func (e *ConfigError) Is(err error) bool {
	return err == ErrInvalidConfig
}

// styleSpace is the fixed namespace for palette-variant digests. Stable
// across processes so a project keeps its colors between sessions.
var styleSpace = uuid.MustParse("a3c87f52-90de-4c91-bb1c-54d2c9f0b0de")

// Config is the resolved presentation choice for one project: the detected
// domain, its palette with the project's stable accent rotation applied,
// and the class definitions the emitter attaches to a graph.
type Config struct {
	Domain  Domain
	Palette Palette
	Variant int // 0..2, stable per (project, domain)
}

// Generate resolves the style for a project. The domain comes from the
// text; the palette variant comes from a SHA-1 UUID over the project
// identifier and domain, so identical input always yields the identical
// choice and distinct projects in the same domain still differ.
func Generate(projectID, text string) Config {
	d := DetectDomain(text)
	h := uuid.NewSHA1(styleSpace, []byte(projectID+":"+string(d)))
	v := int(h[0]) % 3
	return Config{Domain: d, Palette: rotate(PaletteFor(d), v), Variant: v}
}

// rotate shifts the three fill colors of a palette by v positions; surface
// and border stay put.
func rotate(p Palette, v int) Palette {
	out := p
	for i := 0; i < 3; i++ {
		out[i] = p[(i+v)%3]
	}
	return out
}

// ClassDefs returns one class definition per node type, in node-type
// order, ready to attach to a graph.
func (c Config) ClassDefs() []graph.ClassDef {
	fills := [endNodeTypes]string{
		NodeService:    c.Palette.Primary(),
		NodeController: c.Palette.Secondary(),
		NodeDecision:   c.Palette.Accent(),
		NodeDatabase:   c.Palette.Secondary(),
		NodeExternal:   c.Palette.Surface(),
		NodeUI:         c.Palette.Accent(),
	}
	defs := make([]graph.ClassDef, 0, int(endNodeTypes))
	for t := NodeService; t < endNodeTypes; t++ {
		defs = append(defs, graph.ClassDef{
			Name:  t.String() + "Node",
			Style: fmt.Sprintf("fill:%s,stroke:%s", fills[t], c.Palette.Border()),
		})
	}
	return defs
}

// FileConfig is a YAML palette/keyword override file:
//
//	domains:
//	  - name: e-commerce
//	    keywords: [shop, cart, checkout]
//	    palette: ["#e65100", "#ff9800", "#ffc107", "#fff3e0", "#bf360c"]
//
// Overrides replace the built-in entry for the named domain; unnamed
// domains keep their defaults.
type FileConfig struct {
	Domains []DomainConfig `yaml:"domains"`
}

// DomainConfig is one domain override.
type DomainConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Palette  []string `yaml:"palette"`
}

var reHexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadConfig reads and validates a YAML override file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("draft: read style config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig validates raw YAML override data.
func ParseConfig(data []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &ConfigError{Message: err.Error()}
	}
	for _, d := range fc.Domains {
		if d.Name == "" {
			return nil, &ConfigError{Message: "domain entry without a name"}
		}
		if len(d.Palette) != 0 && len(d.Palette) != 5 {
			return nil, &ConfigError{Domain: d.Name, Message: fmt.Sprintf("palette needs 5 colors, got %d", len(d.Palette))}
		}
		for _, c := range d.Palette {
			if !reHexColor.MatchString(c) {
				return nil, &ConfigError{Domain: d.Name, Message: fmt.Sprintf("bad color %q", c)}
			}
		}
	}
	return &fc, nil
}

// Table is a detection table with file overrides applied. The zero value
// is not usable; build one with NewTable.
type Table struct {
	rules    []domainRule
	palettes map[Domain]Palette
}

// NewTable merges a parsed override file over the built-in tables. A nil
// file yields the defaults.
func NewTable(fc *FileConfig) *Table {
	t := &Table{
		rules:    make([]domainRule, len(domainRules)),
		palettes: make(map[Domain]Palette, len(palettes)),
	}
	copy(t.rules, domainRules)
	for d, p := range palettes {
		t.palettes[d] = p
	}
	if fc == nil {
		return t
	}
	for _, dc := range fc.Domains {
		d := Domain(dc.Name)
		if len(dc.Keywords) > 0 {
			replaced := false
			for i := range t.rules {
				if t.rules[i].domain == d {
					t.rules[i].keywords = dc.Keywords
					replaced = true
					break
				}
			}
			if !replaced {
				t.rules = append(t.rules, domainRule{domain: d, keywords: dc.Keywords})
			}
		}
		if len(dc.Palette) == 5 {
			t.palettes[d] = Palette{dc.Palette[0], dc.Palette[1], dc.Palette[2], dc.Palette[3], dc.Palette[4]}
		}
	}
	return t
}

// DetectDomain classifies text against the merged table, first match wins.
func (t *Table) DetectDomain(text string) Domain {
	lt := strings.ToLower(text)
	for _, rule := range t.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lt, kw) {
				return rule.domain
			}
		}
	}
	return DomainDefault
}

// PaletteFor returns the merged palette of a domain.
func (t *Table) PaletteFor(d Domain) Palette {
	if p, ok := t.palettes[d]; ok {
		return p
	}
	return t.palettes[DomainDefault]
}
