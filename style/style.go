// Package style derives deterministic presentation choices from free text:
// a domain classification with a fixed five-color palette, a node shape per
// detected node type, and a coarse complexity score.
//
// Every function here is pure and total. Classification is keyword
// matching over explicit ordered tables — first match wins for domains,
// highest score wins for node types with declaration order breaking ties —
// so behavior is reproducible and testable rather than implicit in control
// flow. Where variation is wanted it comes from a stable hash of the
// project identifier, never from randomness: regenerating a diagram for the
// same project must never re-color it.
package style

import "strings"

// Domain is the detected subject area of a project.
type Domain string

// Known domains.
const (
	DomainECommerce  Domain = "e-commerce"
	DomainHealthcare Domain = "healthcare"
	DomainFinance    Domain = "finance"
	DomainEducation  Domain = "education"
	DomainTech       Domain = "tech"
	DomainLogistics  Domain = "logistics"
	DomainSocial     Domain = "social"
	DomainDefault    Domain = "default"
)

// Palette is the fixed five-color scheme of a domain, ordered primary,
// secondary, accent, surface, border.
type Palette [5]string

// Primary returns the main fill color.
func (p Palette) Primary() string { return p[0] }

// Secondary returns the secondary fill color.
func (p Palette) Secondary() string { return p[1] }

// Accent returns the highlight color.
func (p Palette) Accent() string { return p[2] }

// Surface returns the light background color.
func (p Palette) Surface() string { return p[3] }

// Border returns the stroke color.
func (p Palette) Border() string { return p[4] }

// domainRule pairs a domain with the keywords that select it. The table is
// ordered; the first rule with any keyword present in the text wins.
type domainRule struct {
	domain   Domain
	keywords []string
}

var domainRules = []domainRule{
	{DomainECommerce, []string{"shop", "cart", "checkout", "product", "order", "inventory", "store", "catalog", "payment"}},
	{DomainHealthcare, []string{"patient", "clinic", "doctor", "medical", "health", "appointment", "prescription", "hospital"}},
	{DomainFinance, []string{"bank", "invoice", "loan", "budget", "expense", "trading", "portfolio", "ledger", "transaction"}},
	{DomainEducation, []string{"course", "student", "quiz", "lesson", "exam", "teacher", "learning", "classroom", "grade"}},
	{DomainTech, []string{"api", "deploy", "pipeline", "monitoring", "devops", "cloud", "kubernetes", "saas"}},
	{DomainLogistics, []string{"shipment", "delivery", "warehouse", "fleet", "tracking", "route", "freight", "supply"}},
	{DomainSocial, []string{"post", "follow", "feed", "comment", "friend", "share", "profile", "message", "chat"}},
}

var palettes = map[Domain]Palette{
	DomainECommerce:  {"#e65100", "#ff9800", "#ffc107", "#fff3e0", "#bf360c"},
	DomainHealthcare: {"#00695c", "#26a69a", "#4db6ac", "#e0f2f1", "#004d40"},
	DomainFinance:    {"#1b5e20", "#43a047", "#81c784", "#e8f5e9", "#0d3d11"},
	DomainEducation:  {"#4527a0", "#7e57c2", "#b39ddb", "#ede7f6", "#311b92"},
	DomainTech:       {"#0d47a1", "#1e88e5", "#64b5f6", "#e3f2fd", "#072f6b"},
	DomainLogistics:  {"#4e342e", "#8d6e63", "#bcaaa4", "#efebe9", "#3e2723"},
	DomainSocial:     {"#ad1457", "#ec407a", "#f48fb1", "#fce4ec", "#880e4f"},
	DomainDefault:    {"#37474f", "#607d8b", "#90a4ae", "#eceff1", "#263238"},
}

// DetectDomain classifies free text into a domain. The first rule in the
// table with any keyword present wins; text matching nothing is
// DomainDefault.
func DetectDomain(text string) Domain {
	lt := strings.ToLower(text)
	for _, rule := range domainRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lt, kw) {
				return rule.domain
			}
		}
	}
	return DomainDefault
}

// PaletteFor returns the fixed palette of a domain. Unknown domains get the
// default palette.
func PaletteFor(d Domain) Palette {
	if p, ok := palettes[d]; ok {
		return p
	}
	return palettes[DomainDefault]
}

// Domains returns the known domains in table order, default last.
func Domains() []Domain {
	out := make([]Domain, 0, len(domainRules)+1)
	for _, rule := range domainRules {
		out = append(out, rule.domain)
	}
	return append(out, DomainDefault)
}
