// Package card defines the crow's-foot cardinality tokens used on each side
// of an ER relationship.
//
// The notation writes cardinalities in two orientations. On the left of the
// "--" connector the crow's foot points left ("}o"), on the right it points
// right ("o{"). The model stores both sides in the canonical left-facing
// form; Parse normalizes right-side spellings via Mirror:
//
//	USERS ||--o{ PROJECTS : "owns"
//	       ^^  ^^
//	 left "||" stays "||", right "o{" is stored as "}o"
//
// Seven distinct two-character tokens appear on the wire: "||", "|o", "o|",
// "}|", "|{", "}o" and "o{".
package card

// Card is one cardinality token in canonical (left-facing) form.
type Card string

// Canonical cardinality tokens.
const (
	One        Card = "||" // exactly one
	ZeroOrOne  Card = "|o" // zero or one
	OneOrMany  Card = "}|" // one or many
	ZeroOrMany Card = "}o" // zero or many
)

// mirrors maps right-side spellings to their canonical form and back.
var mirrors = map[Card]Card{
	One:        One,
	ZeroOrOne:  "o|",
	OneOrMany:  "|{",
	ZeroOrMany: "o{",
	"o|":       ZeroOrOne,
	"|{":       OneOrMany,
	"o{":       ZeroOrMany,
}

var labels = map[Card]string{
	One:        "exactly one",
	ZeroOrOne:  "zero or one",
	OneOrMany:  "one or many",
	ZeroOrMany: "zero or many",
}

// Parse returns the canonical cardinality for a wire token from either side
// of the connector. It reports false for anything outside the fixed token
// set.
func Parse(tok string) (Card, bool) {
	c := Card(tok)
	if _, ok := labels[c]; ok {
		return c, true
	}
	if m, ok := mirrors[c]; ok {
		return m, true
	}
	return "", false
}

// Valid reports if c is one of the four canonical tokens.
func (c Card) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Mirror returns the opposite-orientation spelling of the token. Canonical
// tokens mirror to their right-side form and vice versa; "||" is its own
// mirror.
func (c Card) Mirror() Card {
	if m, ok := mirrors[c]; ok {
		return m
	}
	return c
}

// Label returns a human-readable description of the cardinality.
func (c Card) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return "unknown"
}

// String returns the token text.
func (c Card) String() string { return string(c) }

// Cards returns the four canonical tokens in a fixed order.
func Cards() []Card {
	return []Card{One, ZeroOrOne, OneOrMany, ZeroOrMany}
}
