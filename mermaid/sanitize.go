package mermaid

import "strings"

// MaxLabelLen bounds sanitized label length so rendered diagrams stay
// legible. Longer labels are cut at a word boundary where possible and get
// a trailing ellipsis.
const MaxLabelLen = 45

// labelStrip removes every character the flowchart notation treats as
// syntax inside or around a node label.
var labelStrip = strings.NewReplacer(
	"[", "", "]", "",
	"(", "", ")", "",
	"{", "", "}", "",
	"<", "", ">", "",
	`"`, "", "`", "",
	"\r", " ", "\n", " ", "\t", " ",
)

// Sanitize makes free text safe for embedding as a node label: notation
// characters are stripped, whitespace is collapsed, and the result is
// truncated to MaxLabelLen runes. Lossy by design; never an error.
func Sanitize(label string) string {
	s := labelStrip.Replace(label)
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= MaxLabelLen {
		return s
	}
	cut := string(runes[:MaxLabelLen-1])
	// Prefer cutting at the last word boundary when one is reasonably close.
	if i := strings.LastIndex(cut, " "); i > MaxLabelLen/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ") + "…"
}
