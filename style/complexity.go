package style

import "strings"

// Level is a coarse complexity bucket for a described piece of work.
type Level uint8

// Complexity levels.
const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

var levelNames = [...]string{
	LevelLow:    "low",
	LevelMedium: "medium",
	LevelHigh:   "high",
}

// String returns the level name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "invalid"
}

// Scoring weights. Additive: every keyword hit contributes its weight, and
// long descriptions add a point per 20 words.
var complexityWeights = []struct {
	keyword string
	weight  int
}{
	{"integration", 3},
	{"real-time", 3},
	{"realtime", 3},
	{"payment", 3},
	{"migration", 3},
	{"machine learning", 3},
	{"analytics", 2},
	{"notification", 2},
	{"search", 2},
	{"sync", 2},
	{"concurrent", 2},
	{"workflow", 2},
	{"export", 1},
	{"report", 1},
	{"filter", 1},
	{"upload", 1},
}

const (
	mediumThreshold = 3
	highThreshold   = 6
)

// Complexity scores a free-text description into a level. Deterministic:
// the same text always lands in the same bucket.
func Complexity(text string) Level {
	lt := strings.ToLower(text)
	score := len(strings.Fields(lt)) / 20
	for _, w := range complexityWeights {
		if strings.Contains(lt, w.keyword) {
			score += w.weight
		}
	}
	switch {
	case score >= highThreshold:
		return LevelHigh
	case score >= mediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}
