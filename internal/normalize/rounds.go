package normalize

import (
	"strings"

	"github.com/fortuna/courtside/internal/upstream/espn"
)

// RoundUnknown buckets round labels that match no known round name.
const RoundUnknown = "Unknown"

// RoundOrder is the canonical bracket ordering used when emitting grouped
// rounds. Unknown always sorts last.
var RoundOrder = []string{
	"First Four",
	"First Round",
	"Second Round",
	"Sweet 16",
	"Elite Eight",
	"Final Four",
	"Championship",
	RoundUnknown,
}

// roundAliases maps label fragments (lowercased) to canonical round names.
// Order matters: more specific fragments come first.
var roundAliases = []struct {
	fragment string
	round    string
}{
	{"first four", "First Four"},
	{"first round", "First Round"},
	{"1st round", "First Round"},
	{"second round", "Second Round"},
	{"2nd round", "Second Round"},
	{"sweet 16", "Sweet 16"},
	{"sweet sixteen", "Sweet 16"},
	{"elite eight", "Elite Eight"},
	{"elite 8", "Elite Eight"},
	{"final four", "Final Four"},
	{"national championship", "Championship"},
	{"championship", "Championship"},
}

// Round holds tournament placement derived from a competition's free-form
// notes.
type Round struct {
	Round       string
	Region      string
	BracketType string
}

// RoundInfo classifies a competition's notes into round, region, and
// bracket type. A headline whose round label matches nothing known lands in
// the Unknown bucket; events with no notes at all stay unclassified.
func RoundInfo(notes []espn.Note) Round {
	var info Round

	for _, note := range notes {
		if note.Type != "event" || note.Headline == "" {
			continue
		}

		for _, part := range strings.Split(note.Headline, " - ") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if round := matchRound(part); round != "" {
				info.Round = round
				continue
			}
			if strings.Contains(strings.ToLower(part), "region") {
				info.Region = part
				continue
			}
			if strings.Contains(strings.ToLower(part), "tournament") {
				info.BracketType = part
				continue
			}

			// A labeled segment that matches nothing known still counts
			// as a round claim; it lands in the Unknown bucket.
			if info.Round == "" {
				info.Round = RoundUnknown
			}
		}
	}

	return info
}

func matchRound(label string) string {
	lower := strings.ToLower(label)
	for _, alias := range roundAliases {
		if strings.Contains(lower, alias.fragment) {
			return alias.round
		}
	}
	return ""
}
