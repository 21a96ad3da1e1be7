package normalize

import (
	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/espn"
)

// Plays maps a summary's play log into normalized plays, preserving the
// provider's oldest-first ordering. Team references resolve to abbreviations
// through the summary header; a play with no team stays unattributed.
func Plays(raw *espn.SummaryResponse) []model.Play {
	if raw == nil || len(raw.Plays) == 0 {
		return nil
	}

	abbrs := teamAbbreviations(raw.Header)

	plays := make([]model.Play, 0, len(raw.Plays))
	for _, rawPlay := range raw.Plays {
		play := model.Play{
			ID:         rawPlay.ID,
			Period:     rawPlay.Period.Number,
			Clock:      rawPlay.Clock.DisplayValue,
			Text:       rawPlay.Text,
			ScoreValue: rawPlay.ScoreValue,
		}
		if rawPlay.Team != nil {
			play.Team = abbrs[rawPlay.Team.ID]
		}
		plays = append(plays, play)
	}
	return plays
}

// ScoringPlays filters the play log down to plays that changed the score.
func ScoringPlays(plays []model.Play) []model.Play {
	scoring := make([]model.Play, 0)
	for _, play := range plays {
		if play.ScoreValue > 0 {
			scoring = append(scoring, play)
		}
	}
	return scoring
}

// PossessionArrow resolves the alternating-possession holder from the
// summary header's situation block to a team abbreviation, falling back to
// the provider's display text. Empty when the game carries no situation.
func PossessionArrow(raw *espn.SummaryResponse) string {
	if raw == nil || raw.Header == nil {
		return ""
	}

	abbrs := teamAbbreviations(raw.Header)
	for _, comp := range raw.Header.Competitions {
		if comp.Situation == nil {
			continue
		}
		if abbr := abbrs[comp.Situation.Possession]; abbr != "" {
			return abbr
		}
		return comp.Situation.PossessionText
	}
	return ""
}

func teamAbbreviations(header *espn.Header) map[string]string {
	abbrs := map[string]string{}
	if header == nil {
		return abbrs
	}
	for _, comp := range header.Competitions {
		for _, competitor := range comp.Competitors {
			if competitor.Team.Abbreviation == "" {
				continue
			}
			abbrs[competitor.Team.ID] = competitor.Team.Abbreviation
			if competitor.ID != "" {
				abbrs[competitor.ID] = competitor.Team.Abbreviation
			}
		}
	}
	return abbrs
}
