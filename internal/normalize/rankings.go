package normalize

import (
	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/espn"
)

// Rankings maps the primary poll (the first ranking list in the payload)
// into normalized entries. A missing previous rank defaults to the current
// rank, which yields an unchanged direction.
func Rankings(raw *espn.RankingsResponse) []model.RankingEntry {
	if raw == nil || len(raw.Rankings) == 0 {
		return []model.RankingEntry{}
	}

	poll := raw.Rankings[0]
	entries := make([]model.RankingEntry, 0, len(poll.Ranks))
	for _, rank := range poll.Ranks {
		previous := rank.Previous
		if previous == 0 {
			previous = rank.Current
		}

		entry := model.RankingEntry{
			Rank:         rank.Current,
			PreviousRank: previous,
			Direction:    rankDirection(rank.Current, previous),
			Record:       rank.RecordSummary,
			Team: model.RankedTeam{
				Name: firstNonEmpty(rank.Team.Nickname, rank.Team.Name),
			},
		}
		if len(rank.Team.Logos) > 0 {
			entry.Team.Logo = rank.Team.Logos[0].Href
		}

		entries = append(entries, entry)
	}
	return entries
}

// rankDirection compares current against previous rank. Lower is better.
func rankDirection(current, previous int) model.RankDirection {
	switch {
	case current < previous:
		return model.RankUp
	case current > previous:
		return model.RankDown
	default:
		return model.RankUnchanged
	}
}
