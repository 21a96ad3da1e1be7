package aggregate

import (
	"strings"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/oddsapi"
)

// AttachOdds joins moneyline odds onto event sides. The odds provider has
// no identifier shared with the scoreboard, so the join is a
// case-insensitive substring match between the side's team name and the
// odds entry's team-name string; the first match wins. Sides with no match
// keep nil odds.
func AttachOdds(events []model.Event, odds []oddsapi.GameOdds) {
	for i := range events {
		attachSide(&events[i].Teams.Home, odds)
		attachSide(&events[i].Teams.Away, odds)
	}
}

func attachSide(side *model.TeamSide, odds []oddsapi.GameOdds) {
	for i := range odds {
		entry := &odds[i]

		if teamNamesMatch(side.Name, entry.HomeTeam) {
			if price, ok := entry.Moneyline(entry.HomeTeam); ok {
				side.Odds = &model.TeamOdds{Moneyline: price}
			}
			return
		}
		if teamNamesMatch(side.Name, entry.AwayTeam) {
			if price, ok := entry.Moneyline(entry.AwayTeam); ok {
				side.Odds = &model.TeamOdds{Moneyline: price}
			}
			return
		}
	}
}

// teamNamesMatch reports whether either name contains the other,
// case-insensitively. "Duke" matches "Duke Blue Devils".
func teamNamesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
