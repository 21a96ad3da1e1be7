package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/oddsapi"
)

func oddsEntry(home, away string, homePrice, awayPrice int) oddsapi.GameOdds {
	return oddsapi.GameOdds{
		HomeTeam: home,
		AwayTeam: away,
		Bookmakers: []oddsapi.Bookmaker{
			{
				Key: "draftkings",
				Markets: []oddsapi.Market{
					{
						Key: "h2h",
						Outcomes: []oddsapi.Outcome{
							{Name: home, Price: homePrice},
							{Name: away, Price: awayPrice},
						},
					},
				},
			},
		},
	}
}

func TestAttachOddsSubstringMatch(t *testing.T) {
	events := []model.Event{
		{
			ID: "g1",
			Teams: model.Matchup{
				Home: model.TeamSide{Name: "Duke Blue Devils"},
				Away: model.TeamSide{Name: "North Carolina Tar Heels"},
			},
		},
	}
	odds := []oddsapi.GameOdds{
		oddsEntry("Duke", "North Carolina", -180, +155),
	}

	AttachOdds(events, odds)

	require.NotNil(t, events[0].Teams.Home.Odds)
	assert.Equal(t, -180, events[0].Teams.Home.Odds.Moneyline)
	require.NotNil(t, events[0].Teams.Away.Odds)
	assert.Equal(t, 155, events[0].Teams.Away.Odds.Moneyline)
}

func TestAttachOddsCaseInsensitive(t *testing.T) {
	events := []model.Event{
		{
			Teams: model.Matchup{
				Home: model.TeamSide{Name: "UCONN HUSKIES"},
				Away: model.TeamSide{Name: "Stanford Cardinal"},
			},
		},
	}
	odds := []oddsapi.GameOdds{
		oddsEntry("UConn Huskies", "Stanford", -300, +240),
	}

	AttachOdds(events, odds)

	require.NotNil(t, events[0].Teams.Home.Odds)
	assert.Equal(t, -300, events[0].Teams.Home.Odds.Moneyline)
}

func TestAttachOddsNoMatchLeavesNil(t *testing.T) {
	events := []model.Event{
		{
			Teams: model.Matchup{
				Home: model.TeamSide{Name: "Gonzaga Bulldogs"},
				Away: model.TeamSide{Name: "Baylor Bears"},
			},
		},
	}
	odds := []oddsapi.GameOdds{
		oddsEntry("Duke", "North Carolina", -180, +155),
	}

	AttachOdds(events, odds)

	assert.Nil(t, events[0].Teams.Home.Odds)
	assert.Nil(t, events[0].Teams.Away.Odds)
}

func TestAttachOddsNoPriceLeavesNil(t *testing.T) {
	// A matching entry without an h2h market attaches nothing.
	entry := oddsapi.GameOdds{HomeTeam: "Duke", AwayTeam: "North Carolina"}
	events := []model.Event{
		{Teams: model.Matchup{Home: model.TeamSide{Name: "Duke Blue Devils"}}},
	}

	AttachOdds(events, []oddsapi.GameOdds{entry})

	assert.Nil(t, events[0].Teams.Home.Odds)
}
