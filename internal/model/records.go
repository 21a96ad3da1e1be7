package model

import "time"

// RankDirection indicates week-over-week poll movement.
type RankDirection string

const (
	RankUp        RankDirection = "up"
	RankDown      RankDirection = "down"
	RankUnchanged RankDirection = "unchanged"
)

// RankedTeam is the team identity inside a ranking entry.
type RankedTeam struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// RankingEntry is one row of a poll.
type RankingEntry struct {
	Rank         int           `json:"rank"`
	PreviousRank int           `json:"previousRank"`
	Direction    RankDirection `json:"direction"`
	Team         RankedTeam    `json:"team"`
	Record       string        `json:"record,omitempty"`
}

// StandingRow is one team's line in a league table.
type StandingRow struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	Logo           string `json:"logo,omitempty"`
	GamesPlayed    int    `json:"gamesPlayed"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	OvertimeLosses int    `json:"overtimeLosses"`
	Points         int    `json:"points"`
}

// NewsArticle is a normalized headline from a league news feed.
type NewsArticle struct {
	Title   string    `json:"title"`
	Summary string    `json:"summary,omitempty"`
	Date    time.Time `json:"date"`
	Image   string    `json:"image,omitempty"`
	URL     string    `json:"url"`
}

// SocialAuthor identifies who wrote a social post.
type SocialAuthor struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// SocialMetrics carries engagement counts for a post.
type SocialMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
}

// SocialPost is a normalized social media post used as best-effort
// enrichment; failures fetching these never affect primary data.
type SocialPost struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"created_at"`
	Author    SocialAuthor  `json:"author"`
	Metrics   SocialMetrics `json:"metrics"`
}

// RaceEvent is one entry in a motorsport season schedule.
type RaceEvent struct {
	Name    string    `json:"name"`
	Circuit string    `json:"circuit,omitempty"`
	Date    time.Time `json:"date"`
}

// MotorsportStanding is a driver or constructor championship row.
type MotorsportStanding struct {
	Position int     `json:"position"`
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
}
