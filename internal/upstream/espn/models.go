package espn

// Typed views of the ESPN site API payloads. Every field is optional on the
// wire; the zero value always means "not provided", and normalization must
// not assume presence.

// ScoreboardResponse is the shape of /scoreboard.
type ScoreboardResponse struct {
	Leagues []League `json:"leagues"`
	Events  []Event  `json:"events"`
}

// League carries tournament metadata and the date calendar.
type League struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	Calendar     []string `json:"calendar"`
}

// Event is one scoreboard entry.
type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
	Status       Status        `json:"status"`
}

// Competition holds competitors, venue, broadcasts, and tournament notes.
type Competition struct {
	ID          string       `json:"id"`
	Competitors []Competitor `json:"competitors"`
	Venue       *RawVenue    `json:"venue"`
	Broadcasts  []Broadcast  `json:"broadcasts"`
	Notes       []Note       `json:"notes"`
	Status      Status       `json:"status"`
	Situation   *Situation   `json:"situation"`
}

// Situation is the in-game state block of a live competition. Possession
// holds the team ID owning the next alternating-possession arrow.
type Situation struct {
	Possession     string `json:"possession"`
	PossessionText string `json:"possessionText"`
}

// Competitor is one side of a competition, tagged home or away.
type Competitor struct {
	ID          string       `json:"id"`
	HomeAway    string       `json:"homeAway"`
	Winner      bool         `json:"winner"`
	Score       string       `json:"score"`
	CuratedRank *CuratedRank `json:"curatedRank"`
	Records     []RawRecord  `json:"records"`
	Statistics  []RawStat    `json:"statistics"`
	Team        Team         `json:"team"`
}

// CuratedRank is the seed/poll position for a competitor.
type CuratedRank struct {
	Current int `json:"current"`
}

// RawRecord is a win/loss summary ("total" -> "28-4").
type RawRecord struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

// RawStat is one labeled statistic value.
type RawStat struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayValue string `json:"displayValue"`
}

// Team identifies a competitor's team.
type Team struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
}

// RawVenue is where a competition takes place.
type RawVenue struct {
	FullName string   `json:"fullName"`
	Address  *Address `json:"address"`
}

// Address is a venue location.
type Address struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Broadcast lists network names carrying a game.
type Broadcast struct {
	Names []string `json:"names"`
}

// Note is free-form tournament metadata ("event" -> headline with round and
// region text).
type Note struct {
	Type     string `json:"type"`
	Headline string `json:"headline"`
}

// Status is the game state block.
type Status struct {
	Clock        float64    `json:"clock"`
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

// StatusType carries the pre/in/post state tag.
type StatusType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}

// RankingsResponse is the shape of /rankings. The first entry is the
// primary poll.
type RankingsResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one poll with its entries.
type Ranking struct {
	Name  string `json:"name"`
	Ranks []Rank `json:"ranks"`
}

// Rank is one poll row. Previous of zero means ESPN omitted it.
type Rank struct {
	Current       int        `json:"current"`
	Previous      int        `json:"previous"`
	RecordSummary string     `json:"recordSummary"`
	Team          RankedTeam `json:"team"`
}

// RankedTeam is the team block inside a poll row.
type RankedTeam struct {
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	Logos    []Logo `json:"logos"`
}

// Logo is one image reference.
type Logo struct {
	Href string `json:"href"`
}

// SummaryResponse is the shape of /summary: the play log plus the header
// the play team IDs resolve against.
type SummaryResponse struct {
	Plays  []RawPlay `json:"plays"`
	Header *Header   `json:"header"`
}

// Header mirrors the scoreboard competition block inside a game summary.
type Header struct {
	Competitions []Competition `json:"competitions"`
}

// RawPlay is one play log entry. ScoreValue is zero for non-scoring plays.
type RawPlay struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	ScoreValue  int        `json:"scoreValue"`
	ScoringPlay bool       `json:"scoringPlay"`
	Period      PlayPeriod `json:"period"`
	Clock       PlayClock  `json:"clock"`
	Team        *PlayTeam  `json:"team"`
}

// PlayPeriod is the period block of a play.
type PlayPeriod struct {
	Number int `json:"number"`
}

// PlayClock is the display clock of a play.
type PlayClock struct {
	DisplayValue string `json:"displayValue"`
}

// PlayTeam references the team a play belongs to by competitor ID.
type PlayTeam struct {
	ID string `json:"id"`
}

// StandingsResponse is the shape of /standings.
type StandingsResponse struct {
	Children  []StandingsGroup `json:"children"`
	Standings *StandingsBlock  `json:"standings"`
}

// StandingsGroup is a conference/division grouping.
type StandingsGroup struct {
	Name      string          `json:"name"`
	Standings *StandingsBlock `json:"standings"`
}

// StandingsBlock holds the table entries.
type StandingsBlock struct {
	Entries []StandingsEntry `json:"entries"`
}

// StandingsEntry is one team row with labeled stats.
type StandingsEntry struct {
	Team  Team           `json:"team"`
	Stats []StandingStat `json:"stats"`
}

// StandingStat is one labeled standings value.
type StandingStat struct {
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

// NewsResponse is the shape of /news.
type NewsResponse struct {
	Articles []Article `json:"articles"`
}

// Article is one news item.
type Article struct {
	Headline    string       `json:"headline"`
	Description string       `json:"description"`
	Published   string       `json:"published"`
	Images      []Image      `json:"images"`
	Links       ArticleLinks `json:"links"`
}

// Image is one article image.
type Image struct {
	URL string `json:"url"`
}

// ArticleLinks holds the web link for an article.
type ArticleLinks struct {
	Web WebLink `json:"web"`
}

// WebLink is an href wrapper.
type WebLink struct {
	Href string `json:"href"`
}
