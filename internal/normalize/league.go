package normalize

import (
	"log"
	"time"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/espn"
)

// Standings flattens a standings payload into ranked rows. Groupings are
// walked in order; rank is positional across the flattened table.
func Standings(raw *espn.StandingsResponse) []model.StandingRow {
	if raw == nil {
		return []model.StandingRow{}
	}

	var entries []espn.StandingsEntry
	if raw.Standings != nil {
		entries = append(entries, raw.Standings.Entries...)
	}
	for _, group := range raw.Children {
		if group.Standings != nil {
			entries = append(entries, group.Standings.Entries...)
		}
	}

	rows := make([]model.StandingRow, 0, len(entries))
	for i, entry := range entries {
		row := model.StandingRow{
			Rank: i + 1,
			Name: firstNonEmpty(entry.Team.DisplayName, entry.Team.Name),
			Logo: entry.Team.Logo,
		}
		if row.Name == "" {
			log.Printf("[normalize] skipping standings entry %d: no team name", i)
			continue
		}

		for _, stat := range entry.Stats {
			value := int(stat.Value)
			switch stat.Name {
			case "gamesPlayed":
				row.GamesPlayed = value
			case "wins":
				row.Wins = value
			case "losses":
				row.Losses = value
			case "otLosses", "overtimeLosses":
				row.OvertimeLosses = value
			case "points":
				row.Points = value
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// News maps a news feed into normalized articles. Entries without a
// headline or link are dropped.
func News(raw *espn.NewsResponse) []model.NewsArticle {
	if raw == nil {
		return []model.NewsArticle{}
	}

	articles := make([]model.NewsArticle, 0, len(raw.Articles))
	for i, rawArticle := range raw.Articles {
		if rawArticle.Headline == "" || rawArticle.Links.Web.Href == "" {
			log.Printf("[normalize] skipping article %d: missing headline or link", i)
			continue
		}

		article := model.NewsArticle{
			Title:   rawArticle.Headline,
			Summary: rawArticle.Description,
			URL:     rawArticle.Links.Web.Href,
		}
		if ts, err := time.Parse(time.RFC3339, rawArticle.Published); err == nil {
			article.Date = ts
		}
		if len(rawArticle.Images) > 0 {
			article.Image = rawArticle.Images[0].URL
		}

		articles = append(articles, article)
	}
	return articles
}
