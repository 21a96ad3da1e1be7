package scrape

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream"
)

// NewsScraper pulls articles off a league's news page when the JSON feed
// is down.
type NewsScraper struct {
	browser *Browser
	pageURL string
}

// NewNewsScraper creates a scraper for the given news page.
func NewNewsScraper(browser *Browser, pageURL string) *NewsScraper {
	return &NewsScraper{browser: browser, pageURL: pageURL}
}

// FetchNews fetches and parses the news page. A page that renders but
// contains no recognizable articles returns ErrNoData.
func (s *NewsScraper) FetchNews(ctx context.Context) ([]model.NewsArticle, error) {
	html, err := s.browser.FetchHTML(ctx, s.pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	articles := ParseArticles(doc)
	if len(articles) == 0 {
		return nil, upstream.ErrNoData
	}
	return articles, nil
}

// ParseArticles extracts article cards from a rendered news page. Records
// missing a title or link are dropped; the rest of the page still parses.
func ParseArticles(doc *goquery.Document) []model.NewsArticle {
	var articles []model.NewsArticle

	doc.Find("article").Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find("h1, h2, h3").First().Text())
		href, _ := sel.Find("a").First().Attr("href")

		if title == "" || href == "" {
			log.Printf("[scrape] skipping article node %d: missing title or link", i)
			return
		}

		article := model.NewsArticle{
			Title:   title,
			Summary: strings.TrimSpace(sel.Find("p").First().Text()),
			URL:     href,
		}

		if src, ok := sel.Find("img").First().Attr("src"); ok {
			article.Image = src
		}

		if datetime, ok := sel.Find("time").First().Attr("datetime"); ok {
			if ts, err := time.Parse(time.RFC3339, datetime); err == nil {
				article.Date = ts
			}
		}

		articles = append(articles, article)
	})

	return articles
}
