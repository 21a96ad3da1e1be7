// Package social fetches recent posts from the X (Twitter) v2 search API.
// Posts are best-effort enrichment in an independent failure domain; the
// aggregator degrades to an empty list when this provider fails.
package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream"
)

const BaseURL = "https://api.twitter.com/2"

type searchResponse struct {
	Data     []rawPost `json:"data"`
	Includes *includes `json:"includes"`
}

type rawPost struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	AuthorID  string     `json:"author_id"`
	CreatedAt string     `json:"created_at"`
	Metrics   rawMetrics `json:"public_metrics"`
}

type rawMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
}

type includes struct {
	Users []rawUser `json:"users"`
}

type rawUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image_url"`
}

// Client searches recent posts with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a social search client. An empty token produces a client whose
// searches fail fast, which degrades cleanly at the aggregator.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns up to limit recent posts matching query, newest first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.SocialPost, error) {
	if c.token == "" {
		return nil, fmt.Errorf("social: no bearer token configured")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	u := fmt.Sprintf("%s/tweets/search/recent?query=%s&max_results=%d"+
		"&tweet.fields=created_at,public_metrics&expansions=author_id"+
		"&user.fields=name,username,profile_image_url",
		c.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &upstream.StatusError{URL: u, Code: resp.StatusCode}
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	users := map[string]rawUser{}
	if raw.Includes != nil {
		for _, usr := range raw.Includes.Users {
			users[usr.ID] = usr
		}
	}

	posts := make([]model.SocialPost, 0, len(raw.Data))
	for _, p := range raw.Data {
		post := model.SocialPost{
			ID:   p.ID,
			Text: p.Text,
			Metrics: model.SocialMetrics{
				LikeCount:    p.Metrics.LikeCount,
				RetweetCount: p.Metrics.RetweetCount,
				ReplyCount:   p.Metrics.ReplyCount,
			},
		}
		if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			post.CreatedAt = ts
		}
		if author, ok := users[p.AuthorID]; ok {
			post.Author = model.SocialAuthor{
				Name:         author.Name,
				Username:     author.Username,
				ProfileImage: author.ProfileImage,
			}
		}
		posts = append(posts, post)
	}

	return posts, nil
}
