package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/model"
)

// socialPostLimit caps one feed page. The provider caps recent search at
// 100; ten is plenty for a sidebar feed.
const socialPostLimit = 10

// SocialFeedResponse is one page of recent posts for the configured query.
type SocialFeedResponse struct {
	Query       string             `json:"query"`
	Posts       []model.SocialPost `json:"posts"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

// ErrSocialDisabled signals that no social provider was wired.
var ErrSocialDisabled = errors.New("social provider not configured")

// SocialFeed searches recent posts for the configured query.
func (s *Service) SocialFeed(ctx context.Context) (*SocialFeedResponse, error) {
	if s.social == nil {
		return nil, ErrSocialDisabled
	}

	posts, err := s.social.Search(ctx, s.config.SocialQuery, socialPostLimit)
	if err != nil {
		return nil, fmt.Errorf("social feed: %w", err)
	}
	if posts == nil {
		posts = []model.SocialPost{}
	}

	return &SocialFeedResponse{
		Query:       s.config.SocialQuery,
		Posts:       posts,
		LastUpdated: s.now(),
	}, nil
}
