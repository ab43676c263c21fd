package feed

import feedcore "github.com/quantum5ocial/server/internal/feed"

// response payload for the personalized feed
type FeedResponse struct {
	PostIDs []string      `json:"post_ids"`
	Meta    feedcore.Meta `json:"meta"`
}
