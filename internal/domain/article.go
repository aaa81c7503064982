package domain

import (
	"time"
)

type Article struct {
	ID          string    `json:"article_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	SourceName  string    `json:"source_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	PublishedAt time.Time `json:"published_at"`

	Bookmarked *bool `json:"bookmarked,omitempty"`
}

// HomeFeed is the content of the home screen: a short breaking news strip
// followed by the latest news, optionally narrowed to one category.
type HomeFeed struct {
	Category string    `json:"category,omitempty"`
	Breaking []Article `json:"breaking"`
	Latest   []Article `json:"latest"`
}

// FeedOptions shapes the requests made to the remote article source.
type FeedOptions struct {
	Country          string
	Language         string
	BreakingPageSize int
	LatestPageSize   int
}

// BookmarkState is the persisted bookmark status of one article.
type BookmarkState struct {
	ArticleID  string `json:"article_id"`
	Bookmarked bool   `json:"bookmarked"`
	Error      string `json:"error,omitempty"`
}
