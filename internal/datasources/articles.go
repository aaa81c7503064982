package datasources

import (
	"context"

	"github.com/jbeshir/newspulse/internal/domain"
)

// ArticleSource combines all remote article lookups.
type ArticleSource interface {
	TopHeadlinesFetcher
	CategoryArticlesFetcher
	ArticleFetcher
}

type TopHeadlinesFetcher interface {
	FetchTopHeadlines(ctx context.Context, country, language string, pageSize int) ([]domain.Article, error)
}

type CategoryArticlesFetcher interface {
	FetchByCategory(
		ctx context.Context,
		category, country, language string,
		pageSize int,
	) ([]domain.Article, error)
}

// ArticleFetcher fetches a single article, returning domain.ErrArticleNotFound if the source has no match.
type ArticleFetcher interface {
	FetchByID(ctx context.Context, id string) (domain.Article, error)
}
