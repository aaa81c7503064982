package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

type ListArticlesRequest struct {
	Category string
	PageSize int
}

// ListArticles lists top headlines, or the latest articles of one category when one is given.
type ListArticles struct {
	Headlines  datasources.TopHeadlinesFetcher
	ByCategory datasources.CategoryArticlesFetcher
	Options    domain.FeedOptions
}

var _ Command[ListArticlesRequest, []domain.Article] = (*ListArticles)(nil)

func (c *ListArticles) Execute(ctx context.Context, req ListArticlesRequest) ([]domain.Article, error) {
	var (
		articles []domain.Article
		err      error
	)
	if req.Category == "" {
		articles, err = c.Headlines.FetchTopHeadlines(ctx, c.Options.Country, c.Options.Language, req.PageSize)
	} else {
		articles, err = c.ByCategory.FetchByCategory(
			ctx, req.Category, c.Options.Country, c.Options.Language, req.PageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching articles: %w", err)
	}

	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}
