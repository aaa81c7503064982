package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
	"golang.org/x/sync/errgroup"
)

const defaultBookmarkFetchConcurrency = 4

// ListBookmarkedArticles resolves every bookmarked id to its article, keeping bookmark order.
type ListBookmarkedArticles struct {
	Bookmarks   datasources.BookmarkLister
	Fetcher     datasources.ArticleFetcher
	Concurrency int
}

var _ Command[Empty, []domain.Article] = (*ListBookmarkedArticles)(nil)

// Execute skips ids the remote source no longer knows about; any other fetch failure fails the call.
func (c *ListBookmarkedArticles) Execute(ctx context.Context, _ Empty) ([]domain.Article, error) {
	logger := domain.LoggerFromContext(ctx)

	ids, err := c.Bookmarks.ListBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBookmarkFetchConcurrency
	}

	fetched := make([]*domain.Article, len(ids))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(concurrency)
	for i, id := range ids {
		grp.Go(func() error {
			article, err := c.Fetcher.FetchByID(grpCtx, id)
			if errors.Is(err, domain.ErrArticleNotFound) {
				logger.WarnContext(ctx, "bookmarked article no longer available", "article_id", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetching bookmarked article [%s]: %w", id, err)
			}

			bookmarked := true
			article.Bookmarked = &bookmarked
			fetched[i] = &article
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(fetched))
	for _, a := range fetched {
		if a != nil {
			articles = append(articles, *a)
		}
	}
	return articles, nil
}
