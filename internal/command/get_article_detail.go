package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

// GetArticleDetail fetches one article along with its bookmark status.
type GetArticleDetail struct {
	Fetcher   datasources.ArticleFetcher
	Bookmarks datasources.BookmarkChecker
}

var _ Command[string, domain.Article] = (*GetArticleDetail)(nil)

func (c *GetArticleDetail) Execute(ctx context.Context, articleID string) (domain.Article, error) {
	article, err := c.Fetcher.FetchByID(ctx, articleID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}

	bookmarked, err := c.Bookmarks.IsBookmarked(ctx, article.ID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to read bookmark status", "error", err, "article_id", article.ID)
		return article, nil
	}

	article.Bookmarked = &bookmarked
	return article, nil
}
