package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

// ToggleBookmark flips the bookmark status of an article, like the heart button on the detail page.
type ToggleBookmark struct {
	Fetcher   datasources.ArticleFetcher
	Bookmarks interface {
		datasources.BookmarkChecker
		datasources.BookmarkToggler
	}
}

var _ Command[string, domain.BookmarkState] = (*ToggleBookmark)(nil)

func (c *ToggleBookmark) Execute(ctx context.Context, articleID string) (domain.BookmarkState, error) {
	logger := domain.LoggerFromContext(ctx).With("article_id", articleID)
	ctx = domain.ContextWithLogger(ctx, logger)

	wasBookmarked, err := c.Bookmarks.IsBookmarked(ctx, articleID)
	if err != nil {
		return domain.BookmarkState{ArticleID: articleID}, fmt.Errorf("reading bookmark status: %w", err)
	}
	if !wasBookmarked {
		if _, err := c.Fetcher.FetchByID(ctx, articleID); err != nil {
			return persistedState(ctx, c.Bookmarks, articleID, false), fmt.Errorf("fetching article: %w", err)
		}
	}

	bookmarked, err := c.Bookmarks.ToggleBookmark(ctx, articleID)
	if err != nil {
		return persistedState(ctx, c.Bookmarks, articleID, bookmarked), fmt.Errorf("toggling bookmark: %w", err)
	}

	logger.DebugContext(ctx, "bookmark toggled", "bookmarked", bookmarked)
	return domain.BookmarkState{ArticleID: articleID, Bookmarked: bookmarked}, nil
}
