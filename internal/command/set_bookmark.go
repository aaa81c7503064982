package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

type SetBookmarkRequest struct {
	ArticleID  string
	Bookmarked bool
}

// SetBookmark adds or removes a bookmark. Adding requires an article the remote source knows about.
type SetBookmark struct {
	Fetcher   datasources.ArticleFetcher
	Bookmarks interface {
		datasources.BookmarkChecker
		datasources.BookmarkAdder
		datasources.BookmarkRemover
	}
}

var _ Command[SetBookmarkRequest, domain.BookmarkState] = (*SetBookmark)(nil)

// Execute returns the persisted state. If the write fails, the returned state is
// re-read from storage so the caller can revert its view to match it.
func (c *SetBookmark) Execute(ctx context.Context, req SetBookmarkRequest) (domain.BookmarkState, error) {
	logger := domain.LoggerFromContext(ctx).With("article_id", req.ArticleID)
	ctx = domain.ContextWithLogger(ctx, logger)

	var err error
	if req.Bookmarked {
		// Only new bookmarks need a live article; removal must work for ids the source has dropped.
		if _, err := c.Fetcher.FetchByID(ctx, req.ArticleID); err != nil {
			return persistedState(ctx, c.Bookmarks, req.ArticleID, false), fmt.Errorf("fetching article: %w", err)
		}
		err = c.Bookmarks.AddBookmark(ctx, req.ArticleID)
	} else {
		err = c.Bookmarks.RemoveBookmark(ctx, req.ArticleID)
	}
	if err != nil {
		return persistedState(ctx, c.Bookmarks, req.ArticleID, !req.Bookmarked),
			fmt.Errorf("setting bookmark: %w", err)
	}

	logger.DebugContext(ctx, "bookmark set", "bookmarked", req.Bookmarked)
	return domain.BookmarkState{ArticleID: req.ArticleID, Bookmarked: req.Bookmarked}, nil
}

// persistedState reads back the bookmark status after a failed write, falling
// back to fallback when storage cannot be read either.
func persistedState(
	ctx context.Context,
	checker datasources.BookmarkChecker,
	articleID string,
	fallback bool,
) domain.BookmarkState {
	bookmarked, err := checker.IsBookmarked(ctx, articleID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to read back bookmark status", "error", err)
		bookmarked = fallback
	}
	return domain.BookmarkState{ArticleID: articleID, Bookmarked: bookmarked}
}
