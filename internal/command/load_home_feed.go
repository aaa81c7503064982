package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
	"golang.org/x/sync/errgroup"
)

type LoadHomeFeedRequest struct {
	// Category narrows the latest news section. Empty means all categories.
	Category string
}

// LoadHomeFeed fetches the breaking news strip and the latest news list in parallel.
type LoadHomeFeed struct {
	Headlines  datasources.TopHeadlinesFetcher
	ByCategory datasources.CategoryArticlesFetcher
	Options    domain.FeedOptions
}

var _ Command[LoadHomeFeedRequest, domain.HomeFeed] = (*LoadHomeFeed)(nil)

func NewLoadHomeFeed(
	headlines datasources.TopHeadlinesFetcher,
	byCategory datasources.CategoryArticlesFetcher,
	options domain.FeedOptions,
) *LoadHomeFeed {
	return &LoadHomeFeed{
		Headlines:  headlines,
		ByCategory: byCategory,
		Options:    options,
	}
}

// Execute returns the feed. A breaking news failure only empties that section;
// a latest news failure fails the whole call.
func (c *LoadHomeFeed) Execute(ctx context.Context, req LoadHomeFeedRequest) (domain.HomeFeed, error) {
	logger := domain.LoggerFromContext(ctx)

	feed := domain.HomeFeed{
		Category: req.Category,
		Breaking: []domain.Article{},
		Latest:   []domain.Article{},
	}

	grp, grpCtx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		breaking, err := c.Headlines.FetchTopHeadlines(
			grpCtx, c.Options.Country, c.Options.Language, c.Options.BreakingPageSize)
		if err != nil {
			logger.WarnContext(ctx, "unable to fetch breaking news, leaving section empty", "error", err)
			return nil
		}
		if breaking != nil {
			feed.Breaking = breaking
		}
		return nil
	})

	grp.Go(func() error {
		latest, err := c.ByCategory.FetchByCategory(
			grpCtx, req.Category, c.Options.Country, c.Options.Language, c.Options.LatestPageSize)
		if err != nil {
			return fmt.Errorf("fetching latest news: %w", err)
		}
		if latest != nil {
			feed.Latest = latest
		}
		return nil
	})

	if err := grp.Wait(); err != nil {
		return domain.HomeFeed{}, err
	}

	return feed, nil
}
