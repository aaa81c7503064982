package command

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jbeshir/newspulse/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext(t *testing.T) context.Context {
	return domain.ContextWithLogger(t.Context(), testLogger())
}

func testFeedOptions() domain.FeedOptions {
	return domain.FeedOptions{
		Country:          "af",
		Language:         "en",
		BreakingPageSize: 5,
		LatestPageSize:   10,
	}
}

func boolPtr(b bool) *bool {
	return &b
}
