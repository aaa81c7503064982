package controller

import (
	"log/slog"
	"net/http"

	"github.com/jbeshir/newspulse/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
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
