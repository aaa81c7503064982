package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/domain"
)

type HomeFeedGet struct {
	Loader      command.Command[command.LoadHomeFeedRequest, domain.HomeFeed]
	CacheMaxAge time.Duration
}

func (c HomeFeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	category, err := parseCategory(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse category in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	feed, err := c.Loader.Execute(ctx, command.LoadHomeFeedRequest{Category: category})
	if err != nil {
		logger.ErrorContext(ctx, "unable to load home feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, feed)
}
