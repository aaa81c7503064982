package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/domain"
)

type ArticlesList struct {
	Lister          command.Command[command.ListArticlesRequest, []domain.Article]
	DefaultPageSize int
	// HeadlinesOnly ignores any category in the query string.
	HeadlinesOnly bool
	CacheMaxAge   time.Duration
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	pageSize, err := parsePageSize(r.URL.Query(), c.DefaultPageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse page size in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var category string
	if !c.HeadlinesOnly {
		category, err = parseCategory(r.URL.Query())
		if err != nil {
			logger.ErrorContext(ctx, "unable to parse category in query string", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	articles, err := c.Lister.Execute(ctx, command.ListArticlesRequest{
		Category: category,
		PageSize: pageSize,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list articles", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, ArticlesListResponse{
		Data:     articles,
		Metadata: ArticlesListMetadata{Category: category},
	})
}
