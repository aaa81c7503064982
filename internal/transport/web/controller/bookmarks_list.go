package controller

import (
	"net/http"

	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

type BookmarksList struct {
	Lister command.Command[command.Empty, []domain.Article]
}

func (c BookmarksList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := c.Lister.Execute(ctx, command.Empty{})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list bookmarked articles", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	setNoStore(w)
	writeJSON(w, r, http.StatusOK, ArticlesListResponse{Data: articles})
}

type BookmarkIDsList struct {
	Lister datasources.BookmarkLister
}

type BookmarkIDsListResponse struct {
	Data []string `json:"data"`
}

func (c BookmarkIDsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids, err := c.Lister.ListBookmarks(ctx)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list bookmarks", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	setNoStore(w)
	writeJSON(w, r, http.StatusOK, BookmarkIDsListResponse{Data: ids})
}
