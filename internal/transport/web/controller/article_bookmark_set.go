package controller

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/domain"
)

type ArticleBookmarkSet struct {
	Setter command.Command[command.SetBookmarkRequest, domain.BookmarkState]
}

func (c ArticleBookmarkSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var bookmarked bool
	switch vars["bookmarked"] {
	case boolTrue:
		bookmarked = true
	case boolFalse:
		bookmarked = false
	default:
		logger := domain.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "invalid bookmark status", "bookmarked", vars["bookmarked"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	handleBookmarkUpdate(w, r, func(ctx context.Context, articleID string) (domain.BookmarkState, error) {
		return c.Setter.Execute(ctx, command.SetBookmarkRequest{
			ArticleID:  articleID,
			Bookmarked: bookmarked,
		})
	})
}
