package controller

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/newspulse/internal/domain"
)

const bookmarkFailedMessage = "couldn't save bookmark"

type bookmarkUpdater func(ctx context.Context, articleID string) (domain.BookmarkState, error)

// handleBookmarkUpdate runs update for the article in the route and reports the persisted state.
// On storage failure the body still carries the state actually stored, so clients can revert.
func handleBookmarkUpdate(w http.ResponseWriter, r *http.Request, update bookmarkUpdater) {
	vars := mux.Vars(r)
	id := vars["article_id"]
	logger := domain.LoggerFromContext(r.Context()).With("article_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	setNoStore(w)

	state, err := update(ctx, id)
	if err != nil {
		status := statusForError(err)
		if status != http.StatusInternalServerError {
			logger.InfoContext(ctx, "bookmark update rejected", "error", err)
			w.WriteHeader(status)
			return
		}

		logger.ErrorContext(ctx, "unable to update bookmark", "error", err)
		state.ArticleID = id
		state.Error = bookmarkFailedMessage
		writeJSON(w, r, http.StatusInternalServerError, state)
		return
	}

	writeJSON(w, r, http.StatusOK, state)
}
