package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/domain"
)

type ArticleGet struct {
	Getter command.Command[string, domain.Article]
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["article_id"]
	logger := domain.LoggerFromContext(r.Context()).With("article_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	article, err := c.Getter.Execute(ctx, id)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to fetch article", "error", err)
		} else {
			logger.InfoContext(ctx, "article lookup rejected", "error", err)
		}
		w.WriteHeader(status)
		return
	}

	// The bookmark flag is local state, so this must never be served from a cache.
	setNoStore(w)
	writeJSON(w, r, http.StatusOK, article)
}
