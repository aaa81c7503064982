package controller

import (
	"net/http"

	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/domain"
)

type ArticleBookmarkToggle struct {
	Toggler command.Command[string, domain.BookmarkState]
}

func (c ArticleBookmarkToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleBookmarkUpdate(w, r, c.Toggler.Execute)
}
