package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/newspulse/internal/bookmarks"
	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/datasources/memory"
	"github.com/jbeshir/newspulse/internal/datasources/mocks"
	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticleBookmarkToggle_ServeHTTP(t *testing.T) {
	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().FetchByID(mock.Anything, "abc123").Return(domain.Article{ID: "abc123"}, nil)

	controller := ArticleBookmarkToggle{
		Toggler: &command.ToggleBookmark{
			Fetcher:   fetcher,
			Bookmarks: bookmarks.New(memory.NewKeyValueStore()),
		},
	}

	for _, want := range []bool{true, false, true} {
		req := httptest.NewRequest(http.MethodPost, "/v1/articles/abc123/bookmark_toggle", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"article_id": "abc123"})
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var state domain.BookmarkState
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
		assert.Equal(t, domain.BookmarkState{ArticleID: "abc123", Bookmarked: want}, state)
	}
}
