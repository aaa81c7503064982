package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/articles", r.URL.Path)
		assert.Equal(t, "science", r.URL.Query().Get("category"))
		assert.Equal(t, "20", r.URL.Query().Get("page_size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"article_id":"a1","title":"Comet"}],"metadata":{"category":"science"}}`))
	}))
	defer srv.Close()

	articles, err := NewClient(srv.URL+"/").ListArticles(t.Context(), "science", 20)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "a1", articles[0].ID)
	assert.Equal(t, "Comet", articles[0].Title)
}

func TestClient_SetBookmark(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		wantState domain.BookmarkState
		wantErr   error
		anyErr    bool
	}{
		{
			name:      "saved",
			status:    http.StatusOK,
			body:      `{"article_id":"a1","bookmarked":true}`,
			wantState: domain.BookmarkState{ArticleID: "a1", Bookmarked: true},
		},
		{
			name:   "not_saved",
			status: http.StatusInternalServerError,
			body:   `{"article_id":"a1","bookmarked":false,"error":"couldn't save bookmark"}`,
			wantState: domain.BookmarkState{
				ArticleID: "a1",
				Error:     "couldn't save bookmark",
			},
			wantErr: ErrBookmarkNotSaved,
		},
		{
			name:   "unknown_article",
			status: http.StatusNotFound,
			anyErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/articles/a1/bookmark/true", r.URL.Path)

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			state, err := NewClient(srv.URL).SetBookmark(t.Context(), "a1", true)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantState, state)
		})
	}
}

func TestClient_GetHomeFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/feed", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		_, _ = w.Write([]byte(`{"breaking":[{"article_id":"b1"}],"latest":[]}`))
	}))
	defer srv.Close()

	feed, err := NewClient(srv.URL).GetHomeFeed(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Article{{ID: "b1"}}, feed.Breaking)
	assert.Empty(t, feed.Latest)
}
