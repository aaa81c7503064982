package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/newspulse/internal/bookmarks"
	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/datasources/memory"
	"github.com/jbeshir/newspulse/internal/datasources/mocks"
	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookmarkedStore(t *testing.T, record string) *bookmarks.Store {
	kv := memory.NewKeyValueStore()
	if record != "" {
		require.NoError(t, kv.Set(t.Context(), bookmarks.StorageKey, record))
	}
	return bookmarks.New(kv)
}

func TestBookmarksList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().
		FetchByID(mock.Anything, "b").
		Return(domain.Article{ID: "b", Title: "B", PublishedAt: testTime}, nil)
	fetcher.EXPECT().
		FetchByID(mock.Anything, "a").
		Return(domain.Article{ID: "a", Title: "A", PublishedAt: testTime}, nil)

	controller := BookmarksList{
		Lister: &command.ListBookmarkedArticles{
			Bookmarks: bookmarkedStore(t, `["b","a"]`),
			Fetcher:   fetcher,
		},
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/bookmarks", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ArticlesListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []domain.Article{
		{ID: "b", Title: "B", PublishedAt: testTime, Bookmarked: boolPtr(true)},
		{ID: "a", Title: "A", PublishedAt: testTime, Bookmarked: boolPtr(true)},
	}, resp.Data)
}

func TestBookmarkIDsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		store      func(t *testing.T) *bookmarks.Store
		wantStatus int
		wantIDs    []string
	}{
		{
			name: "empty",
			store: func(t *testing.T) *bookmarks.Store {
				return bookmarkedStore(t, "")
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name: "stored_order",
			store: func(t *testing.T) *bookmarks.Store {
				return bookmarkedStore(t, `["z","a"]`)
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"z", "a"},
		},
		{
			name: "storage_failure",
			store: func(t *testing.T) *bookmarks.Store {
				kv := mocks.NewMockKeyValueStore(t)
				kv.EXPECT().Get(mock.Anything, bookmarks.StorageKey).Return("", false, errors.New("disk unavailable"))
				return bookmarks.New(kv)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := BookmarkIDsList{Lister: tc.store(t)}

			req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/bookmarks/ids", nil))
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var resp BookmarkIDsListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantIDs, resp.Data)
			}
		})
	}
}

func TestBookmarksRSS_ServeHTTP(t *testing.T) {
	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().
		FetchByID(mock.Anything, "abc123").
		Return(domain.Article{
			ID:          "abc123",
			Title:       "Flooding closes highway",
			Link:        "https://example.com/flooding",
			Description: "Heavy rain overnight.",
			SourceName:  "Example News",
			PublishedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
		}, nil)

	controller := BookmarksRSS{
		FeedHostname:    "https://newspulse.example.com",
		FeedPath:        "/rss/bookmarks",
		FeedAuthorName:  "NewsPulse",
		FeedAuthorEmail: "feeds@newspulse.example.com",
		Lister: &command.ListBookmarkedArticles{
			Bookmarks: bookmarkedStore(t, `["abc123"]`),
			Fetcher:   fetcher,
		},
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/rss/bookmarks", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "<title>NewsPulse Bookmarks</title>"))
	assert.True(t, strings.Contains(body, "Flooding closes highway"))
	assert.True(t, strings.Contains(body, "https://example.com/flooding"))
}
