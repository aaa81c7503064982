package newsdata

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoArticlesBody = `{
	"status": "success",
	"totalResults": 2,
	"results": [
		{
			"article_id": "abc123",
			"title": "Flooding closes highway",
			"link": "https://example.com/flooding",
			"description": "Heavy rain overnight.",
			"content": "Full text.",
			"pubDate": "2024-04-27 11:13:06",
			"image_url": "https://example.com/flooding.jpg",
			"source_id": "example",
			"source_name": "Example News",
			"category": ["top", "environment"]
		},
		{
			"article_id": "def456",
			"title": "Markets rally",
			"link": "https://example.com/markets",
			"description": null,
			"content": null,
			"pubDate": "2024-04-27 16:04:46",
			"image_url": null,
			"source_id": "wire",
			"source_name": "",
			"category": ["business"]
		}
	],
	"nextPage": "1714234567"
}`

func testContext(t *testing.T) context.Context {
	return domain.ContextWithLogger(t.Context(), slog.New(slog.DiscardHandler))
}

func TestClient_FetchByCategory(t *testing.T) {
	cases := []struct {
		name       string
		category   string
		wantParams url.Values
	}{
		{
			name:     "top_headlines",
			category: "",
			wantParams: url.Values{
				"apikey":          {"test-key"},
				"country":         {"af"},
				"language":        {"en"},
				"image":           {"1"},
				"removeduplicate": {"1"},
				"size":            {"5"},
			},
		},
		{
			name:     "category",
			category: "sports",
			wantParams: url.Values{
				"apikey":          {"test-key"},
				"country":         {"af"},
				"language":        {"en"},
				"image":           {"1"},
				"removeduplicate": {"1"},
				"size":            {"5"},
				"category":        {"sports"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotParams url.Values
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/1/news", r.URL.Path)
				gotParams = r.URL.Query()
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(twoArticlesBody))
			}))
			defer srv.Close()

			sut := NewClient(srv.URL+"/", "test-key")
			articles, err := sut.FetchByCategory(testContext(t), tc.category, "af", "en", 5)
			require.NoError(t, err)
			assert.Equal(t, tc.wantParams, gotParams)

			assert.Equal(t, []domain.Article{
				{
					ID:          "abc123",
					Title:       "Flooding closes highway",
					Link:        "https://example.com/flooding",
					Description: "Heavy rain overnight.",
					Content:     "Full text.",
					SourceName:  "Example News",
					ImageURL:    "https://example.com/flooding.jpg",
					Categories:  []string{"top", "environment"},
					PublishedAt: time.Date(2024, 4, 27, 11, 13, 6, 0, time.UTC),
				},
				{
					ID:          "def456",
					Title:       "Markets rally",
					Link:        "https://example.com/markets",
					SourceName:  "wire",
					Categories:  []string{"business"},
					PublishedAt: time.Date(2024, 4, 27, 16, 4, 46, 0, time.UTC),
				},
			}, articles)
		})
	}
}

func TestClient_FetchTopHeadlines(t *testing.T) {
	var gotParams url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	}))
	defer srv.Close()

	sut := NewClient(srv.URL, "test-key")
	articles, err := sut.FetchTopHeadlines(testContext(t), "af", "en", 10)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Equal(t, "10", gotParams.Get("size"))
	assert.False(t, gotParams.Has("category"))
}

func TestClient_FetchByID(t *testing.T) {
	cases := []struct {
		name       string
		id         string
		body       string
		status     int
		wantID     string
		wantErrIs  error
		wantErrMsg string
	}{
		{
			name:   "found",
			id:     "abc123",
			body:   twoArticlesBody,
			status: http.StatusOK,
			wantID: "abc123",
		},
		{
			name:      "not_found",
			id:        "missing",
			body:      `{"status":"success","totalResults":0,"results":[]}`,
			status:    http.StatusOK,
			wantErrIs: domain.ErrArticleNotFound,
		},
		{
			name:       "api_error_status",
			id:         "abc123",
			body:       `{"status":"error","results":{"message":"API key invalid","code":"Unauthorized"}}`,
			status:     http.StatusUnauthorized,
			wantErrMsg: "API key invalid",
		},
		{
			name:       "api_error_in_body",
			id:         "abc123",
			body:       `{"status":"error","results":{"message":"Rate limit exceeded","code":"RateLimitExceeded"}}`,
			status:     http.StatusOK,
			wantErrMsg: "Rate limit exceeded",
		},
		{
			name:       "undecodable_body",
			id:         "abc123",
			body:       `<html>`,
			status:     http.StatusOK,
			wantErrMsg: "decoding response",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotParams url.Values
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotParams = r.URL.Query()
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			sut := NewClient(srv.URL, "test-key")
			article, err := sut.FetchByID(testContext(t), tc.id)

			assert.Equal(t, url.Values{"apikey": {"test-key"}, "id": {tc.id}}, gotParams)

			switch {
			case tc.wantErrIs != nil:
				assert.ErrorIs(t, err, tc.wantErrIs)
			case tc.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, article.ID)
			}
		})
	}
}

func TestClient_FetchByID_EmptyID(t *testing.T) {
	sut := NewClient("http://127.0.0.1:0", "test-key")
	_, err := sut.FetchByID(testContext(t), "")
	assert.ErrorIs(t, err, domain.ErrEmptyArticleID)
}

func TestClient_SkipsMalformedArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","results":[
			{"article_id":"", "title":"no id"},
			{"article_id":"bad-date", "pubDate":"yesterday"},
			{"article_id":"ok", "title":"fine", "pubDate":"2024-01-02 03:04:05"}
		]}`))
	}))
	defer srv.Close()

	sut := NewClient(srv.URL, "test-key")
	articles, err := sut.FetchTopHeadlines(testContext(t), "", "", 0)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "ok", articles[0].ID)
}
