// Package client provides an HTTP client for the NewsPulse API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/newspulse/internal/domain"
)

// ErrBookmarkNotSaved is returned when the API could not persist a bookmark change.
// The accompanying state is what the API reports as actually stored.
var ErrBookmarkNotSaved = errors.New("bookmark not saved")

// ArticlesResponse represents the response for article lists.
type ArticlesResponse struct {
	Data     []domain.Article `json:"data"`
	Metadata struct {
		Category string `json:"category,omitempty"`
	} `json:"metadata"`
}

// Client is an HTTP client for the NewsPulse API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) getArticles(ctx context.Context, path string, params url.Values) ([]domain.Article, error) {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result ArticlesResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetHomeFeed retrieves the breaking and latest news sections, optionally for one category.
func (c *Client) GetHomeFeed(ctx context.Context, category string) (*domain.HomeFeed, error) {
	path := "/v1/feed"
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var feed domain.HomeFeed
	if err := c.handleResponse(resp, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// ListArticles retrieves the latest articles, optionally narrowed to a category.
func (c *Client) ListArticles(ctx context.Context, category string, pageSize int) ([]domain.Article, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}

	return c.getArticles(ctx, "/v1/articles", params)
}

// GetArticle retrieves a single article with its bookmark status.
func (c *Client) GetArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/articles/"+url.PathEscape(articleID))
	if err != nil {
		return nil, err
	}

	var article domain.Article
	if err := c.handleResponse(resp, &article); err != nil {
		return nil, err
	}

	return &article, nil
}

// ListBookmarks retrieves the bookmarked articles in the order they were saved.
func (c *Client) ListBookmarks(ctx context.Context) ([]domain.Article, error) {
	return c.getArticles(ctx, "/v1/bookmarks", nil)
}

// SetBookmark bookmarks or unbookmarks an article.
func (c *Client) SetBookmark(ctx context.Context, articleID string, bookmarked bool) (domain.BookmarkState, error) {
	path := fmt.Sprintf("/v1/articles/%s/bookmark/%t", url.PathEscape(articleID), bookmarked)
	return c.postBookmark(ctx, path)
}

// ToggleBookmark flips the bookmark status of an article.
func (c *Client) ToggleBookmark(ctx context.Context, articleID string) (domain.BookmarkState, error) {
	path := fmt.Sprintf("/v1/articles/%s/bookmark_toggle", url.PathEscape(articleID))
	return c.postBookmark(ctx, path)
}

func (c *Client) postBookmark(ctx context.Context, path string) (domain.BookmarkState, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return domain.BookmarkState{}, err
	}

	if resp.StatusCode == http.StatusInternalServerError {
		defer func() { _ = resp.Body.Close() }()

		var state domain.BookmarkState
		if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
			return domain.BookmarkState{}, fmt.Errorf("API error (status %d)", resp.StatusCode)
		}
		return state, fmt.Errorf("%w: %s", ErrBookmarkNotSaved, state.Error)
	}

	var state domain.BookmarkState
	if err := c.handleResponse(resp, &state); err != nil {
		return domain.BookmarkState{}, err
	}

	return state, nil
}
