package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

const DefaultBaseURL = "https://newsdata.io"

const pubDateLayout = "2006-01-02 15:04:05"

var _ datasources.ArticleSource = (*Client)(nil)

// Client fetches articles from the newsdata.io latest news API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type newsResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Results      json.RawMessage `json:"results"`
	NextPage     string          `json:"nextPage"`
}

type errorResults struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type newsArticle struct {
	ArticleID   string   `json:"article_id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	PubDate     string   `json:"pubDate"`
	ImageURL    *string  `json:"image_url"`
	SourceName  string   `json:"source_name"`
	SourceID    string   `json:"source_id"`
	Category    []string `json:"category"`
}

func (c *Client) FetchTopHeadlines(
	ctx context.Context,
	country, language string,
	pageSize int,
) ([]domain.Article, error) {
	return c.FetchByCategory(ctx, "", country, language, pageSize)
}

// FetchByCategory lists the latest articles, narrowed to category unless it is empty.
func (c *Client) FetchByCategory(
	ctx context.Context,
	category, country, language string,
	pageSize int,
) ([]domain.Article, error) {
	params := url.Values{}
	if country != "" {
		params.Set("country", country)
	}
	if language != "" {
		params.Set("language", language)
	}
	params.Set("image", "1")
	params.Set("removeduplicate", "1")
	if pageSize > 0 {
		params.Set("size", strconv.Itoa(pageSize))
	}
	if category != "" {
		params.Set("category", category)
	}

	return c.fetchNews(ctx, params)
}

func (c *Client) FetchByID(ctx context.Context, id string) (domain.Article, error) {
	if id == "" {
		return domain.Article{}, domain.ErrEmptyArticleID
	}

	params := url.Values{}
	params.Set("id", id)

	articles, err := c.fetchNews(ctx, params)
	if err != nil {
		return domain.Article{}, err
	}
	if len(articles) == 0 {
		return domain.Article{}, fmt.Errorf("%w: [%s]", domain.ErrArticleNotFound, id)
	}

	return articles[0], nil
}

func (c *Client) fetchNews(ctx context.Context, params url.Values) ([]domain.Article, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/api/1/news?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("newsdata API error (status %d): %s", resp.StatusCode, apiErrorMessage(body))
	}

	var result newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if result.Status != "success" {
		var apiErr errorResults
		_ = json.Unmarshal(result.Results, &apiErr)
		return nil, fmt.Errorf("newsdata API error (status %q): %s", result.Status, apiErr.Message)
	}

	var items []newsArticle
	if len(result.Results) > 0 {
		if err := json.Unmarshal(result.Results, &items); err != nil {
			return nil, fmt.Errorf("decoding results: %w", err)
		}
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		a, err := item.toDomain()
		if err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "skipping malformed article", "error", err, "article_id", item.ArticleID)
			continue
		}
		articles = append(articles, a)
	}

	return articles, nil
}

func (a newsArticle) toDomain() (domain.Article, error) {
	if a.ArticleID == "" {
		return domain.Article{}, fmt.Errorf("article has no id")
	}

	var publishedAt time.Time
	if a.PubDate != "" {
		var err error
		publishedAt, err = time.ParseInLocation(pubDateLayout, a.PubDate, time.UTC)
		if err != nil {
			return domain.Article{}, fmt.Errorf("parsing pubDate [%s]: %w", a.PubDate, err)
		}
	}

	sourceName := a.SourceName
	if sourceName == "" {
		sourceName = a.SourceID
	}

	return domain.Article{
		ID:          a.ArticleID,
		Title:       a.Title,
		Link:        a.Link,
		Description: deref(a.Description),
		Content:     deref(a.Content),
		SourceName:  sourceName,
		ImageURL:    deref(a.ImageURL),
		Categories:  a.Category,
		PublishedAt: publishedAt,
	}, nil
}

// apiErrorMessage extracts the message from an error body, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var result struct {
		Results errorResults `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err == nil && result.Results.Message != "" {
		return result.Results.Message
	}
	return string(body)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
