package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

func (s *Server) handleGetHomeFeed(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	category, err := parseCategory(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	feed, err := s.client.GetHomeFeed(ctx, category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get home feed: %v", err)), nil
	}

	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format home feed: %v", err)), nil
	}

	msg := fmt.Sprintf("Home feed with %d breaking and %d latest article(s):\n\n%s",
		len(feed.Breaking), len(feed.Latest), string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleListArticles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	category, err := parseCategory(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pageSize := defaultPageSize
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), maxPageSize)
	}

	articles, err := s.client.ListArticles(ctx, category, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list articles: %v", err)), nil
	}

	return formatArticlesResult(articles)
}

func (s *Server) handleGetArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articleID, ok := request.Params.Arguments["article_id"].(string)
	if !ok || articleID == "" {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	article, err := s.client.GetArticle(ctx, articleID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get article: %v", err)), nil
	}

	return formatArticleResult(article)
}

func (s *Server) handleListBookmarks(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articles, err := s.client.ListBookmarks(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list bookmarks: %v", err)), nil
	}

	return formatArticlesResult(articles)
}

func (s *Server) handleSetBookmark(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	articleID, ok := args["article_id"].(string)
	if !ok || articleID == "" {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	bookmarked, ok := args["bookmarked"].(bool)
	if !ok {
		return mcp.NewToolResultError("bookmarked is required (true or false)"), nil
	}

	state, err := s.client.SetBookmark(ctx, articleID, bookmarked)
	if err != nil {
		return bookmarkErrorResult(state, err), nil
	}

	return mcp.NewToolResultText(describeBookmarkState(state)), nil
}

func (s *Server) handleToggleBookmark(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articleID, ok := request.Params.Arguments["article_id"].(string)
	if !ok || articleID == "" {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	state, err := s.client.ToggleBookmark(ctx, articleID)
	if err != nil {
		return bookmarkErrorResult(state, err), nil
	}

	return mcp.NewToolResultText(describeBookmarkState(state)), nil
}

func parseCategory(args map[string]any) (string, error) {
	category, _ := args["category"].(string)
	if category != "" && !domain.IsValidCategory(category) {
		return "", fmt.Errorf("unknown category [%s]", category)
	}
	return category, nil
}

func describeBookmarkState(state domain.BookmarkState) string {
	if state.Bookmarked {
		return fmt.Sprintf("Article %s is bookmarked", state.ArticleID)
	}
	return fmt.Sprintf("Article %s is not bookmarked", state.ArticleID)
}

func bookmarkErrorResult(state domain.BookmarkState, err error) *mcp.CallToolResult {
	msg := fmt.Sprintf("failed to update bookmark: %v", err)
	if state.ArticleID != "" {
		msg += ". " + describeBookmarkState(state)
	}
	return mcp.NewToolResultError(msg)
}

func formatArticlesResult(articles []domain.Article) (*mcp.CallToolResult, error) {
	if len(articles) == 0 {
		return mcp.NewToolResultText("No articles found."), nil
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format articles: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d article(s):\n\n%s", len(articles), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatArticleResult(article *domain.Article) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format article: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
