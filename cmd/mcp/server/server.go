// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// API is the subset of the NewsPulse API the tools call.
type API interface {
	GetHomeFeed(ctx context.Context, category string) (*domain.HomeFeed, error)
	ListArticles(ctx context.Context, category string, pageSize int) ([]domain.Article, error)
	GetArticle(ctx context.Context, articleID string) (*domain.Article, error)
	ListBookmarks(ctx context.Context) ([]domain.Article, error)
	SetBookmark(ctx context.Context, articleID string, bookmarked bool) (domain.BookmarkState, error)
	ToggleBookmark(ctx context.Context, articleID string) (domain.BookmarkState, error)
}

// Server is the MCP server for NewsPulse.
type Server struct {
	client    API
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient API) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"newspulse",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_home_feed",
		mcp.WithDescription(
			"Get the NewsPulse home feed: a short strip of breaking news followed by the latest news. "+
				"Each article carries an article_id usable with the other tools."),
		mcp.WithString("category",
			mcp.Description("Optional category for the latest news section, e.g. 'science', 'sports'"),
		),
	), s.handleGetHomeFeed)

	s.mcpServer.AddTool(mcp.NewTool("list_articles",
		mcp.WithDescription("List the latest news articles, newest first, optionally narrowed to a category."),
		mcp.WithString("category",
			mcp.Description(
				"Category to list: business, entertainment, environment, food, health, politics, "+
					"science, sports, technology, top, tourism or world"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of articles to return (default: 10, max: 50)"),
		),
	), s.handleListArticles)

	s.mcpServer.AddTool(mcp.NewTool("get_article",
		mcp.WithDescription("Get full details of a specific article, including whether it is bookmarked."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The article_id of the article to retrieve"),
		),
	), s.handleGetArticle)

	s.mcpServer.AddTool(mcp.NewTool("list_bookmarks",
		mcp.WithDescription("List bookmarked articles in the order they were saved."),
	), s.handleListBookmarks)

	s.mcpServer.AddTool(mcp.NewTool("set_bookmark",
		mcp.WithDescription("Bookmark or unbookmark an article."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The article_id of the article"),
		),
		mcp.WithBoolean("bookmarked",
			mcp.Required(),
			mcp.Description("Whether the article should be bookmarked (true) or not (false)"),
		),
	), s.handleSetBookmark)

	s.mcpServer.AddTool(mcp.NewTool("toggle_bookmark",
		mcp.WithDescription("Flip the bookmark status of an article and report the new status."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The article_id of the article"),
		),
	), s.handleToggleBookmark)
}
