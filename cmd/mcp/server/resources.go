package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const articleURIPrefix = "article://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			articleURIPrefix+"{article_id}",
			"Individual NewsPulse article",
			mcp.WithTemplateDescription(
				"Fetch a specific article by its article_id, including title, link, "+
					"source, publication date and bookmark status."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleArticleResource,
	)
}

func (s *Server) handleArticleResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, articleURIPrefix) {
		return nil, fmt.Errorf("invalid article URI format: %s", uri)
	}

	articleID := strings.TrimPrefix(uri, articleURIPrefix)
	if articleID == "" {
		return nil, fmt.Errorf("missing article_id in URI: %s", uri)
	}

	article, err := s.client.GetArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", articleID, err)
	}

	data, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
