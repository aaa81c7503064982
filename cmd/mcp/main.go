// Package main provides the entry point for the NewsPulse MCP server.
//
// The server lets AI agents read the news feed and manage bookmarks through
// a running NewsPulse API.
//
// Configuration:
//
//	NEWSPULSE_API_URL - Base URL of the API (default: http://localhost:8080)
package main

import (
	"log"
	"os"

	"github.com/jbeshir/newspulse/cmd/mcp/client"
	"github.com/jbeshir/newspulse/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("NEWSPULSE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	srv := server.NewServer(client.NewClient(apiURL))

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
