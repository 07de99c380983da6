// Package mcpserver exposes the conference assistant as an MCP server: the
// conference-details, submit-talk, edit-talk and list-submissions tools and the
// conference-tracks and conference-info resources.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"conferenceassistant/internal/domain"
)

const (
	serverName    = "conference-assistant"
	serverVersion = "1.0.0"

	serverInstructions = "This server is the conference call-for-papers assistant. Use it to read the " +
		"conference details and tracks, and to submit, edit and list talk submissions."
)

// Catalog is the read-only conference catalog the tools and resources are built from.
type Catalog interface {
	Info() domain.ConferenceInfo
	Tracks() []domain.Track
	TrackNames() []string
}

type handlers struct {
	catalog     Catalog
	submissions domain.SubmissionService
	details     domain.ConferenceDetailsFetcher
	logger      *slog.Logger
}

// NewServer builds an MCP server with every tool and resource registered.
func NewServer(catalog Catalog, submissions domain.SubmissionService, details domain.ConferenceDetailsFetcher, logger *slog.Logger) (*mcp.Server, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if submissions == nil {
		return nil, fmt.Errorf("submission service is required")
	}
	if details == nil {
		return nil, fmt.Errorf("conference details fetcher is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})
	h := &handlers{catalog: catalog, submissions: submissions, details: details, logger: logger}
	if err := h.registerTools(server); err != nil {
		return nil, err
	}
	h.registerResources(server)
	return server, nil
}

// SSEHandler serves server over the legacy HTTP+SSE transport.
func SSEHandler(server *mcp.Server) http.Handler {
	return mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

// StreamableHandler serves server over the streamable HTTP transport.
func StreamableHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

// RunStdio serves server on stdin/stdout until ctx is cancelled or the client disconnects.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
