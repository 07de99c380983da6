package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferenceassistant/internal/delivery/http/controllers"
	"conferenceassistant/internal/delivery/http/middleware"
)

// MCPHandlers are the two HTTP transports of the MCP server.
type MCPHandlers struct {
	SSE        http.Handler
	Streamable http.Handler
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(exportController *controllers.ExportController, requireExport func(http.HandlerFunc) http.HandlerFunc, mcp MCPHandlers) *http.ServeMux {
	mux := http.NewServeMux()

	// CSV export
	mux.HandleFunc("GET /listall", requireExport(exportController.ListAll))

	// MCP
	mux.Handle("/sse", mcp.SSE)
	mux.Handle("/sse/", mcp.SSE)
	mux.Handle("/mcp", mcp.Streamable)

	mux.HandleFunc("GET /healthz", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", controllers.NotFound)

	return mux
}

// NewHandler wraps router with request ID, logging and CORS middleware, outermost first.
func NewHandler(router http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, router)))
}
