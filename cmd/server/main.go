package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"conferenceassistant/config"
	_ "conferenceassistant/docs"
	"conferenceassistant/internal/app"
)

// @title Conference Assistant API
// @version 1.0
// @description HTTP surface of the conference assistant: CSV export of talk submissions and health probe. Tools and resources are served over MCP at /sse and /mcp.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	transport := flag.String("transport", app.TransportHTTP, "Transport type: http or stdio")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP stream on stdio transport.
	var logOut io.Writer = os.Stdout
	if *transport == app.TransportStdio {
		logOut = os.Stderr
	}
	logger := config.NewLogger(cfg, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, *transport, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
