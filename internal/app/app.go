// Package app wires configuration, storage, services and transports into a runnable
// conference assistant.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"conferenceassistant/config"
	"conferenceassistant/internal/adapters/auth"
	conferenceclient "conferenceassistant/internal/adapters/conference"
	"conferenceassistant/internal/adapters/email"
	"conferenceassistant/internal/conference"
	delivery "conferenceassistant/internal/delivery/http"
	"conferenceassistant/internal/delivery/http/controllers"
	"conferenceassistant/internal/delivery/http/middleware"
	"conferenceassistant/internal/delivery/mcpserver"
	"conferenceassistant/internal/domain"
	"conferenceassistant/internal/repository/kv"
	"conferenceassistant/internal/services"
)

// Transports accepted by Run.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

const shutdownTimeout = 10 * time.Second

// App holds the assembled server.
type App struct {
	MCP     *mcp.Server
	Handler http.Handler
}

// New assembles an App from cfg using store. The caller keeps ownership of store.
func New(cfg *config.Config, store domain.KVStore, logger *slog.Logger) (*App, error) {
	catalog, err := conference.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	repo := kv.NewSubmissionRepository(store, logger)
	submissions := services.NewSubmissionService(repo, catalog, services.NewIDGenerator(nil), emailService, logger,
		catalog.Info().Title, cfg.RequestTimeout)

	details := conferenceclient.NewHTTPFetcher(&http.Client{Timeout: cfg.HTTPClientTimeout}, cfg.ConferenceDetailsURL)

	server, err := mcpserver.NewServer(catalog, submissions, details, logger)
	if err != nil {
		return nil, fmt.Errorf("create mcp server: %w", err)
	}

	secrets := auth.NewSecretVerifier(auth.NewStaticSecretProvider(cfg.ExportSecret), cfg.ExportSecretHash)
	var tokens domain.ExportTokenVerifier
	if cfg.ExportSecret != "" {
		tokens = auth.NewExportTokenVerifier(cfg.ExportSecret)
	}
	if cfg.ExportSecret == "" && cfg.ExportSecretHash == "" {
		logger.Warn("EXPORT_SECRET is not set; /listall rejects every request")
	}

	router := delivery.NewRouter(
		controllers.NewExportController(logger, submissions),
		middleware.RequireExportAccess(secrets, tokens, logger),
		delivery.MCPHandlers{
			SSE:        mcpserver.SSEHandler(server),
			Streamable: mcpserver.StreamableHandler(server),
		},
	)

	return &App{
		MCP:     server,
		Handler: delivery.NewHandler(router, logger, cfg.AllowedOrigins),
	}, nil
}

// Run opens the configured store, builds the App and serves it on transport until ctx is
// cancelled.
func Run(ctx context.Context, cfg *config.Config, transport string, logger *slog.Logger) error {
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close store", "err", err)
		}
	}()
	logger.Info("store opened", "driver", cfg.StoreDriver)

	a, err := New(cfg, store, logger)
	if err != nil {
		return err
	}

	switch transport {
	case TransportStdio:
		logger.Info("serving MCP on stdio")
		return mcpserver.RunStdio(ctx, a.MCP)
	case TransportHTTP, "":
		return serveHTTP(ctx, ":"+cfg.Port, a.Handler, logger)
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
