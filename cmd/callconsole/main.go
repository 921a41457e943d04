package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/logger"
	"github.com/dialdesk/callconsole/internal/session"
	"github.com/dialdesk/callconsole/internal/ui"
	"github.com/dialdesk/callconsole/internal/ui/config"
	"github.com/dialdesk/callconsole/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "callconsole",
		Short: "Call-center management console",
		Long:  `Dashboard server for campaign tracking, contact upload, recordings and collections reporting over the dialdesk API`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env is optional - real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return err
	}

	serverLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverLogger.Info("starting console server",
		slog.String("version", version.Get().Version),
		slog.String("environment", cfg.Environment),
	)
	serverLogger.Info("using dialdesk API", slog.String("base_url", cfg.APIBaseURL))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, cleanup, err := newSessionStore(ctx, cfg, serverLogger)
	if err != nil {
		serverLogger.Error("failed to set up session store", slog.String("error", err.Error()))
		return err
	}
	defer cleanup()

	apiClient := client.NewClient(cfg.APIBaseURL,
		client.WithSessionStore(sessions),
		client.WithLogger(serverLogger),
		client.WithOnSessionExpired(func() {
			serverLogger.Info("session expired, console logged out")
		}),
	)

	server, err := ui.NewServer(cfg, serverLogger, apiClient)
	if err != nil {
		serverLogger.Error("failed to create console server", slog.String("error", err.Error()))
		return err
	}

	if err := server.Start(ctx); err != nil {
		serverLogger.Error("console server error", slog.String("error", err.Error()))
		return err
	}

	serverLogger.Info("console server shutdown complete")
	return nil
}

// newSessionStore picks the session backend: Postgres when DATABASE_URL is
// set (any console instance can then serve the deployment), in-memory
// otherwise.
func newSessionStore(ctx context.Context, cfg *config.Config, serverLogger *slog.Logger) (session.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return session.NewMemoryStore(), func() {}, nil
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if cfg.Environment == "prod" {
		poolConfig.MaxConns = 8
		poolConfig.MinConns = 2
		poolConfig.MaxConnLifetime = 30 * time.Minute
		poolConfig.MaxConnIdleTime = 5 * time.Minute
		poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("error pinging database via pool: %w", err)
	}

	if err := session.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	serverLogger.Info("session store backed by PostgreSQL")

	return session.NewPostgresStore(pool, "console"), pool.Close, nil
}
