// Command slack-mcp is the entry point for the Slack MCP server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/auth"
	"github.com/Flxkzy/Slack-MCP/internal/channel"
	"github.com/Flxkzy/Slack-MCP/internal/config"
	"github.com/Flxkzy/Slack-MCP/internal/message"
	"github.com/Flxkzy/Slack-MCP/internal/reaction"
	"github.com/Flxkzy/Slack-MCP/internal/resolve"
	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/team"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/Flxkzy/Slack-MCP/internal/user"
	"github.com/mark3labs/mcp-go/server"
	"github.com/slack-go/slack"
)

const defaultConfigPath = "config.yaml"

func main() {
	logger := log.New(os.Stderr, "slack-mcp: ", log.LstdFlags)

	// 1. Load config.
	cfg := loadConfig(logger)

	// 2. Apply environment variable overrides.
	if err := config.ApplyEnvOverrides(cfg); err != nil {
		logger.Fatalf("failed to apply environment overrides: %v", err)
	}

	// 3. Structured logger for tool handlers.
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))

	// 4. Credential checks. A missing or malformed token is fatal.
	if cfg.Slack.Token == "" {
		logger.Fatal("Slack token is required (set SLACK_BOT_TOKEN or slack.token in config)")
	}
	if !strings.HasPrefix(cfg.Slack.Token, "xox") {
		logger.Fatal("Slack token is malformed: expected an xoxb-/xoxp- style token")
	}

	// 5. Open audit log file if enabled.
	var auditLogger *safety.AuditLogger
	if cfg.Audit.Enabled {
		f, err := os.OpenFile(cfg.Audit.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logger.Printf("warning: could not open audit log %q: %v — audit logging disabled", cfg.Audit.LogPath, err)
		} else {
			auditLogger = safety.NewAuditLogger(f)
			defer func() { _ = f.Close() }()
		}
	}

	// 6. Channel access filter.
	channelFilter := safety.NewFilter(
		cfg.Safety.Channels.Allowlist,
		cfg.Safety.Channels.Denylist,
	)

	// 7. Slack client and resolver.
	api := slack.New(cfg.Slack.Token)
	resolver := resolve.New(api)

	// 8. Verify connectivity and credentials before serving anything.
	authCtx, cancelAuth := context.WithTimeout(context.Background(), 10*time.Second)
	identity, err := api.AuthTestContext(authCtx)
	cancelAuth()
	if err != nil {
		logger.Fatalf("Slack auth test failed: %v", err)
	}
	logger.Printf("authenticated as %s in team %s", identity.User, identity.Team)

	// 9. Build MCP server.
	mcpServer := server.NewMCPServer(
		"slack-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	// 10. Register all tools.
	var registrations []tools.Registration
	registrations = append(registrations,
		message.MessageTools(api, resolver, channelFilter, auditLogger, slogger)...,
	)
	registrations = append(registrations,
		channel.ChannelTools(api, channelFilter, auditLogger, slogger)...,
	)
	registrations = append(registrations,
		user.UserTools(api, resolver, auditLogger, slogger)...,
	)
	registrations = append(registrations,
		reaction.ReactionTools(api, resolver, channelFilter, auditLogger, slogger)...,
	)
	registrations = append(registrations,
		team.TeamTools(api, auditLogger, slogger)...,
	)

	tools.RegisterAll(mcpServer, registrations)

	// 11. Serve in stdio or HTTP mode.
	if useStdio() {
		logger.Println("starting in stdio mode")
		if err := server.ServeStdio(mcpServer, server.WithErrorLogger(logger)); err != nil {
			logger.Printf("stdio server error: %v", err)
		}
	} else {
		httpHandler := server.NewStreamableHTTPServer(mcpServer)
		authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken, slogger)
		wrappedHandler := authMiddleware(httpHandler)

		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           wrappedHandler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		go func() {
			logger.Printf("listening on %s", addr)
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatalf("HTTP server error: %v", err)
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logger.Println("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := httpSrv.Shutdown(ctx); err != nil {
			logger.Printf("HTTP shutdown error: %v", err)
		}
	}

	logger.Println("server stopped")
}

// useStdio returns true if the --stdio flag was passed on the command line.
func useStdio() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--stdio" {
			return true
		}
	}
	return false
}

// loadConfig attempts to read the config file from the path specified by
// SLACKMCP_CONFIG_PATH or the default "config.yaml". If the file cannot be
// read, DefaultConfig is returned.
func loadConfig(logger *log.Logger) *config.Config {
	path := os.Getenv("SLACKMCP_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Printf("could not load config from %q (%v), using defaults", path, err)
		return config.DefaultConfig()
	}

	logger.Printf("loaded config from %q", path)
	return cfg
}
