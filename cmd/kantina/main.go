// Entry point for the kantina lunch-menu broker — chi router, document or
// feed source, SQLite audit log, optional MCP stdio transport.
package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/kantina/audit"
	"github.com/hazyhaar/kantina/broker"
)

//go:embed static
var staticFS embed.FS

func main() {
	cfg, err := broker.LoadConfig()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	// Logging.
	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Audit DB.
	if err := os.MkdirAll(filepath.Dir(cfg.AuditDB), 0o755); err != nil {
		slog.Error("audit dir", "error", err)
		os.Exit(1)
	}
	auditDB, err := sql.Open("sqlite", cfg.AuditDB)
	if err != nil {
		slog.Error("audit db", "error", err)
		os.Exit(1)
	}
	defer auditDB.Close()
	if _, err := auditDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		slog.Error("audit db wal", "error", err)
		os.Exit(1)
	}

	auditLogger := audit.NewLogger(auditDB)
	if err := auditLogger.Init(); err != nil {
		slog.Error("audit init", "error", err)
		os.Exit(1)
	}
	defer auditLogger.Close()

	// Broker service.
	svc, err := broker.New(cfg, logger, broker.WithAudit(auditLogger))
	if err != nil {
		slog.Error("broker service", "error", err)
		os.Exit(1)
	}

	// Optional MCP over stdio.
	if cfg.MCPTransport == "stdio" {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "kantina",
			Version: "1.0.0",
		}, nil)
		svc.RegisterMCP(mcpSrv)
		go func() {
			if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				slog.Error("mcp", "error", err)
			}
		}()
	}

	// Router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	svc.Routes(r)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("static/index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})
	r.Handle("/static/*", http.FileServerFS(staticFS))

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		server.Shutdown(shutdownCtx)
	}()

	slog.Info("kantina starting", "listen", cfg.Listen, "source", cfg.Source)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
	slog.Info("kantina stopped")
}
