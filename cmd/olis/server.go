package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/kalambet/olis/internal/api"
	"github.com/kalambet/olis/internal/config"
	"github.com/kalambet/olis/internal/dashboard"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/storage"
	"github.com/kalambet/olis/internal/voice"
)

const shutdownTimeout = 5 * time.Second

var serveMCP bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the olis API server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(serveMCP)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running olis server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

// mcpCmd runs the API server with the MCP tools on stdin/stdout. Both surfaces
// share one set of components, so there is a single writer per data dir.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the olis server with MCP on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(true)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "also serve MCP on stdin/stdout")
}

// app holds the stateful components shared by every surface.
type app struct {
	profiles *profile.Manager
	flow     *onboarding.Controller
	wizard   *voice.Wizard
	dash     *dashboard.Service
}

func newApp(store storage.KeyValue, cfg config.Config) *app {
	profiles := profile.NewManager(store)
	flow := onboarding.NewController(store, profiles, onboarding.Options{
		WelcomeDwell: cfg.Onboarding.WelcomeDwell,
	})
	wizard := voice.NewWizard(store)
	return &app{
		profiles: profiles,
		flow:     flow,
		wizard:   wizard,
		dash:     dashboard.New(store, profiles, flow, wizard),
	}
}

func (a *app) close() {
	a.flow.Close()
}

func (a *app) router(store api.Pinger, cfg config.Config, startedAt time.Time) http.Handler {
	return api.NewRouter(api.Deps{
		Store:          store,
		Onboarding:     a.flow,
		Voice:          a.wizard,
		Dashboard:      a.dash,
		Environment:    cfg.Server.Environment,
		Version:        version,
		StartedAt:      startedAt,
		AllowedOrigins: api.SplitOrigins(cfg.CORS.AllowedOrigins),
		Limiter:        api.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window),
	})
}

// mcpServer exposes the same profile manager and wizard the HTTP routes use.
func (a *app) mcpServer() *server.MCPServer {
	return api.NewMCPServer(api.MCPDeps{
		Profiles: a.profiles,
		Voice:    a.wizard,
		Version:  version,
	})
}

func setupLogging(level string) {
	logLevel := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "olis.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

// runServer serves HTTP until a signal arrives. With withMCP the MCP tools are
// also served on stdin/stdout and the process exits when stdin closes.
func runServer(withMCP bool) error {
	if !withMCP {
		fmt.Fprintf(os.Stderr, "olis version %s\n", version)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.Log.Level)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	if cfg.Server.Environment == "production" {
		addr = fmt.Sprintf(":%d", cfg.Server.Port)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if pid, pidErr := readPIDFile(pidFilePath(cfg.Storage.DataDir)); pidErr == nil {
			printWarning("olis may already be running (PID %d)", pid)
		}
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	if cfg.Server.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConns)
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	if err := writePIDFile(pidPath); err != nil {
		ln.Close()
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		ln.Close()
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}()

	a := newApp(store, cfg)
	defer a.close()

	handler := a.router(store, cfg, time.Now())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("olis listening", "addr", ln.Addr().String(), "environment", cfg.Server.Environment)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	if withMCP {
		stdioSrv := server.NewStdioServer(a.mcpServer())
		g.Go(func() error {
			slog.Info("MCP server started (stdio transport)")
			defer cancel()
			if err := stdioSrv.Listen(gctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("MCP stdio server: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func stopServer() error {
	cfg, err := config.Load()
	if err != nil {
		printError("could not load config: %v", err)
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printError("olis is not running (no PID file)")
		return fmt.Errorf("not running: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		printError("could not find process %d", pid)
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		printError("could not stop olis (PID %d): %v", pid, err)
		removePIDFile(pidPath)
		return err
	}

	printSuccess("Sent stop signal to olis (PID %d)", pid)
	return nil
}
