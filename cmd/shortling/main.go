package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shortling/shortling/cmd/shortling/ui"
	"github.com/shortling/shortling/pkg/adapters/api"
	"github.com/shortling/shortling/pkg/adapters/credstore"
	"github.com/shortling/shortling/pkg/adapters/repository/sqlite"
	"github.com/shortling/shortling/pkg/config"
	"github.com/shortling/shortling/pkg/core/services"
	"github.com/shortling/shortling/pkg/ports"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shortling",
	Short: "Terminal client for the shortling URL shortener",
	Long: `shortling is a terminal client for a URL-shortening service.

It covers the same ground as the web dashboard: sign in, shorten links,
browse and search your links, and chart clicks over time. Run without
arguments to start the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(shortenCmd, linksCmd, analyticsCmd)
	rootCmd.AddCommand(tuiCmd)
}

// app bundles everything a command needs, wired once per invocation. The
// session store is handed to consumers explicitly; there is no ambient
// global to reach for.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	cache   *sqlite.LinkCache
	session *services.SessionService
	links   *services.LinkService
}

func newApp(notify ports.Notifier) (*app, error) {
	cfg := config.Load()
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	store, err := credstore.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	// The cache is a convenience; a broken cache file must not take the
	// whole client down.
	var linkCache ports.LinkCache
	cache, err := sqlite.NewLinkCache(filepath.Join(cfg.DataDir, "cache.db"))
	if err != nil {
		logger.Warn("link cache unavailable", zap.Error(err))
		cache = nil
	} else {
		linkCache = cache
	}

	gateway := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	session := services.NewSessionService(gateway, store, notify, logger)
	links := services.NewLinkService(gateway, session, linkCache, notify, logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		session: session,
		links:   links,
	}, nil
}

func (a *app) Close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	_ = a.logger.Sync()
}

// newLogger writes to a file under the data dir so log lines never tear up
// the TUI.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logPath := filepath.Join(cfg.DataDir, "shortling.log")
	zcfg.OutputPaths = []string{logPath}
	zcfg.ErrorOutputPaths = []string{logPath}
	return zcfg.Build()
}

func consoleNotifier() *ui.ConsoleNotifier {
	return &ui.ConsoleNotifier{Out: os.Stdout, Styles: ui.DefaultStyles()}
}

func requireAuth(a *app) error {
	if !a.session.Authenticated() {
		return errors.New("not logged in, run 'shortling login' first")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// API failures were already shown as a toast by the services;
		// everything else still needs a line here.
		var apiErr *api.APIError
		if !errors.As(err, &apiErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
