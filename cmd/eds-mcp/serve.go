//go:build fts5

package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	edsmcp "github.com/edsblocks/eds-mcp"
	"github.com/edsblocks/eds-mcp/internal/capability"
	"github.com/edsblocks/eds-mcp/internal/catalog"
	"github.com/edsblocks/eds-mcp/internal/dispatch"
	"github.com/edsblocks/eds-mcp/internal/handlers"
	"github.com/edsblocks/eds-mcp/internal/logging"
	"github.com/edsblocks/eds-mcp/internal/search"
	"github.com/edsblocks/eds-mcp/internal/templates"
)

type serveOptions struct {
	templatesDir string
	manifest     string
	logLevel     string
	logFormat    string
	noSearch     bool
}

var opts serveOptions

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start the MCP server on stdin/stdout. Templates and the manifest are read from the
binary unless --templates-dir or --manifest point elsewhere. Template files are
re-read on every call, so edits under --templates-dir show up without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opts.noSearch, "no-search", false, "do not build the full-text index nor expose search_templates")
}

func addCatalogFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.templatesDir, "templates-dir", "", "directory template file locators are relative to (default: embedded resources)")
	flags.StringVar(&opts.manifest, "manifest", "", "path to a catalog manifest (default: embedded manifest)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: json or text (overrides LOG_FORMAT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := configureLogging(opts); err != nil {
		return err
	}
	logger := logging.WithComponent("main")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manifest, store, err := openCatalog(opts)
	if err != nil {
		return err
	}

	deps := handlers.Dependencies{Store: store}
	if !opts.noSearch {
		idx, err := search.BuildFullTextIndex(ctx, store)
		if err != nil {
			logger.Warn("Full-text index unavailable, search_templates disabled", "error", err.Error())
		} else {
			defer func() { _ = idx.Close() }()
			deps.Searcher = idx
		}
	}

	registry := capability.NewRegistry()
	if err := handlers.Register(registry, deps); err != nil {
		return fmt.Errorf("failed to register capabilities: %w", err)
	}

	s := dispatch.NewServer(manifest.Server, registry, store)

	logger.Info("Starting MCP server on stdio",
		"server", manifest.Server.Name,
		"templates", len(store.Names()),
		"capabilities", len(registry.List()),
		"search", deps.Searcher != nil,
	)

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func configureLogging(o serveOptions) error {
	config := logging.ConfigFromEnv()

	if o.logLevel != "" {
		level, ok := logging.ParseLevel(o.logLevel)
		if !ok {
			return fmt.Errorf("invalid --log-level %q", o.logLevel)
		}
		config.Level = level
	}

	switch o.logFormat {
	case "":
	case "json", "text":
		config.Format = o.logFormat
	default:
		return fmt.Errorf("invalid --log-format %q", o.logFormat)
	}

	logging.Configure(config)
	return nil
}

// openCatalog loads the manifest and builds the template store it describes.
func openCatalog(o serveOptions) (*catalog.Manifest, *templates.Store, error) {
	manifest, err := loadManifest(o.manifest)
	if err != nil {
		return nil, nil, err
	}

	root, err := templatesRoot(o.templatesDir)
	if err != nil {
		return nil, nil, err
	}

	store, err := templates.NewStore(root, manifest.Descriptors()...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build template store: %w", err)
	}
	return manifest, store, nil
}

func loadManifest(path string) (*catalog.Manifest, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load(edsmcp.Resources, edsmcp.ManifestPath)
}

func templatesRoot(dir string) (fs.FS, error) {
	if dir == "" {
		return edsmcp.Root()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid --templates-dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid --templates-dir: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
