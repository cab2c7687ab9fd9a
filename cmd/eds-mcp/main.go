//go:build fts5

// Package main provides the EDS block analyser MCP server.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/edsblocks/eds-mcp/internal/buildinfo"
	"github.com/edsblocks/eds-mcp/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "eds-mcp",
	Short: "MCP server serving the EDS block analyser prompt and templates",
	Long: `eds-mcp speaks the Model Context Protocol over stdio. It exposes a UI architect
prompt and the markdown/CSV templates an agent fills in while estimating the
conversion of a design into Edge Delivery Services blocks.

Running eds-mcp without a subcommand is the same as "eds-mcp serve".`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "eds-mcp", buildinfo.String())
	},
}

func init() {
	addCatalogFlags(rootCmd)
	addServeFlags(rootCmd)
	rootCmd.AddCommand(serveCmd, searchCmd, checkCmd, schemaCmd, versionCmd)
}

func main() {
	// A missing .env file is the common case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("eds-mcp failed", "error", err.Error())
		os.Exit(1)
	}
}
