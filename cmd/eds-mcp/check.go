//go:build fts5

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edsblocks/eds-mcp/internal/templates"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the manifest and read every template once",
	Long: `Load the catalog exactly as "serve" would and read each template. Exits non-zero
when the manifest is invalid or any template cannot be read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := configureLogging(opts); err != nil {
			return err
		}

		_, store, err := openCatalog(opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, name := range store.Names() {
			content, err := store.Lookup(name)
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
				continue
			}
			title := templates.Title(content)
			if title == "" {
				title = "-"
			}
			fmt.Fprintf(out, "ok   %s (%d bytes, title: %s)\n", name, len(content), title)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d templates unreadable", failed, len(store.Names()))
		}
		return nil
	},
}
