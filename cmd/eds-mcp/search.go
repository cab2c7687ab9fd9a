//go:build fts5

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edsblocks/eds-mcp/internal/search"
	"github.com/edsblocks/eds-mcp/internal/templates"
)

var searchMaxResults int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Query the template full-text index from the command line",
	Long: `Build the same index the server uses for search_templates and print the best
matching template sections. Useful to check how a prompt or template edit changes
what agents find.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configureLogging(opts); err != nil {
			return err
		}

		_, store, err := openCatalog(opts)
		if err != nil {
			return err
		}

		return runSearch(cmd, store, strings.Join(args, " "), searchMaxResults)
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", search.DefaultMaxResults, "maximum number of results")
}

func runSearch(cmd *cobra.Command, store *templates.Store, query string, maxResults int) error {
	idx, err := search.BuildFullTextIndex(cmd.Context(), store)
	if err != nil {
		return err
	}
	defer func() { _ = idx.Close() }()

	options := search.DefaultOptions()
	options.MaxResults = maxResults

	results, err := idx.Search(cmd.Context(), query, options)
	if err != nil {
		return err
	}

	printResults(cmd.OutOrStdout(), results)
	return nil
}

func printResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching templates.")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%d. [%s]", i+1, r.Template)
		if r.Section != "" {
			fmt.Fprintf(w, " %s", r.Section)
		}
		fmt.Fprintf(w, " (score %.2f)\n   %s\n", r.Score, strings.ReplaceAll(r.Snippet, "\n", " "))
	}
}
