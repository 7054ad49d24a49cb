// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/filesystem"
	"github.com/boorusan-cli/boorusan/inline"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/provider"
	"github.com/boorusan-cli/boorusan/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveProvider builds the default registry and returns the selected
// adapter, falling back to the first registered one when nothing is set.
func resolveProvider() booru.Provider {
	registry := provider.Default()

	if p, ok := registry.Current(); ok {
		return p
	}

	for _, name := range registry.Names() {
		if registry.Select(name) {
			p, _ := registry.Current()
			return p
		}
	}

	handleErr(errors.New("no providers registered"))
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "The tag expression to search posts for")
	searchCmd.Flags().IntP("limit", "l", 0, "Maximum number of posts to fetch per page")
	searchCmd.Flags().IntP("page", "P", 0, "Zero-based result page to fetch")
	searchCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	searchCmd.Flags().BoolP("download", "d", false, "Save the selected posts' media to the downloads directory")
	searchCmd.Flags().StringP("posts", "s", "", "Criteria for selecting specific posts from the results")
	searchCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	_ = searchCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// searchCmd executes a post search in non-interactive, scriptable inline mode.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search posts in non-interactive, scriptable inline mode",
	Long: `Execute a post search against the selected provider and print the results.

Post selectors:
  first - first post in the results
  last - last post in the results
  id:[number] - select a post by its board ID
  index:[number] - select a post by result index (starting from 0)

Without a selector every fetched post is included.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit <= 0 {
			limit = viper.GetInt(key.SearchLimit)
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			writer = file
		}

		picker := mo.None[inline.PostPicker]()
		if selector := lo.Must(cmd.Flags().GetString("posts")); selector != "" {
			kind, value, _ := strings.Cut(selector, ":")
			fn, err := inline.ParsePostPicker(kind, value)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:        writer,
			Provider:   p,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Query:      lo.Must(cmd.Flags().GetString("query")),
			Limit:      limit,
			Page:       lo.Must(cmd.Flags().GetInt("page")),
			PostPicker: picker,
			Download:   lo.Must(cmd.Flags().GetBool("download")),
		}

		handleErr(inline.Run(options))
	},
}
