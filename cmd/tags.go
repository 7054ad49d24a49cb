// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().StringP("name", "n", "", "Prefix pattern matched against tag names")
	tagsCmd.Flags().StringP("id", "i", "", "Restrict the search to a single tag ID")
	tagsCmd.Flags().IntP("limit", "l", 0, "Maximum number of tags to fetch")
	tagsCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON array")

	tagsCmd.MarkFlagsMutuallyExclusive("name", "id")
	tagsCmd.SetOut(os.Stdout)
}

// tagsCmd searches tags on the selected provider in inline mode.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Search tags on the selected provider",
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		tq := booru.NewTagQuery()
		tq.NamePattern = lo.Must(cmd.Flags().GetString("name"))
		tq.ID = lo.Must(cmd.Flags().GetString("id"))
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 {
			tq.Limit = limit
		}

		tags, err := p.Tags(tq)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(tags))
			return
		}

		for _, tag := range tags {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(tag.Name),
				style.Faint(string(tag.Category)),
				style.Fg(color.Yellow)(util.Quantify(tag.Count, "post", "posts")),
			)
		}
	},
}
