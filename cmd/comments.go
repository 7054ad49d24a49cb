// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commentsCmd)

	commentsCmd.Flags().StringP("post", "i", "", "The board ID of the post whose comments to fetch")
	commentsCmd.Flags().IntP("limit", "l", 0, "Maximum number of comments to fetch")
	commentsCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON array")

	lo.Must0(commentsCmd.MarkFlagRequired("post"))
	commentsCmd.SetOut(os.Stdout)
}

// commentsCmd fetches the comments of a post in inline mode.
var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Fetch the comments of a post on the selected provider",
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		cq := booru.NewCommentQuery()
		cq.PostID = lo.Must(cmd.Flags().GetString("post"))
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 {
			cq.Limit = limit
		}

		comments, err := p.Comments(cq)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(comments))
			return
		}

		for i, comment := range comments {
			cmd.Printf(
				"%s %s\n%s\n",
				style.New().Bold(true).Foreground(color.Purple).Render(comment.Creator),
				style.Faint(comment.CreatedAt),
				comment.Body,
			)

			if i < len(comments)-1 {
				cmd.Println()
			}
		}
	},
}
