// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"fmt"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/save"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().StringP("id", "i", "", "The board ID of the post to save")
	lo.Must0(saveCmd.MarkFlagRequired("id"))
}

// saveCmd downloads a single post's media to the downloads directory.
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a post's media to the downloads directory",
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		pq := booru.NewPostQuery()
		pq.ID = lo.Must(cmd.Flags().GetString("id"))

		posts, err := p.Posts(pq)
		handleErr(err)

		if len(posts) == 0 {
			handleErr(fmt.Errorf("post #%s not found on %s", pq.ID, p.Name()))
		}

		e := util.PrintErasable(fmt.Sprintf("%s Downloading post #%s...", icon.Get(icon.Download), posts[0].ID))
		path, err := save.Post(p.Name(), posts[0])
		e()
		handleErr(err)

		fmt.Printf(
			"%s saved to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(path),
		)
	},
}
