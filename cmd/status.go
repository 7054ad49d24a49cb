// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"os"
	"sort"

	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/provider"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.SetOut(os.Stdout)
}

// statusCmd probes every registered provider concurrently and reports the
// outcome per board.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe every registered provider and report availability",
	Run: func(cmd *cobra.Command, args []string) {
		e := util.PrintErasable(icon.Get(icon.Progress) + " Checking providers...")
		statuses := provider.Default().CheckAll()
		e()

		names := lo.Keys(statuses)
		sort.Strings(names)

		for _, name := range names {
			status := statuses[name]

			mark := style.Fg(color.Green)(icon.Get(icon.Success))
			if !status.OK {
				mark = style.Fg(color.Red)(icon.Get(icon.Fail))
			}

			cmd.Printf(
				"%s %s %s\n",
				mark,
				style.New().Bold(true).Render(name),
				style.Faint(status.Message),
			)
		}
	},
}
