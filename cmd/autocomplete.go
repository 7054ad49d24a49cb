// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(autocompleteCmd)

	autocompleteCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON array")
	autocompleteCmd.SetOut(os.Stdout)
}

// autocompleteCmd prints tag suggestions for a partial query.
var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete [query]",
	Short: "Print ordered tag suggestions for a partial query",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		suggestions, err := p.Autocomplete(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(suggestions))
			return
		}

		for _, suggestion := range suggestions {
			cmd.Println(suggestion)
		}
	},
}
