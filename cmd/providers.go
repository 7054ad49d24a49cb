// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"fmt"
	"os"

	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/provider"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(providersCmd)
}

// providersCmd serves as the parent command for inspecting booru providers.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Inspect the registered booru providers",
}

func init() {
	providersCmd.AddCommand(providersListCmd)

	providersListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	providersListCmd.SetOut(os.Stdout)
}

// providersListCmd displays a summary of all registered providers.
var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered providers",
	Run: func(cmd *cobra.Command, args []string) {
		registry := provider.Default()

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, name := range registry.Names() {
				cmd.Println(name)
			}
			return
		}

		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		cmd.Println(headerStyle("Providers:"))

		for _, name := range registry.Names() {
			p, _ := registry.Get(name)

			line := style.Fg(color.Purple)(p.Name()) + " " + style.Faint(p.BaseURL())
			if p.RequiresAuth() {
				line += " " + icon.Get(icon.Lock)
			}

			cmd.Println(line)
		}
	},
}

func init() {
	providersCmd.AddCommand(providersSelectCmd)
}

// providersSelectCmd persists the default provider selection.
var providersSelectCmd = &cobra.Command{
	Use:               "select [name]",
	Short:             "Persist the named provider as the default selection",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProviderNames,
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		registry := provider.Default()
		if !registry.Select(name) {
			handleErr(fmt.Errorf("unknown provider: %s", name))
		}

		viper.Set(key.ProviderDefault, name)
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf(
			"%s selected %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(name),
		)
	},
}
