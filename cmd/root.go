// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/constant"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/provider"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/tui"
	"github.com/boorusan-cli/boorusan/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionProviderNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, p := range provider.Builtins() {
		names = append(names, p.Name())
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("provider", "p", "", "Specify the booru provider to query")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", completionProviderNames))
	lo.Must0(viper.BindPFlag(key.ProviderDefault, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.Flags().StringP("query", "q", "", "Pre-fill the search input and jump straight to results")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the boorusan application.
var rootCmd = &cobra.Command{
	Use:   constant.Boorusan,
	Short: "A minimalist command-line interface for browsing booru boards",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for browsing booru boards"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Query: lo.Must(cmd.Flags().GetString("query")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
