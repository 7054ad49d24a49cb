// Package cmd implements the command-line interface for boorusan.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/boorusan-cli/boorusan/auth"
	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages authentication artifacts for providers that require them.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider authentication credentials and cookies",
}

func init() {
	authCmd.AddCommand(authLoginCmd)

	authLoginCmd.Flags().StringP("login", "l", "", "The account login to authenticate with")
	authLoginCmd.Flags().StringP("api-key", "k", "", "The account API key to authenticate with")
}

// authLoginCmd stores login/API-key credentials for the selected provider
// in the system keyring.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store login and API key credentials for the selected provider",
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		cp, ok := p.(booru.CredentialProvider)
		if !ok {
			handleErr(fmt.Errorf("%s does not use credential authentication", p.Name()))
		}

		login := lo.Must(cmd.Flags().GetString("login"))
		if login == "" {
			prompt := survey.Input{
				Message: fmt.Sprintf("%s login:", p.DisplayName()),
			}
			handleErr(survey.AskOne(&prompt, &login, survey.WithValidator(survey.Required)))
		}

		apiKey := lo.Must(cmd.Flags().GetString("api-key"))
		if apiKey == "" {
			prompt := survey.Password{
				Message: fmt.Sprintf("%s API key:", p.DisplayName()),
			}
			handleErr(survey.AskOne(&prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetCredentials(p.Name(), login, apiKey))
		cp.SetCredentials(login, apiKey)

		fmt.Printf(
			"%s stored credentials for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(p.DisplayName()),
		)
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

// authLogoutCmd removes stored credentials for the selected provider.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials for the selected provider",
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		handleErr(auth.DeleteCredentials(p.Name()))

		if cp, ok := p.(booru.CredentialProvider); ok {
			cp.SetCredentials("", "")
		}

		fmt.Printf(
			"%s removed credentials for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(p.DisplayName()),
		)
	},
}

func init() {
	authCmd.AddCommand(authCookiesCmd)

	authCookiesCmd.Flags().StringP("file", "f", "", "Path to an exported cookie file (JSON or Netscape format)")
	lo.Must0(authCookiesCmd.MarkFlagRequired("file"))
}

// authCookiesCmd registers an exported browser cookie file for the selected
// provider and persists the path to the configuration.
var authCookiesCmd = &cobra.Command{
	Use:   "cookies",
	Short: "Register an exported browser cookie file for the selected provider",
	Run: func(cmd *cobra.Command, args []string) {
		p := resolveProvider()

		if !p.RequiresAuth() {
			handleErr(fmt.Errorf("%s does not use cookie authentication", p.Name()))
		}

		path := lo.Must(cmd.Flags().GetString("file"))
		handleErr(p.SetCookieFile(path))

		viper.Set(key.ATFCookieFile, path)
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf(
			"%s registered cookie file for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(p.DisplayName()),
		)
	},
}
