// Package provider manages the set of available booru board adapters.
package provider

import (
	"github.com/boorusan-cli/boorusan/auth"
	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/provider/atf"
	"github.com/boorusan-cli/boorusan/provider/danbooru"
	"github.com/boorusan-cli/boorusan/provider/rule34"
	"github.com/spf13/viper"
)

// Builtins returns fresh instances of the fixed adapter set.
// Adapters are enumerated statically; there is no runtime plugin scanning.
func Builtins() []booru.Provider {
	return []booru.Provider{
		rule34.New(),
		danbooru.New(),
		atf.New(),
	}
}

// Default builds a registry from the built-in adapters, applies configured
// authentication artifacts, and selects the configured default provider.
func Default() *Registry {
	r := NewRegistry()
	for _, p := range Builtins() {
		r.Register(p)
	}

	configureAuth(r)

	if name := viper.GetString(key.ProviderDefault); name != "" {
		r.Select(name)
	}

	return r
}

// configureAuth feeds stored credentials and cookie files into the adapters
// that want them. Missing artifacts are fine: adapters degrade to anonymous
// access or fail closed on their own terms.
func configureAuth(r *Registry) {
	if p, ok := r.Get(danbooru.Name); ok {
		if cp, ok := p.(booru.CredentialProvider); ok {
			login := viper.GetString(key.DanbooruLogin)
			apiKey := viper.GetString(key.DanbooruAPIKey)

			// Keyring entries take precedence over plain config values.
			if l, k, err := auth.GetCredentials(danbooru.Name); err == nil {
				login, apiKey = l, k
			}

			cp.SetCredentials(login, apiKey)
		}
	}

	if p, ok := r.Get(atf.Name); ok {
		if path := viper.GetString(key.ATFCookieFile); path != "" {
			_ = p.SetCookieFile(path)
		}
	}
}
