// Package booru defines the domain models and interfaces for booru board access.
package booru

// Provider defines the required capabilities of a booru board adapter.
//
// Every fetch is a single best-effort attempt: adapters perform no retries
// and surface request-level failures as an error alongside an empty result.
// Individual malformed records within an otherwise valid response are
// skipped, never fatal to the page.
type Provider interface {
	// Name returns the unique registry key for the provider.
	Name() string

	// DisplayName returns the human-readable provider title.
	DisplayName() string

	// BaseURL returns the provider's origin, without a trailing slash.
	BaseURL() string

	// RequiresAuth reports whether the provider needs an authentication
	// artifact (cookies or credentials) before fetches can succeed.
	RequiresAuth() bool

	// Posts executes a post search against the provider.
	Posts(query PostQuery) ([]*Post, error)

	// Tags retrieves tags matching the query.
	Tags(query TagQuery) ([]*Tag, error)

	// Comments retrieves comments for a post.
	Comments(query CommentQuery) ([]*Comment, error)

	// Autocomplete returns ordered tag suggestions for a partial query.
	Autocomplete(query string) ([]string, error)

	// Status probes the provider with a minimal fetch. It never panics and
	// never returns an error: any failure is folded into the Status value.
	Status() Status

	// SetCookieFile loads an authentication cookie file. Providers that do
	// not use cookie authentication treat this as a no-op.
	SetCookieFile(path string) error
}

// CredentialProvider is implemented by adapters using login/API-key
// authentication instead of cookies.
type CredentialProvider interface {
	Provider

	// SetCredentials configures key-based authentication. Empty values
	// revert the adapter to anonymous access.
	SetCredentials(login, apiKey string)
}
