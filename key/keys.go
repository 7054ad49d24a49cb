// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Selection - these keys manage the registration and selection of booru providers.
const (
	ProviderDefault = "provider.default"
)

// Rule34 Provider - these keys configure the dapi-based Rule34 adapter.
const (
	Rule34JSONAPI = "rule34.json_api"
)

// Danbooru Provider - these keys configure key-based authentication for the Danbooru adapter.
const (
	DanbooruLogin  = "danbooru.login"
	DanbooruAPIKey = "danbooru.api_key"
)

// ATF Provider - these keys configure cookie-based authentication for the All The Fallen adapter.
const (
	ATFCookieFile = "atf.cookie_file"
)

// Search Interaction - these keys define the parameters for search discovery.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Downloads - these keys configure media persistence to disk.
const (
	DownloadsDir = "downloads.dir"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive browser's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
