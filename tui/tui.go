// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boorusan-cli/boorusan/provider"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Registry is the provider set to browse. A nil registry gets the
	// default built-ins.
	Registry *provider.Registry
	// Query optionally pre-fills the search and jumps straight to results.
	Query string
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	if options.Registry == nil {
		options.Registry = provider.Default()
	}

	bubble := newBubble(options)

	if _, ok := options.Registry.Current(); ok {
		bubble.newState(searchState)
	} else {
		bubble.newState(providersState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
