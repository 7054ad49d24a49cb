package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init triggers the initial data loads for the terminal user interface.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options.Query != "" {
		b.currentQuery = b.options.Query
		b.inputC.SetValue(b.options.Query)
		b.setState(loadingState)
		return tea.Batch(
			b.startLoading(),
			b.loadProviders(),
			b.searchPosts(b.options.Query, 0),
			b.waitForPosts(),
		)
	}

	return tea.Batch(textinput.Blink, b.loadProviders())
}
