// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	loadingState state = iota
	errorState
	providersState
	searchState
	postsState
	postState
	tagsState
	commentsState
)
