package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/media"
	"github.com/boorusan-cli/boorusan/open"
	"github.com/boorusan-cli/boorusan/query"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, nil
	case []*booru.Post:
		b.stopLoading()
		items := make([]interface{}, len(msg))
		for i, p := range msg {
			items[i] = p
		}
		cmd := setListItems(&b.postsC, items)
		b.newState(postsState)
		return b, cmd
	case []*booru.Tag:
		b.stopLoading()
		items := make([]interface{}, len(msg))
		for i, t := range msg {
			items[i] = t
		}
		cmd := setListItems(&b.tagsC, items)
		b.newState(tagsState)
		return b, cmd
	case []*booru.Comment:
		b.stopLoading()
		items := make([]interface{}, len(msg))
		for i, c := range msg {
			items[i] = c
		}
		cmd := setListItems(&b.commentsC, items)
		b.newState(commentsState)
		return b, cmd
	case savedMsg:
		b.stopLoading()
		b.previousState()
		return b, b.notifier.Update(fmt.Sprintf("%s Saved to %s", icon.Get(icon.Success), msg.path))
	case spinner.TickMsg:
		if b.loading {
			var cmd tea.Cmd
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			return b, cmd
		}
	}

	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch b.state {
	case providersState:
		return b.updateProviders(msg)
	case searchState:
		return b.updateSearch(msg)
	case postsState:
		return b.updatePosts(msg)
	case postState:
		return b.updatePost(msg)
	case tagsState:
		return b.updateTags(msg)
	case commentsState:
		return b.updateComments(msg)
	case errorState:
		return b.updateError(msg)
	case loadingState:
		return b.updateLoading(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateProviders(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.providersC.SelectedItem().(*listItem); ok {
				if p, ok := item.internal.(booru.Provider); ok {
					b.options.Registry.Select(p.Name())
					log.Infof("selected provider %s", p.Name())
					b.newState(searchState)
					return b, textinput.Blink
				}
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.providersC, cmd = b.providersC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.currentQuery = b.inputC.Value()
			b.currentPage = 0
			b.newState(loadingState)
			return b, tea.Batch(
				b.startLoading(),
				b.spinnerC.Tick,
				b.searchPosts(b.currentQuery, 0),
				b.waitForPosts(),
			)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.changeProvider):
			b.newState(providersState)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != "" {
		b.searchSuggestion = query.Suggest(value)
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updatePosts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.postsC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if post, ok := b.selectedListPost(); ok {
				b.selectedPost = post
				b.newState(postState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.save):
			if post, ok := b.selectedListPost(); ok {
				b.newState(loadingState)
				return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.savePost(post), b.waitForSaved())
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if post, ok := b.selectedListPost(); ok {
				if u := media.BestURL(post, media.Unknown); u != "" {
					if err := open.Start(u); err != nil {
						b.raiseError(err)
					}
				}
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.tags):
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.fetchTags(""), b.waitForTags())
		case bubblesKey.Matches(msg, b.keymap.comments):
			if post, ok := b.selectedListPost(); ok {
				b.selectedPost = post
				b.newState(loadingState)
				return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.fetchComments(post), b.waitForComments())
			}
		case bubblesKey.Matches(msg, b.keymap.changeProvider):
			b.newState(providersState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.setState(searchState)
			return b, textinput.Blink
		}
	}

	var cmd tea.Cmd
	b.postsC, cmd = b.postsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePost(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.save):
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.savePost(b.selectedPost), b.waitForSaved())
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if u := media.BestURL(b.selectedPost, media.Unknown); u != "" {
				if err := open.Start(u); err != nil {
					b.raiseError(err)
				}
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.comments):
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.fetchComments(b.selectedPost), b.waitForComments())
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	return b, nil
}

func (b *statefulBubble) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.tagsC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.tagsC.SelectedItem().(*listItem); ok {
				if tag, ok := item.internal.(*booru.Tag); ok {
					b.currentQuery = tag.Name
					b.inputC.SetValue(tag.Name)
					b.newState(loadingState)
					return b, tea.Batch(
						b.startLoading(),
						b.spinnerC.Tick,
						b.searchPosts(tag.Name, 0),
						b.waitForPosts(),
					)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.tagsC, cmd = b.tagsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateComments(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if bubblesKey.Matches(msg, b.keymap.back) {
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.commentsC, cmd = b.commentsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if bubblesKey.Matches(msg, b.keymap.back) {
			b.stopLoading()
			b.previousState()
			return b, nil
		}
	}

	return b, nil
}

// selectedListPost resolves the highlighted post in the results list.
func (b *statefulBubble) selectedListPost() (*booru.Post, bool) {
	item, ok := b.postsC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}

	post, ok := item.internal.(*booru.Post)
	return post, ok
}

func setListItems(l *list.Model, items []interface{}) tea.Cmd {
	wrapped := make([]list.Item, len(items))
	for i, it := range items {
		wrapped[i] = &listItem{internal: it}
	}
	return l.SetItems(wrapped)
}
