package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/media"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/util"
)

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal interface{}
}

func (t *listItem) mediaIcon(post *booru.Post) string {
	if media.IsVideo(post) {
		return icon.Get(icon.Video)
	}
	return icon.Get(icon.Image)
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *booru.Post:
		title = fmt.Sprintf("%s #%s", t.mediaIcon(e), e.ID)
	case *booru.Tag:
		title = e.Name
	case *booru.Comment:
		title = e.Creator
	case booru.Provider:
		title = e.DisplayName()
		if e.RequiresAuth() {
			title = fmt.Sprintf("%s %s", title, icon.Get(icon.Lock))
		}
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *booru.Post:
		parts := []string{
			lipgloss.NewStyle().Foreground(style.AccentColor).Render(fmt.Sprintf("★ %d", e.Score)),
			lipgloss.NewStyle().Foreground(style.FaintColor).Render(fmt.Sprintf("%dx%d", e.Width, e.Height)),
			string(e.Rating),
		}

		if viper.GetBool(key.TUIShowURLs) {
			if u := media.BestURL(e, media.Unknown); u != "" {
				parts = append(parts, style.Faint(u))
			}
		}

		description = strings.Join(parts, " • ")
	case *booru.Tag:
		description = fmt.Sprintf("%s • %s", e.Category, util.Quantify(e.Count, "post", "posts"))
	case *booru.Comment:
		description = e.Body
	case booru.Provider:
		description = e.BaseURL()
	}

	return
}

// FilterValue returns the string used for real-time list filtering.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *booru.Post:
		return e.Tags
	case *booru.Tag:
		return e.Name
	case *booru.Comment:
		return e.Body
	case booru.Provider:
		return e.Name()
	case string:
		return e
	default:
		return ""
	}
}
