package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/icon"
	"github.com/boorusan-cli/boorusan/media"
	"github.com/boorusan-cli/boorusan/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case providersState:
		output = b.viewProviders()
	case searchState:
		output = b.viewSearch()
	case postsState:
		output = b.viewPosts()
	case postState:
		output = b.viewPost()
	case tagsState:
		output = b.viewTags()
	case commentsState:
		output = b.viewComments()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewProviders() string {
	return listExtraPaddingStyle.Render(b.providersC.View())
}

func (b *statefulBubble) viewSearch() string {
	title := style.Title("Search Posts")
	if p, ok := b.currentProvider(); ok {
		title = style.Title(fmt.Sprintf("Search Posts - %s", p.DisplayName()))
	}

	lines := []string{
		title,
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (tab to accept)", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewPosts() string {
	return listExtraPaddingStyle.Render(b.postsC.View())
}

func (b *statefulBubble) viewPost() string {
	post := b.selectedPost
	if post == nil {
		return b.renderLines(true, []string{style.ErrorTitle("Error"), "", "No post selected"})
	}

	mediaType := media.TypeOf(post).String()

	lines := []string{
		style.Title(fmt.Sprintf("Post #%s", post.ID)),
		"",
		fmt.Sprintf("%s %s", style.Bold("Media"), mediaType),
		fmt.Sprintf("%s %dx%d", style.Bold("Size"), post.Width, post.Height),
		fmt.Sprintf("%s %d", style.Bold("Score"), post.Score),
		fmt.Sprintf("%s %s", style.Bold("Rating"), string(post.Rating)),
	}

	if post.Source != "" {
		lines = append(lines, fmt.Sprintf("%s %s", style.Bold("Source"), style.Faint(post.Source)))
	}

	if u := media.BestURL(post, media.Unknown); u != "" {
		lines = append(lines, fmt.Sprintf("%s %s", style.Bold("URL"), style.Fg(color.Purple)(u)))
	}

	if post.Tags != "" {
		lines = append(lines,
			"",
			style.Bold("Tags"),
			wrap.String(style.Faint(post.Tags), b.width),
		)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewTags() string {
	return listExtraPaddingStyle.Render(b.tagsC.View())
}

func (b *statefulBubble) viewComments() string {
	return listExtraPaddingStyle.Render(b.commentsC.View())
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Failure: %v", b.lastError))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
