package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/color"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/query"
	"github.com/boorusan-cli/boorusan/save"
	"github.com/boorusan-cli/boorusan/style"
	"github.com/boorusan-cli/boorusan/util"
)

func (b *statefulBubble) loadProviders() tea.Cmd {
	items := lo.Map(b.options.Registry.Names(), func(name string, _ int) list.Item {
		p, _ := b.options.Registry.Get(name)
		return &listItem{internal: p}
	})

	return b.providersC.SetItems(items)
}

func (b *statefulBubble) searchPosts(searchQuery string, page int) tea.Cmd {
	return func() tea.Msg {
		p, ok := b.currentProvider()
		if !ok {
			b.errorChannel <- fmt.Errorf("no provider selected")
			return nil
		}

		log.Infof("searching %s for %q (page %d)", p.Name(), searchQuery, page)
		b.progressStatus = fmt.Sprintf("Searching %s", style.Fg(color.Purple)(p.DisplayName()))

		pq := booru.NewPostQuery()
		pq.Tags = searchQuery
		pq.Page = page

		posts, err := p.Posts(pq)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		if searchQuery != "" {
			if err := query.Remember(searchQuery, 1); err != nil {
				log.Warnf("remember query: %v", err)
			}
		}

		log.Infof("found %s", util.Quantify(len(posts), "post", "posts"))
		b.foundPostsChannel <- posts
		return nil
	}
}

func (b *statefulBubble) waitForPosts() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundPostsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) fetchTags(pattern string) tea.Cmd {
	return func() tea.Msg {
		p, ok := b.currentProvider()
		if !ok {
			b.errorChannel <- fmt.Errorf("no provider selected")
			return nil
		}

		b.progressStatus = "Fetching tags"

		tq := booru.NewTagQuery()
		tq.NamePattern = pattern

		tags, err := p.Tags(tq)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		log.Infof("found %s", util.Quantify(len(tags), "tag", "tags"))
		b.foundTagsChannel <- tags
		return nil
	}
}

func (b *statefulBubble) waitForTags() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundTagsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) fetchComments(post *booru.Post) tea.Cmd {
	return func() tea.Msg {
		p, ok := b.currentProvider()
		if !ok {
			b.errorChannel <- fmt.Errorf("no provider selected")
			return nil
		}

		b.progressStatus = fmt.Sprintf("Fetching comments for #%s", post.ID)

		cq := booru.NewCommentQuery()
		cq.PostID = post.ID

		comments, err := p.Comments(cq)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		b.foundCommentsChannel <- comments
		return nil
	}
}

func (b *statefulBubble) waitForComments() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundCommentsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) savePost(post *booru.Post) tea.Cmd {
	return func() tea.Msg {
		p, ok := b.currentProvider()
		if !ok {
			b.errorChannel <- fmt.Errorf("no provider selected")
			return nil
		}

		b.progressStatus = fmt.Sprintf("Saving #%s", post.ID)

		path, err := save.Post(p.Name(), post)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		log.Infof("saved post #%s to %s", post.ID, path)
		b.savedPathChannel <- path
		return nil
	}
}

func (b *statefulBubble) waitForSaved() tea.Cmd {
	return func() tea.Msg {
		select {
		case path := <-b.savedPathChannel:
			return savedMsg{path: path}
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// savedMsg reports a completed media download.
type savedMsg struct {
	path string
}
