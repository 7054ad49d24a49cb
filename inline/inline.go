package inline

import (
	"fmt"
	"os"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/media"
	"github.com/boorusan-cli/boorusan/query"
	"github.com/boorusan-cli/boorusan/save"
)

// Run executes a search in inline mode and writes the results to the
// configured output.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Provider == nil {
		return fmt.Errorf("no provider selected")
	}

	pq := booru.NewPostQuery()
	pq.Tags = options.Query
	pq.Page = options.Page
	if options.Limit > 0 {
		pq.Limit = options.Limit
	}

	posts, err := options.Provider.Posts(pq)
	if err != nil {
		return fmt.Errorf("search failed for %s: %w", options.Provider.Name(), err)
	}

	if options.Query != "" {
		if err := query.Remember(options.Query, 1); err != nil {
			log.Warnf("inline: remember query: %v", err)
		}
	}

	selected := posts
	if options.PostPicker.IsPresent() {
		picker := options.PostPicker.MustGet()
		selected = nil
		if choice := picker(posts); choice != nil {
			selected = []*booru.Post{choice}
		}
	}

	if options.Download {
		for _, p := range selected {
			path, err := save.Post(options.Provider.Name(), p)
			if err != nil {
				log.Warnf("inline: save post #%s: %v", p.ID, err)
				continue
			}
			fmt.Fprintln(options.Out, path)
		}
		return nil
	}

	if options.Json {
		return writeJson(options.Out, selected, options)
	}

	for _, p := range selected {
		if u := media.BestURL(p, media.Unknown); u != "" {
			fmt.Fprintln(options.Out, u)
		}
	}

	return nil
}
