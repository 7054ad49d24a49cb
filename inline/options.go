// Package inline implements the application's non-interactive, scriptable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/util"
)

// PostPicker selects a single post from a search result page.
type PostPicker func([]*booru.Post) *booru.Post

type Options struct {
	Out io.Writer
	// Provider is the board the query runs against.
	Provider booru.Provider
	Json     bool
	Query    string
	Limit    int
	Page     int
	// PostPicker optionally narrows the result to a single post.
	PostPicker mo.Option[PostPicker]
	// Download saves the selected posts' media and prints the paths.
	Download bool
}

// ParsePostPicker builds a PostPicker from its CLI description.
// Supported kinds: first, last, id, index.
func ParsePostPicker(kind, value string) (PostPicker, error) {
	switch kind {
	case "first":
		return func(posts []*booru.Post) *booru.Post {
			if len(posts) == 0 {
				return nil
			}
			return posts[0]
		}, nil
	case "last":
		return func(posts []*booru.Post) *booru.Post {
			if len(posts) == 0 {
				return nil
			}
			return posts[len(posts)-1]
		}, nil
	case "id":
		return func(posts []*booru.Post) *booru.Post {
			for _, p := range posts {
				if p.ID == value {
					return p
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(posts []*booru.Post) *booru.Post {
			if len(posts) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(posts)-1))
			return posts[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
