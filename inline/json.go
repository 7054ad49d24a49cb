package inline

import (
	"encoding/json"
	"io"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/media"
)

// Post wraps a search hit with its provider and classified media type.
type Post struct {
	Provider string      `json:"provider"`
	Media    string      `json:"media"`
	Post     *booru.Post `json:"post"`
}

type Output struct {
	Query  string  `json:"query"`
	Result []*Post `json:"result"`
}

func asJson(posts []*booru.Post, providerName, searchQuery string) ([]byte, error) {
	result := make([]*Post, len(posts))
	for i, p := range posts {
		result[i] = &Post{
			Provider: providerName,
			Media:    media.TypeOf(p).String(),
			Post:     p,
		}
	}

	return json.Marshal(&Output{
		Query:  searchQuery,
		Result: result,
	})
}

func writeJson(out io.Writer, posts []*booru.Post, options *Options) error {
	name := ""
	if options.Provider != nil {
		name = options.Provider.Name()
	}

	data, err := asJson(posts, name, options.Query)
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
