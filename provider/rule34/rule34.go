// Package rule34 implements the Rule34 dapi adapter. The dapi exposes the
// same endpoints in XML and JSON flavors; which one is used is controlled by
// configuration and the response is parsed strictly in that flavor.
package rule34

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/constant"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/network"
)

const (
	Name    = "Rule34"
	baseURL = "https://api.rule34.xxx"

	maxPostsLimit = 1000
	maxTagsLimit  = 1000
)

type Rule34 struct {
	client *http.Client
}

func New() *Rule34 {
	return &Rule34{client: network.Client}
}

func (*Rule34) Name() string {
	return Name
}

func (*Rule34) DisplayName() string {
	return "Rule34"
}

func (*Rule34) BaseURL() string {
	return baseURL
}

func (*Rule34) RequiresAuth() bool {
	return false
}

// SetCookieFile is a no-op: the Rule34 dapi is anonymous.
func (*Rule34) SetCookieFile(string) error {
	return nil
}

func (r *Rule34) useJSON() bool {
	return viper.GetBool(key.Rule34JSONAPI)
}

func (r *Rule34) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %s", Name, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (r *Rule34) postsURL(query booru.PostQuery) string {
	params := url.Values{}
	params.Set("page", "dapi")
	params.Set("s", "post")
	params.Set("q", "index")

	limit := query.Limit
	if limit > maxPostsLimit {
		limit = maxPostsLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	if query.Page > 0 {
		params.Set("pid", strconv.Itoa(query.Page))
	}

	if query.Tags != "" {
		params.Set("tags", query.Tags)
	}

	if query.ID != "" {
		params.Set("id", query.ID)
	}

	if r.useJSON() {
		params.Set("json", "1")
	}

	return baseURL + "/index.php?" + params.Encode()
}

func (r *Rule34) tagsURL(query booru.TagQuery) string {
	params := url.Values{}
	params.Set("page", "dapi")
	params.Set("s", "tag")
	params.Set("q", "index")

	limit := query.Limit
	if limit > maxTagsLimit {
		limit = maxTagsLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	if query.NamePattern != "" {
		params.Set("name_pattern", query.NamePattern)
	}

	if query.ID != "" {
		params.Set("id", query.ID)
	}

	return baseURL + "/index.php?" + params.Encode()
}

func (r *Rule34) commentsURL(query booru.CommentQuery) string {
	params := url.Values{}
	params.Set("page", "dapi")
	params.Set("s", "comment")
	params.Set("q", "index")
	params.Set("post_id", query.PostID)

	return baseURL + "/index.php?" + params.Encode()
}

func (r *Rule34) Posts(query booru.PostQuery) ([]*booru.Post, error) {
	endpoint := r.postsURL(query)
	log.Debugf("%s: fetching posts from %s", Name, endpoint)

	body, err := r.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	if r.useJSON() {
		return parsePostsJSON(body)
	}

	return parsePostsXML(body)
}

func (r *Rule34) Tags(query booru.TagQuery) ([]*booru.Tag, error) {
	endpoint := r.tagsURL(query)
	log.Debugf("%s: fetching tags from %s", Name, endpoint)

	body, err := r.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}

	return parseTagsXML(body)
}

func (r *Rule34) Comments(query booru.CommentQuery) ([]*booru.Comment, error) {
	endpoint := r.commentsURL(query)
	log.Debugf("%s: fetching comments from %s", Name, endpoint)

	body, err := r.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}

	return parseCommentsXML(body)
}

func (r *Rule34) Autocomplete(term string) ([]string, error) {
	endpoint := baseURL + "/autocomplete.php?q=" + url.QueryEscape(term)
	log.Debugf("%s: autocomplete %q", Name, term)

	body, err := r.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	suggestions, err := booru.ParseSuggestions(body)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	return suggestions, nil
}

func (r *Rule34) Status() booru.Status {
	query := booru.NewPostQuery()
	query.Limit = 1

	if _, err := r.Posts(query); err != nil {
		return booru.StatusFailed(fmt.Sprintf("API is down: %s", err))
	}

	return booru.StatusOK("API is operational")
}
