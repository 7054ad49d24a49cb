// Package danbooru implements the Danbooru JSON API adapter.
//
// Authentication is optional: configured credentials are appended to every
// request as login/api_key query parameters, anonymous access works with
// reduced feature availability.
package danbooru

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/boorusan-cli/boorusan/auth"
	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/network"
)

const (
	Name    = "Danbooru"
	baseURL = "https://danbooru.donmai.us"

	maxPostsLimit     = 200
	maxTagsLimit      = 1000
	autocompleteLimit = 10
	autocompleteType  = "tag_query"

	statusOKAnonymous = "API is operational (Anonymous access - some features may be limited)"
	statusOKAuthed    = "API is operational (Authenticated)"
)

type Danbooru struct {
	client *http.Client

	mu     sync.RWMutex
	login  string
	apiKey string
}

func New() *Danbooru {
	return &Danbooru{client: network.FingerprintClient()}
}

func (*Danbooru) Name() string {
	return Name
}

func (*Danbooru) DisplayName() string {
	return "Danbooru"
}

func (*Danbooru) BaseURL() string {
	return baseURL
}

func (*Danbooru) RequiresAuth() bool {
	return false
}

// SetCookieFile is a no-op: Danbooru authenticates with an API key.
func (*Danbooru) SetCookieFile(string) error {
	return nil
}

// SetCredentials configures key-based authentication.
// Empty values revert the adapter to anonymous access.
func (d *Danbooru) SetCredentials(login, apiKey string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.login = login
	d.apiKey = apiKey
}

func (d *Danbooru) authenticated() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.login != "" && d.apiKey != ""
}

func (d *Danbooru) sign(endpoint string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return auth.SignURL(endpoint, d.login, d.apiKey)
}

func (d *Danbooru) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, d.sign(endpoint), nil)
	if err != nil {
		return nil, err
	}

	network.BrowserHeaders(req)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		// The h2 handshake can be rejected by edge protection; retry
		// once over the forced HTTP/1.1 transport.
		resp, err = network.FingerprintFallbackClient().Do(req)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %s", Name, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (d *Danbooru) postsURL(query booru.PostQuery) string {
	if query.ID != "" {
		return baseURL + "/posts/" + url.PathEscape(query.ID) + ".json"
	}

	params := url.Values{}

	limit := query.Limit
	if limit > maxPostsLimit {
		limit = maxPostsLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	// Danbooru pages are 1-based.
	params.Set("page", strconv.Itoa(query.Page+1))

	if query.Tags != "" {
		params.Set("tags", query.Tags)
	}

	return baseURL + "/posts.json?" + params.Encode()
}

func (d *Danbooru) tagsURL(query booru.TagQuery) string {
	params := url.Values{}

	limit := query.Limit
	if limit > maxTagsLimit {
		limit = maxTagsLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	if query.NamePattern != "" {
		params.Set("search[name_matches]", query.NamePattern)
	}

	if query.ID != "" {
		params.Set("search[id]", query.ID)
	}

	return baseURL + "/tags.json?" + params.Encode()
}

func (d *Danbooru) commentsURL(query booru.CommentQuery) string {
	params := url.Values{}
	params.Set("search[post_id]", query.PostID)
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("group_by", "comment")

	return baseURL + "/comments.json?" + params.Encode()
}

func (d *Danbooru) Posts(query booru.PostQuery) ([]*booru.Post, error) {
	endpoint := d.postsURL(query)
	log.Debugf("%s: fetching posts from %s", Name, endpoint)

	body, err := d.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	if query.ID != "" {
		return parseSinglePost(body, baseURL)
	}

	return parsePosts(body, baseURL)
}

func (d *Danbooru) Tags(query booru.TagQuery) ([]*booru.Tag, error) {
	endpoint := d.tagsURL(query)
	log.Debugf("%s: fetching tags from %s", Name, endpoint)

	body, err := d.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}

	return ParseTags(body)
}

func (d *Danbooru) Comments(query booru.CommentQuery) ([]*booru.Comment, error) {
	endpoint := d.commentsURL(query)
	log.Debugf("%s: fetching comments from %s", Name, endpoint)

	body, err := d.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}

	return ParseComments(body)
}

func (d *Danbooru) Autocomplete(term string) ([]string, error) {
	params := url.Values{}
	params.Set("search[query]", term)
	params.Set("search[type]", autocompleteType)
	params.Set("limit", strconv.Itoa(autocompleteLimit))

	endpoint := baseURL + "/autocomplete.json?" + params.Encode()
	log.Debugf("%s: autocomplete %q", Name, term)

	body, err := d.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	suggestions, err := booru.ParseSuggestions(body)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	return suggestions, nil
}

func (d *Danbooru) Status() booru.Status {
	query := booru.NewPostQuery()
	query.Limit = 1

	if _, err := d.Posts(query); err != nil {
		return booru.StatusFailed(fmt.Sprintf("API is down: %s", err))
	}

	if d.authenticated() {
		return booru.StatusOK(statusOKAuthed)
	}

	return booru.StatusOK(statusOKAnonymous)
}
