// Package atf implements the All The Fallen adapter, a Danbooru fork gated
// behind session-cookie authentication.
//
// The board rejects anonymous API access outright, so the adapter fails
// closed: every fetch errors until a cookie file has been loaded. Requests
// go through the browser-fingerprint client since the board additionally
// sits behind DDoS protection.
package atf

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/cookies"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/network"
	"github.com/boorusan-cli/boorusan/provider/danbooru"
)

const (
	Name         = "ATF"
	baseURL      = "https://booru.allthefallen.moe"
	cookieDomain = "allthefallen.moe"

	maxPostsLimit = 200
	maxTagsLimit  = 1000
)

// ErrNoCookies is returned by every fetch until a cookie file is loaded.
var ErrNoCookies = fmt.Errorf("%s requires cookie authentication: no cookie file configured", Name)

type ATF struct {
	client *http.Client

	mu     sync.RWMutex
	cookie string
}

func New() *ATF {
	return &ATF{client: network.FingerprintClient()}
}

func (*ATF) Name() string {
	return Name
}

func (*ATF) DisplayName() string {
	return "All The Fallen"
}

func (*ATF) BaseURL() string {
	return baseURL
}

func (*ATF) RequiresAuth() bool {
	return true
}

// SetCookieFile loads a browser cookie export and keeps the cookies matching
// the board's domain. An export with no matching cookies is an error, since
// requests would be indistinguishable from anonymous ones.
func (a *ATF) SetCookieFile(path string) error {
	header := cookies.HeaderFromFile(path, cookieDomain)
	if header == "" {
		return fmt.Errorf("no cookies for %s found in %s", cookieDomain, path)
	}

	a.mu.Lock()
	a.cookie = header
	a.mu.Unlock()

	return nil
}

func (a *ATF) cookieHeader() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cookie
}

func (a *ATF) get(endpoint string) ([]byte, error) {
	cookie := a.cookieHeader()
	if cookie == "" {
		return nil, ErrNoCookies
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	network.BrowserHeaders(req)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cookie", cookie)

	resp, err := a.client.Do(req)
	if err != nil {
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

func (a *ATF) postsURL(query booru.PostQuery) string {
	if query.ID != "" {
		return baseURL + "/posts/" + url.PathEscape(query.ID) + ".json"
	}

	params := url.Values{}

	limit := query.Limit
	if limit > maxPostsLimit {
		limit = maxPostsLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	// The fork keeps Danbooru's 1-based pagination.
	params.Set("page", strconv.Itoa(query.Page+1))

	if query.Tags != "" {
		params.Set("tags", query.Tags)
	}

	return baseURL + "/posts.json?" + params.Encode()
}

func (a *ATF) tagsURL(query booru.TagQuery) string {
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

func (a *ATF) commentsURL(query booru.CommentQuery) string {
	params := url.Values{}
	params.Set("search[post_id]", query.PostID)
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("group_by", "comment")

	return baseURL + "/comments.json?" + params.Encode()
}

func (a *ATF) Posts(query booru.PostQuery) ([]*booru.Post, error) {
	endpoint := a.postsURL(query)
	log.Debugf("%s: fetching posts from %s", Name, endpoint)

	body, err := a.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	if query.ID != "" {
		return parseSinglePost(body)
	}

	return parsePosts(body)
}

func (a *ATF) Tags(query booru.TagQuery) ([]*booru.Tag, error) {
	endpoint := a.tagsURL(query)
	log.Debugf("%s: fetching tags from %s", Name, endpoint)

	body, err := a.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}

	return danbooru.ParseTags(body)
}

func (a *ATF) Comments(query booru.CommentQuery) ([]*booru.Comment, error) {
	endpoint := a.commentsURL(query)
	log.Debugf("%s: fetching comments from %s", Name, endpoint)

	body, err := a.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}

	return danbooru.ParseComments(body)
}

func (a *ATF) Autocomplete(term string) ([]string, error) {
	params := url.Values{}
	params.Set("search[query]", term)
	params.Set("search[type]", "tag_query")
	params.Set("limit", "10")

	endpoint := baseURL + "/autocomplete.json?" + params.Encode()
	log.Debugf("%s: autocomplete %q", Name, term)

	body, err := a.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	suggestions, err := booru.ParseSuggestions(body)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	return suggestions, nil
}

func (a *ATF) Status() booru.Status {
	if a.cookieHeader() == "" {
		return booru.StatusFailed("Authentication required: no cookie file configured")
	}

	query := booru.NewPostQuery()
	query.Limit = 1

	if _, err := a.Posts(query); err != nil {
		return booru.StatusFailed(fmt.Sprintf("API is down: %s", err))
	}

	return booru.StatusOK("API is operational (Authenticated)")
}
