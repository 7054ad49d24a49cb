package danbooru

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/log"
)

// apiPost mirrors the subset of the Danbooru post payload the viewer uses.
type apiPost struct {
	ID           json.Number `json:"id"`
	FileURL      string      `json:"file_url"`
	LargeFileURL string      `json:"large_file_url"`
	PreviewURL   string      `json:"preview_file_url"`
	Width        int         `json:"image_width"`
	Height       int         `json:"image_height"`
	TagString    string      `json:"tag_string"`
	Score        int         `json:"score"`
	CreatedAt    string      `json:"created_at"`
	MD5          string      `json:"md5"`
	Rating       string      `json:"rating"`
	Source       string      `json:"source"`
}

func (p *apiPost) normalize(base string) *booru.Post {
	return &booru.Post{
		ID:         p.ID.String(),
		FileURL:    EnsureAbsoluteURL(p.FileURL, base),
		SampleURL:  EnsureAbsoluteURL(p.LargeFileURL, base),
		PreviewURL: EnsureAbsoluteURL(p.PreviewURL, base),
		Width:      p.Width,
		Height:     p.Height,
		Tags:       p.TagString,
		Score:      p.Score,
		CreatedAt:  p.CreatedAt,
		MD5:        p.MD5,
		Rating:     booru.ParseRating(p.Rating),
		Source:     p.Source,
	}
}

func parsePosts(body []byte, base string) ([]*booru.Post, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse posts: %w", err)
	}

	posts := make([]*booru.Post, 0, len(entries))
	for _, entry := range entries {
		var p apiPost
		if err := json.Unmarshal(entry, &p); err != nil {
			log.Warnf("%s: skipping malformed post record: %s", Name, err)
			continue
		}
		posts = append(posts, p.normalize(base))
	}

	return posts, nil
}

func parseSinglePost(body []byte, base string) ([]*booru.Post, error) {
	var p apiPost
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parse post: %w", err)
	}

	return []*booru.Post{p.normalize(base)}, nil
}

type apiTag struct {
	ID        json.Number `json:"id"`
	Name      string      `json:"name"`
	PostCount int         `json:"post_count"`
	Category  int         `json:"category"`
}

// ParseTags decodes a Danbooru-family tags.json response.
func ParseTags(body []byte) ([]*booru.Tag, error) {
	var entries []apiTag
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse tags: %w", err)
	}

	tags := make([]*booru.Tag, 0, len(entries))
	for _, t := range entries {
		tags = append(tags, &booru.Tag{
			ID:       t.ID.String(),
			Name:     t.Name,
			Count:    t.PostCount,
			Category: booru.ParseCategory(t.Category),
		})
	}

	return tags, nil
}

type apiComment struct {
	ID          json.Number `json:"id"`
	PostID      json.Number `json:"post_id"`
	CreatorName string      `json:"creator_name"`
	Body        string      `json:"body"`
	CreatedAt   string      `json:"created_at"`
}

// ParseComments decodes a Danbooru-family comments.json response.
// Comments without a creator name are attributed to Anonymous.
func ParseComments(body []byte) ([]*booru.Comment, error) {
	var entries []apiComment
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse comments: %w", err)
	}

	comments := make([]*booru.Comment, 0, len(entries))
	for _, c := range entries {
		creator := c.CreatorName
		if creator == "" {
			creator = booru.AnonymousCreator
		}

		comments = append(comments, &booru.Comment{
			ID:        c.ID.String(),
			PostID:    c.PostID.String(),
			Creator:   creator,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}

	return comments, nil
}

// EnsureAbsoluteURL resolves the relative asset URLs Danbooru-family boards
// sometimes emit. Protocol-relative URLs get https, root-relative ones are
// joined onto the board origin, everything else passes through unchanged.
func EnsureAbsoluteURL(rawURL, base string) string {
	switch {
	case rawURL == "":
		return ""
	case strings.HasPrefix(rawURL, "//"):
		return "https:" + rawURL
	case strings.HasPrefix(rawURL, "/"):
		return base + rawURL
	default:
		return rawURL
	}
}
