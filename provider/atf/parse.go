package atf

import (
	"encoding/json"
	"fmt"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/boorusan-cli/boorusan/provider/danbooru"
)

type apiVariant struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Width int    `json:"width"`
}

type apiMediaAsset struct {
	Variants []apiVariant `json:"variants"`
}

// apiPost carries the Danbooru fields plus the fork's media_asset block,
// which is the only place asset URLs appear on posts the board partially
// hides from the API.
type apiPost struct {
	ID           json.Number   `json:"id"`
	FileURL      string        `json:"file_url"`
	LargeFileURL string        `json:"large_file_url"`
	PreviewURL   string        `json:"preview_file_url"`
	Width        int           `json:"image_width"`
	Height       int           `json:"image_height"`
	TagString    string        `json:"tag_string"`
	Score        int           `json:"score"`
	CreatedAt    string        `json:"created_at"`
	MD5          string        `json:"md5"`
	Rating       string        `json:"rating"`
	Source       string        `json:"source"`
	MediaAsset   apiMediaAsset `json:"media_asset"`
}

// variantByType returns the URL of the named variant, or empty.
func (p *apiPost) variantByType(kind string) string {
	for _, v := range p.MediaAsset.Variants {
		if v.Type == kind {
			return v.URL
		}
	}
	return ""
}

// widestVariant returns the URL of the variant with the greatest width.
func (p *apiPost) widestVariant() string {
	best := ""
	bestWidth := -1
	for _, v := range p.MediaAsset.Variants {
		if v.Width > bestWidth {
			best = v.URL
			bestWidth = v.Width
		}
	}
	return best
}

func (p *apiPost) normalize() *booru.Post {
	fileURL := p.FileURL
	if fileURL == "" {
		if fileURL = p.variantByType("original"); fileURL == "" {
			fileURL = p.widestVariant()
		}
	}

	previewURL := p.PreviewURL
	if previewURL == "" {
		previewURL = p.variantByType("180x180")
	}

	sampleURL := p.LargeFileURL
	if sampleURL == "" {
		if sampleURL = p.variantByType("sample"); sampleURL == "" {
			// No sample rendition at all: reuse the best file URL.
			sampleURL = fileURL
		}
	}

	return &booru.Post{
		ID:         p.ID.String(),
		FileURL:    danbooru.EnsureAbsoluteURL(fileURL, baseURL),
		SampleURL:  danbooru.EnsureAbsoluteURL(sampleURL, baseURL),
		PreviewURL: danbooru.EnsureAbsoluteURL(previewURL, baseURL),
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

func parsePosts(body []byte) ([]*booru.Post, error) {
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
		posts = append(posts, p.normalize())
	}

	return posts, nil
}

func parseSinglePost(body []byte) ([]*booru.Post, error) {
	var p apiPost
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parse post: %w", err)
	}

	return []*booru.Post{p.normalize()}, nil
}
