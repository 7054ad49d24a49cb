// Package media classifies post assets and resolves the best displayable URL.
//
// Everything here is a pure function over a Post: no I/O, no mutable state.
package media

import (
	"net/url"
	"path"
	"strings"

	"github.com/boorusan-cli/boorusan/booru"
)

// Type is the coarse media classification of a post asset.
type Type int

const (
	Unknown Type = iota
	Image
	Video
)

// String returns the display label for the media type.
func (t Type) String() string {
	switch t {
	case Image:
		return "Image"
	case Video:
		return "Video"
	default:
		return "Unknown"
	}
}

var videoExtensions = []string{
	".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mkv", ".m4v", ".3gp", ".ogv",
}

var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff", ".svg",
}

// TypeOf classifies a post by inspecting its URLs in file, sample, preview
// priority order. The first URL that classifies decides.
func TypeOf(post *booru.Post) Type {
	if post == nil {
		return Unknown
	}

	for _, u := range []string{post.FileURL, post.SampleURL, post.PreviewURL} {
		if u == "" {
			continue
		}
		if t := TypeOfURL(u); t != Unknown {
			return t
		}
	}

	return Unknown
}

// TypeOfURL classifies a single URL by file extension, falling back to
// substring heuristics for extensionless URLs (CDN links carrying the format
// in a query parameter or path segment).
func TypeOfURL(rawURL string) Type {
	if rawURL == "" {
		return Unknown
	}

	ext := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(parsed.Path))
	} else {
		ext = strings.ToLower(path.Ext(rawURL))
	}

	for _, v := range videoExtensions {
		if ext == v {
			return Video
		}
	}
	for _, i := range imageExtensions {
		if ext == i {
			return Image
		}
	}

	if ext == "" {
		lower := strings.ToLower(rawURL)
		if strings.Contains(lower, "video") || strings.Contains(lower, ".mp4") || strings.Contains(lower, ".webm") {
			return Video
		}
		if strings.Contains(lower, "image") || strings.Contains(lower, ".jpg") || strings.Contains(lower, ".png") {
			return Image
		}
	}

	return Unknown
}

// BestURL resolves the most suitable asset URL for the preferred type.
// It never returns a "missing" signal distinct from the empty string: when
// nothing matches the preferred type it falls back to the first non-empty of
// file, sample, preview.
func BestURL(post *booru.Post, preferred Type) string {
	if post == nil {
		return ""
	}

	want := preferred
	if want == Unknown {
		want = TypeOf(post)
	}

	switch want {
	case Video:
		// Full quality first for videos.
		if post.FileURL != "" && TypeOfURL(post.FileURL) == Video {
			return post.FileURL
		}
		if post.SampleURL != "" && TypeOfURL(post.SampleURL) == Video {
			return post.SampleURL
		}
	case Image:
		// Sample is usually the right size/quality trade-off for images.
		if post.SampleURL != "" && TypeOfURL(post.SampleURL) == Image {
			return post.SampleURL
		}
		if post.FileURL != "" && TypeOfURL(post.FileURL) == Image {
			return post.FileURL
		}
	}

	for _, u := range []string{post.FileURL, post.SampleURL, post.PreviewURL} {
		if u != "" {
			return u
		}
	}
	return ""
}

// PreviewURL resolves a thumbnail URL. Videos without an explicit preview
// yield the empty string; the caller is expected to render a placeholder
// rather than a video frame.
func PreviewURL(post *booru.Post) string {
	if post == nil {
		return ""
	}

	if post.PreviewURL != "" {
		return post.PreviewURL
	}

	if TypeOf(post) == Image {
		if post.SampleURL != "" {
			return post.SampleURL
		}
		return post.FileURL
	}

	return ""
}

// IsVideo reports whether the post classifies as a video.
func IsVideo(post *booru.Post) bool {
	return TypeOf(post) == Video
}

// IsImage reports whether the post classifies as an image.
func IsImage(post *booru.Post) bool {
	return TypeOf(post) == Image
}

// Extension returns the lowercase file extension (with dot) of the post's
// best URL, or empty when it cannot be determined.
func Extension(post *booru.Post) string {
	u := BestURL(post, Unknown)
	if u == "" {
		return ""
	}
	if parsed, err := url.Parse(u); err == nil {
		return strings.ToLower(path.Ext(parsed.Path))
	}
	return strings.ToLower(path.Ext(u))
}
