// Package booru defines the domain models and interfaces for booru board access.
package booru

import "fmt"

// Post represents a single media submission normalized from a provider response.
//
// The three URL fields are quality tiers; any of them may be empty, meaning
// "unavailable". Posts are constructed fresh per API response and are not
// mutated afterwards.
type Post struct {
	// ID is the provider-native identifier. Not assumed numeric.
	ID string `json:"id"`
	// FileURL is the full-quality asset URL.
	FileURL string `json:"file_url"`
	// SampleURL is the reduced-quality asset URL.
	SampleURL string `json:"sample_url"`
	// PreviewURL is the thumbnail URL.
	PreviewURL string `json:"preview_url"`
	// Width and Height are pixel dimensions, 0 when unknown.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Tags is the provider's raw space-delimited tag string. This layer
	// does not decompose it.
	Tags string `json:"tags"`
	// Score may be negative.
	Score int `json:"score"`
	// CreatedAt is the provider-formatted timestamp, kept opaque.
	CreatedAt string `json:"created_at"`
	// MD5 is the hex checksum, may be empty.
	MD5 string `json:"md5"`
	// Rating is the normalized sensitivity label.
	Rating Rating `json:"rating"`
	// Source is free-text attribution.
	Source string `json:"source"`
}

// String returns a short display representation of the post.
func (p *Post) String() string {
	return fmt.Sprintf("#%s (%dx%d, score %d)", p.ID, p.Width, p.Height, p.Score)
}
