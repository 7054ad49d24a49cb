package booru

// Category is the normalized taxonomy bucket of a tag.
type Category string

const (
	CategoryGeneral   Category = "general"
	CategoryArtist    Category = "artist"
	CategoryCopyright Category = "copyright"
	CategoryCharacter Category = "character"
	CategoryMeta      Category = "meta"
)

// ParseCategory normalizes a Danbooru-style numeric tag category.
// Code 2 is unassigned upstream and intentionally falls through to general,
// as does any other unmapped value.
func ParseCategory(code int) Category {
	switch code {
	case 0:
		return CategoryGeneral
	case 1:
		return CategoryArtist
	case 3:
		return CategoryCopyright
	case 4:
		return CategoryCharacter
	case 5:
		return CategoryMeta
	default:
		return CategoryGeneral
	}
}

// Tag represents a searchable label with its usage statistics.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	// Category is the normalized taxonomy bucket.
	Category Category `json:"category"`
	// Ambiguous reports whether the board flags the tag as ambiguous.
	Ambiguous bool `json:"ambiguous"`
}

// String returns the tag name.
func (t *Tag) String() string {
	return t.Name
}
