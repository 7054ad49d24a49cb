package booru

// PostQuery is the parameter bag for a post search.
// Adapters clamp Limit to their provider-specific maximum.
type PostQuery struct {
	// Tags is the space-delimited search expression.
	Tags string
	// Limit is the page size.
	Limit int
	// Page is the 0-based page index. Adapters translate it to the
	// provider's own pagination scheme.
	Page int
	// ID restricts the search to a single post when non-empty.
	ID string
}

// NewPostQuery returns a PostQuery with the default page size.
func NewPostQuery() PostQuery {
	return PostQuery{Limit: 20}
}

// TagQuery is the parameter bag for a tag search.
type TagQuery struct {
	// NamePattern is a prefix pattern matched against tag names.
	NamePattern string
	Limit       int
	// ID restricts the search to a single tag when non-empty.
	ID string
}

// NewTagQuery returns a TagQuery with the default page size.
func NewTagQuery() TagQuery {
	return TagQuery{Limit: 100}
}

// CommentQuery is the parameter bag for a comment search.
type CommentQuery struct {
	// PostID selects the post whose comments are fetched.
	PostID string
	Limit  int
}

// NewCommentQuery returns a CommentQuery with the default page size.
func NewCommentQuery() CommentQuery {
	return CommentQuery{Limit: 20}
}
