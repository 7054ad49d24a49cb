package booru

// AnonymousCreator is the display name used when a comment carries no creator.
const AnonymousCreator = "Anonymous"

// Comment represents a user comment attached to a post.
type Comment struct {
	ID string `json:"id"`
	// PostID is a foreign key by value, not a reference.
	PostID string `json:"post_id"`
	// Creator is the commenter's display name, AnonymousCreator when absent.
	Creator   string `json:"creator"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}
