package booru

// Rating is the normalized content-sensitivity label of a post.
type Rating string

const (
	RatingGeneral      Rating = "General"
	RatingSensitive    Rating = "Sensitive"
	RatingQuestionable Rating = "Questionable"
	RatingExplicit     Rating = "Explicit"
	RatingUnknown      Rating = "Unknown"
)

// ParseRating normalizes a Danbooru-style single-letter rating code.
// Unrecognized codes map to Unknown.
func ParseRating(code string) Rating {
	switch code {
	case "g":
		return RatingGeneral
	case "s":
		return RatingSensitive
	case "q":
		return RatingQuestionable
	case "e":
		return RatingExplicit
	default:
		return RatingUnknown
	}
}
