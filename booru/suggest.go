package booru

import (
	"encoding/json"
	"strings"
)

// suggestionEntry covers the object shapes booru autocomplete endpoints
// return: some use label/value pairs, others a bare name field.
type suggestionEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Name  string `json:"name"`
}

// ParseSuggestions normalizes a raw autocomplete response body into a flat
// ordered list of suggestion strings. Entries may be objects carrying
// label/value/name keys or bare strings. Trailing parenthetical post counts
// like " (1234)" are stripped from every label.
func ParseSuggestions(raw []byte) ([]string, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(entries))
	for _, entry := range entries {
		var name string

		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			name = s
		} else {
			var obj suggestionEntry
			if err := json.Unmarshal(entry, &obj); err != nil {
				continue
			}
			switch {
			case obj.Value != "":
				name = obj.Value
			case obj.Label != "":
				name = obj.Label
			default:
				name = obj.Name
			}
		}

		name = CleanSuggestion(name)
		if name != "" {
			suggestions = append(suggestions, name)
		}
	}

	return suggestions, nil
}

// CleanSuggestion strips a trailing parenthetical count from a suggestion label.
func CleanSuggestion(label string) string {
	if idx := strings.Index(label, " ("); idx >= 0 {
		return label[:idx]
	}
	return label
}
