package booru

import "time"

// Status is the transient result of a provider connectivity probe.
// It is produced fresh by every check and never cached.
type Status struct {
	// OK reports whether the probe succeeded.
	OK bool `json:"ok"`
	// Message is a human-readable outcome description.
	Message string `json:"message"`
	// CheckedAt is the probe timestamp.
	CheckedAt time.Time `json:"checked_at"`
}

// StatusOK builds a successful Status stamped with the current time.
func StatusOK(message string) Status {
	return Status{OK: true, Message: message, CheckedAt: time.Now()}
}

// StatusFailed builds a failed Status stamped with the current time.
func StatusFailed(message string) Status {
	return Status{OK: false, Message: message, CheckedAt: time.Now()}
}
