package helpers

import "time"

// FormatTime renders timestamps the way API responses expose them.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
