package utils

import "time"

// FormatUnix renders a unix-seconds timestamp as RFC3339 in UTC, "" for zero.
func FormatUnix(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
