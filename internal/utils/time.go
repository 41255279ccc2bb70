package utils

import "time"

// FormatLocal returns the provided time formatted in the machine's local time.
func FormatLocal(t time.Time) string {
	return t.In(time.Local).Format(time.RFC1123)
}

// SetDuration is the time elapsed since the set started, to the second.
func SetDuration(start, now time.Time) time.Duration {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	return now.Sub(start).Round(time.Second)
}
