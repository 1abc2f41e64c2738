package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeAgo formats the age of t relative to now.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2 Jan 2006")
	}
}

// TimeRemaining formats how long a story has left before expiry.
func TimeRemaining(expiresAt, now time.Time) string {
	d := expiresAt.Sub(now)
	switch {
	case d < time.Minute:
		return "Expiring soon"
	case d < time.Hour:
		return fmt.Sprintf("%dm left", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh left", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd left", int(d.Hours()/24))
	}
}

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
