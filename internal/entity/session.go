package entity

import "time"

// Session is server-side state for one client, keyed by an opaque identifier
// carried in a cookie.
type Session struct {
	ID           string
	Data         map[string]string
	LastAccessed time.Time
}
