package session

import "time"

// Session is one in-flight login attempt. It is created when the browser is
// sent to the provider and consumed, at most once, by the callback.
type Session struct {
	ID                string
	ClientRedirectURL string
	State             string
	CreatedAt         time.Time
}
