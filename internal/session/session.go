package session

import "time"

// Session is the state the auth context derives from the token. It is
// recomputed on every check, never persisted separately.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Admin         bool   `json:"admin"`
	Email         string `json:"email"`
}

// Anonymous is the zero state used whenever no usable token exists.
func Anonymous() Session {
	return Session{}
}

// FromToken re-derives session state from a raw bearer token. An empty,
// malformed or expired token yields the anonymous session.
func FromToken(token string, now time.Time) Session {
	if token == "" {
		return Anonymous()
	}
	claims, err := ParseClaims(token)
	if err != nil {
		return Anonymous()
	}
	if !claims.ValidAt(now) {
		return Anonymous()
	}
	return Session{
		Authenticated: true,
		Admin:         claims.IsAdmin(),
		Email:         claims.Subject,
	}
}
