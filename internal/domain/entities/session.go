package entities

// Session carries the caller's backend credential for one request. The zero
// value is an anonymous caller.
type Session struct {
	// Token is the value of the backend session cookie.
	Token string
	// VisitorID identifies the browser for view state, signed in or not.
	VisitorID string
}

// Authenticated reports whether a backend credential is present
func (s Session) Authenticated() bool {
	return s.Token != ""
}
