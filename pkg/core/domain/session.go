package domain

// Session is the authenticated identity: who is logged in plus the bearer
// token proving it. Both fields are set together or not at all; the token is
// opaque to the client and trusted until the backend rejects it.
type Session struct {
	Username string
	Token    string
}

// Authenticated reports whether a token is held.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
