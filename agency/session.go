package agency

import "github.com/rs/xid"

// Session is the authentication state for one run of the client. It is
// owned by the dispatcher and passed into every façade call; it is
// never global and never persisted.
//
// Invariant: authenticated implies account is the non-empty address
// returned by the last successful unlock or registration.
type Session struct {
	id            xid.ID // correlation id for log events
	account       string
	authenticated bool
}

func NewSession() *Session {
	return &Session{id: xid.New()}
}

func (s *Session) ID() string { return s.id.String() }

// Account returns the active account address, or "" when the session
// is unauthenticated.
func (s *Session) Account() string { return s.account }

func (s *Session) Authenticated() bool { return s.authenticated }

func (s *Session) authenticate(account string) {
	s.account = account
	s.authenticated = true
}

func (s *Session) clear() {
	s.account = ""
	s.authenticated = false
}
