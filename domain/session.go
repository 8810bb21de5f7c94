package domain

import "time"

// Session binds an authenticated identity to one transport connection.
// It exists between a successful login and the connection close.
type Session struct {
	Identity   Identity
	ConnID     string
	LoggedInAt time.Time
}

func (s Session) IdentityID() string {
	return s.Identity.ID
}

func (s Session) IsAdmin() bool {
	return s.Identity.Admin
}
