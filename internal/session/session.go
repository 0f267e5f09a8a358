package session

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoSession is returned when an operation requires an authenticated
// session and none is present.
var ErrNoSession = errors.New("no authenticated session")

// Session identifies the authenticated user behind a request. It is passed
// explicitly into ledger and report operations; there is no ambient
// current-user state anywhere in the service.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// Valid reports whether the session carries a usable user identity
func (s Session) Valid() bool {
	return s.UserID != uuid.Nil
}
