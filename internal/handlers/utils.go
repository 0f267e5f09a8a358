package handlers

import (
	"time"

	"finledger/internal/session"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for calendar dates in queries and payloads
const dateLayout = "2006-01-02"

// getSession extracts the authenticated session placed in the context by the
// auth middleware
func getSession(c echo.Context) (session.Session, error) {
	sess, ok := c.Get(SessionContextKey).(session.Session)
	if !ok || !sess.Valid() {
		return session.Session{}, session.ErrNoSession
	}
	return sess, nil
}

// parseDate parses a YYYY-MM-DD calendar date, with an RFC 3339 timestamp
// accepted as a fallback
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
