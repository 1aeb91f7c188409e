package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Levilutz/word-hunt/internal/config"
)

const (
	// SessionCookie carries the opaque per-client session token.
	SessionCookie = "session_id"

	// SessionHeader is the cookie-less fallback for clients that cannot
	// hold cookies (e.g. native apps).
	SessionHeader = "X-Session-Id"

	sessionContextKey = "wordhunt_session_id"

	sessionCookieMaxAge = 365 * 24 * 60 * 60
)

// Session resolves the caller's session id from the cookie or header, or
// issues a fresh one and sets the cookie. The id is opaque: it is the
// only identity the service knows.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			raw = c.GetHeader(SessionHeader)
		}

		sessionID, parseErr := uuid.Parse(raw)
		if raw == "" || parseErr != nil {
			if raw != "" {
				log.Printf("[SESSION] Replacing malformed session id %q", raw)
			}
			sessionID = uuid.New()
			secure := cfg.Environment != "development"
			c.SetCookie(SessionCookie, sessionID.String(), sessionCookieMaxAge, "/", "", secure, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session id resolved by the Session middleware.
// Aborts with 500 if the middleware did not run; every game route depends
// on it.
func SessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session middleware not installed"})
		return uuid.Nil, false
	}
	return value.(uuid.UUID), true
}
