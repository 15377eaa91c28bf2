// Package cookiestore builds the signed cookie session store used for
// per-browser state such as dashboard notes.
package cookiestore

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// MinKeyLength is the recommended minimum session key length.
const MinKeyLength = 32

// New returns a cookie store signed with sessionKey. The secure flag marks
// cookies Secure; over plain http (local dev) it must be false or browsers
// drop the cookie.
func New(sessionKey string, secure bool, logger *zap.Logger) (*sessions.CookieStore, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥%d random chars", MinKeyLength)
	}
	if len(sessionKey) < MinKeyLength {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session store initialized", zap.Bool("secure", secure))
	return store, nil
}
