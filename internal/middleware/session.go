package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "mentorhub_session"

	// SessionContextKey is the key used to store the session in the gin context
	SessionContextKey = "session"

	unauthenticatedMessage = "Please log in to continue."
)

var (
	ErrSessionNotFound = errors.New("session not found in context")
	ErrInvalidSession  = errors.New("invalid session type")
)

// SessionResolver looks up live server-side sessions
type SessionResolver interface {
	Get(id string) (*models.Session, bool)
}

// CookieConfig controls how the session cookie is written
type CookieConfig struct {
	Domain string
	Secure bool
	TTL    time.Duration
}

// SessionMiddleware resolves the session cookie to a live session and stores it
// in the context. Anything else ends the request with 401.
func SessionMiddleware(tokenManager *jwt.TokenManager, sessions SessionResolver, cookieCfg CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			_ = c.Error(fmt.Errorf("missing session cookie")) //nolint:errcheck
			abortUnauthenticated(c)
			return
		}

		claims, err := tokenManager.ValidateToken(cookie)
		if err != nil {
			_ = c.Error(fmt.Errorf("invalid session token: %w", err)) //nolint:errcheck
			ClearSessionCookie(c, cookieCfg)
			abortUnauthenticated(c)
			return
		}

		session, ok := sessions.Get(claims.SessionID)
		if !ok {
			_ = c.Error(fmt.Errorf("session expired or logged out")) //nolint:errcheck
			ClearSessionCookie(c, cookieCfg)
			abortUnauthenticated(c)
			return
		}

		// the token must belong to the user the session was opened for
		userID, err := claims.UserID()
		if err != nil || userID != session.User.UserID {
			_ = c.Error(fmt.Errorf("session token subject mismatch")) //nolint:errcheck
			ClearSessionCookie(c, cookieCfg)
			abortUnauthenticated(c)
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.StatusResponse{
		Success: false,
		Message: unauthenticatedMessage,
	})
}

// GetSession extracts the session stored by SessionMiddleware
func GetSession(c *gin.Context) (*models.Session, error) {
	val, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(*models.Session)
	if !ok {
		return nil, ErrInvalidSession
	}

	return session, nil
}

// SessionIDFromCookie returns the session id carried by a valid cookie, or ""
func SessionIDFromCookie(c *gin.Context, tokenManager *jwt.TokenManager) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return ""
	}
	claims, err := tokenManager.ValidateToken(cookie)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

// SetSessionCookie writes the session cookie
func SetSessionCookie(c *gin.Context, cfg CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		token,
		int(cfg.TTL.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}
