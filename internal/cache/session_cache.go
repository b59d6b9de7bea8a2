package cache

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

const (
	sessionKeyPrefix       = "session:"
	sessionCleanupInterval = 5 * time.Minute
)

// SessionCache is the server-side session store. Sessions expire after ttl
// and are swept by go-cache's janitor. Safe for concurrent use.
type SessionCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewSessionCache creates a session store with a fixed session lifetime
func NewSessionCache(ttl time.Duration) *SessionCache {
	sc := &SessionCache{
		cache: gocache.New(ttl, sessionCleanupInterval),
		ttl:   ttl,
	}
	sc.cache.OnEvicted(func(string, interface{}) {
		metrics.ActiveSessions.Set(float64(sc.cache.ItemCount()))
	})
	return sc
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create opens a new session for user under a random id
func (sc *SessionCache) Create(user models.SessionUser) *models.Session {
	session := &models.Session{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(sc.ttl),
	}
	sc.cache.Set(sessionKey(session.ID), session, sc.ttl)
	metrics.ActiveSessions.Set(float64(sc.cache.ItemCount()))

	logger.Debug("Session created", zap.Int64("user_id", user.UserID))
	return session
}

// Get returns the live session with id, if any
func (sc *SessionCache) Get(id string) (*models.Session, bool) {
	if id == "" {
		return nil, false
	}
	value, found := sc.cache.Get(sessionKey(id))
	if !found {
		return nil, false
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil, false
	}
	return session, true
}

// Delete ends the session. Unknown ids are ignored.
func (sc *SessionCache) Delete(id string) {
	sc.cache.Delete(sessionKey(id))
	metrics.ActiveSessions.Set(float64(sc.cache.ItemCount()))
}

// UpdateUser rewrites the identity of every live session of user.UserID,
// keeping each session's expiry. Returns how many sessions changed.
func (sc *SessionCache) UpdateUser(user models.SessionUser) int {
	updated := 0
	for key, item := range sc.cache.Items() {
		session, ok := item.Object.(*models.Session)
		if !ok || session.User.UserID != user.UserID {
			continue
		}

		remaining := time.Until(session.ExpiresAt)
		if remaining <= 0 {
			continue
		}

		// sessions are shared by pointer, so store a copy instead of mutating
		next := *session
		next.User = user
		if err := sc.cache.Replace(key, &next, remaining); err == nil {
			updated++
		}
	}
	return updated
}

// Count returns the number of stored sessions, including expired ones not yet swept
func (sc *SessionCache) Count() int {
	return sc.cache.ItemCount()
}
