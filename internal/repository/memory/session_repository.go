package memory

import (
	"time"

	"ai-legaldoc-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps active sessions in memory. Nothing is persisted
// to durable storage; an expired session simply starts over empty.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for an hour are purged; sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the session for the given id, creating an empty one
// on first use. Touching a session refreshes its expiry.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if s, ok := r.Get(sessionID); ok {
		r.cache.Set(sessionID, s, cache.DefaultExpiration)
		return s
	}
	s := store.NewSession(sessionID)
	r.Save(s)
	return s
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
