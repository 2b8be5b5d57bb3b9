package memory

import (
	"time"

	"sahasrayogam-be/internal/viewer"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository expires idle sessions after ttl, purging every
// ttl/6 (at least a minute).
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	cleanup := ttl / 6
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, cleanup),
	}
}

// Save refreshes the expiry of the session.
func (r *SessionRepository) Save(sessionId string, state viewer.State) {
	r.cache.Set(sessionId, state, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (viewer.State, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(viewer.State), true
	}
	return viewer.State{}, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
