package memory

import (
	"lumera-client/internal/entity"
	"lumera-client/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const sessionKey = "session"

// SessionRepository keeps the session in process memory only. Selected via
// EPHEMERAL_SESSION=true when nothing should survive process exit.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() contract.SessionRepository {
	// No expiration: the session lives until Clear or process exit,
	// matching the durable store's no-automatic-expiry behavior
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) Get() entity.Session {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(entity.Session)
	}
	return entity.Session{}
}

func (r *SessionRepository) Set(token string, user entity.User) error {
	r.cache.Set(sessionKey, entity.Session{Token: token, User: &user}, cache.NoExpiration)
	return nil
}

func (r *SessionRepository) Clear() error {
	r.cache.Delete(sessionKey)
	return nil
}
