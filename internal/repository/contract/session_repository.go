package contract

import "lumera-client/internal/entity"

// SessionRepository is the durable store for the current session, the
// counterpart of the browser's localStorage entries "token" and "user".
//
// Get never fails: a missing or unreadable store reads as the empty session.
// Set persists token and user atomically so no reader ever observes one
// without the other. Only the auth flow and the session-expiry handler may
// call Set/Clear; everything else is read-only.
type SessionRepository interface {
	Get() entity.Session
	Set(token string, user entity.User) error
	Clear() error
}
