package contract

import "sahasrayogam-be/internal/viewer"

// SessionRepository keeps viewer state between requests, keyed by session id.
type SessionRepository interface {
	Save(sessionId string, state viewer.State)
	Get(sessionId string) (viewer.State, bool)
	Delete(sessionId string)
}
