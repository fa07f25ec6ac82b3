package ports

// SessionSource reports whether the current viewer is signed in.
// Callers ask on every render pass; implementations must not cache the answer.
type SessionSource interface {
	IsAuthenticated() bool
}

// SessionStore persists the session token between runs.
type SessionStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
