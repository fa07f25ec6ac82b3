package domain

import "fmt"

// FetchKind names an independent stream of requests issued by a view.
type FetchKind string

const (
	FetchAll      FetchKind = "all"
	FetchCatalog  FetchKind = "catalog"
	FetchFiltered FetchKind = "filtered"
)

// RequestToken identifies one issued request. Only the most recently issued token of
// each kind is current.
type RequestToken struct {
	Kind FetchKind
	Seq  uint64
}

func (t RequestToken) String() string {
	return fmt.Sprintf("%s#%d", t.Kind, t.Seq)
}

// TokenSequencer issues request tokens for one view.
// It is not safe for concurrent use; the owning event loop serializes access.
type TokenSequencer struct {
	latest map[FetchKind]uint64
	closed bool
}

func NewTokenSequencer() *TokenSequencer {
	return &TokenSequencer{latest: map[FetchKind]uint64{}}
}

// Issue returns a new token for kind, superseding every earlier token of that kind.
func (s *TokenSequencer) Issue(kind FetchKind) RequestToken {
	s.latest[kind]++
	return RequestToken{Kind: kind, Seq: s.latest[kind]}
}

// IsCurrent reports whether a result carrying t may still be applied.
func (s *TokenSequencer) IsCurrent(t RequestToken) bool {
	if s.closed || t.Seq == 0 {
		return false
	}
	return s.latest[t.Kind] == t.Seq
}

// Invalidate retires every outstanding token. Tokens issued afterwards are never
// current either.
func (s *TokenSequencer) Invalidate() {
	s.closed = true
}

func (s *TokenSequencer) Closed() bool { return s.closed }
