package session

import (
	"sync/atomic"

	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// Flag is an in-memory session source.
type Flag struct {
	v atomic.Bool
}

func NewFlag(authenticated bool) *Flag {
	f := &Flag{}
	f.v.Store(authenticated)
	return f
}

var _ ports.SessionSource = (*Flag)(nil)

func (f *Flag) Set(authenticated bool) { f.v.Store(authenticated) }

func (f *Flag) IsAuthenticated() bool { return f.v.Load() }
