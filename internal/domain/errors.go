package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidRecord   = errors.New("invalid provider record")
	ErrUnauthenticated = errors.New("not authenticated")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindTransport     ErrorKind = "transport"
	KindDecode        ErrorKind = "decode"
	KindService       ErrorKind = "service"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path or endpoint
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ServiceError is a response the directory service produced on purpose: the request
// reached it and it answered with a non-success status. Message is the service's own
// text and may be empty.
type ServiceError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("%s: service responded %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: service responded %d: %s", e.Op, e.Status, e.Message)
}

// AsServiceError reports whether err carries a ServiceError anywhere in its chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsKind helps callers classify errors without depending on infra packages.
// A ServiceError is reported as KindService.
func IsKind(err error, kind ErrorKind) bool {
	if kind == KindService {
		_, ok := AsServiceError(err)
		return ok
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
