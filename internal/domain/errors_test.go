package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("connection refused")
	err := &OpError{Op: "lawyerapi.list_providers", Kind: KindTransport, Err: root}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !IsKind(err, KindTransport) {
		t.Fatalf("expected IsKind transport")
	}
	if IsKind(err, KindDecode) {
		t.Fatalf("did not expect IsKind decode")
	}
}

func TestIsKindService(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ServiceError{Op: "x", Status: 404, Message: "none"})

	if !IsKind(err, KindService) {
		t.Fatalf("expected IsKind service")
	}
	se, ok := AsServiceError(err)
	if !ok || se.Message != "none" || se.Status != 404 {
		t.Fatalf("unexpected service error: %#v", se)
	}
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, OutcomeNone},
		{"service", &ServiceError{Status: 500}, OutcomeServiceError},
		{"transport", &OpError{Kind: KindTransport, Err: errors.New("eof")}, OutcomeTransportFailure},
		{"decode", &OpError{Kind: KindDecode, Err: errors.New("bad json")}, OutcomeTransportFailure},
		{"plain", errors.New("boom"), OutcomeTransportFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyError(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
