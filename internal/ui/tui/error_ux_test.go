package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unauthenticated", fmt.Errorf("lawyers list: %w", domain.ErrUnauthenticated), "Not Authorized: sign in with `onlawthink login --token <token>`"},
		{"service message", &domain.ServiceError{Status: 404, Message: "No lawyers found for case domain Tax"}, "No lawyers found for case domain Tax"},
		{"service no message", &domain.ServiceError{Status: 500}, "Directory service error"},
		{"transport", &domain.OpError{Op: "lawyerapi.list", Kind: domain.KindTransport, Err: errors.New("dial tcp")}, "Directory service unreachable (see logs)"},
		{"decode", &domain.OpError{Op: "lawyerapi.list", Kind: domain.KindDecode, Err: errors.New("bad json")}, "Unexpected answer from the directory service (see logs)"},
		{"config line", &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/w/onlawthink.yaml", Err: errors.New("yaml: line 4: did not find expected key")}, "Invalid YAML at onlawthink.yaml line 4"},
		{"config field", &domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig, Path: "/w/onlawthink.yaml", Err: errors.New("field service.base_url: must be http or https")}, "Invalid service.base_url in onlawthink.yaml"},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "onlawthink.yaml not found (run `onlawthink init`)"},
		{"other", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := UserMessage(c.err); got != c.want {
				t.Fatalf("UserMessage() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("abcdef", 4); got != "abc…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("abc", 10); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}
