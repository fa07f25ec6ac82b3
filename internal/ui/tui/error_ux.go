package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns an error into a short line fit for the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, domain.ErrUnauthenticated) {
		return "Not Authorized: sign in with `onlawthink login --token <token>`"
	}

	if se, ok := domain.AsServiceError(err); ok {
		if strings.TrimSpace(se.Message) != "" {
			return se.Message
		}
		return "Directory service error"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlfixtures") {
				return "Fixture file not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "onlawthink.yaml not found (run `onlawthink init`)"
			}
			return "Not found"

		case domain.KindTransport:
			return "Directory service unreachable (see logs)"

		case domain.KindDecode:
			return "Unexpected answer from the directory service (see logs)"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			return "Invalid config"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	i := strings.Index(s, "field ")
	if i < 0 {
		return ""
	}
	rest := s[i+len("field "):]
	if j := strings.Index(rest, ":"); j > 0 {
		return rest[:j]
	}
	return ""
}
