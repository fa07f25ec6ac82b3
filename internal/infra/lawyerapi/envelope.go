package lawyerapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

// envelope reads the fields of a service response by JSONPath.
type envelope struct {
	message     string
	providers   string
	caseDomains string
}

func newEnvelope(cfg domain.EnvelopeConfig) (envelope, error) {
	e := envelope{
		message:     strings.TrimSpace(cfg.Message),
		providers:   strings.TrimSpace(cfg.Providers),
		caseDomains: strings.TrimSpace(cfg.CaseDomains),
	}
	for _, expr := range []string{e.message, e.providers, e.caseDomains} {
		if expr == "" {
			return envelope{}, fmt.Errorf("empty jsonpath expression")
		}
		if _, err := jsonpath.New(expr); err != nil {
			return envelope{}, fmt.Errorf("jsonpath %q: %w", expr, err)
		}
	}
	return e, nil
}

// Message returns the service message, or "" when it is absent or not a string.
func (e envelope) Message(doc any) string {
	v, ok := lookup(e.message, doc)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// List returns the array at expr. A missing or null field is an empty list.
func (e envelope) List(expr string, doc any) ([]any, error) {
	v, ok := lookup(expr, doc)
	if !ok {
		return []any{}, nil
	}
	arr, isArr := v.([]any)
	if !isArr {
		return nil, fmt.Errorf("%s: expected an array, got %T", expr, v)
	}
	return arr, nil
}

// lookup treats any evaluation error as a missing field; expressions were
// compiled when the envelope was built.
func lookup(expr string, doc any) (any, bool) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
