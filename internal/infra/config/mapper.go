package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

// MapConfig applies the parsed file on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	svc := &cfg.Service
	if s := strings.TrimSpace(y.Service.BaseURL); s != "" {
		if err := checkBaseURL(s); err != nil {
			return domain.Config{}, invalidField(path, "service.base_url", err.Error())
		}
		svc.BaseURL = strings.TrimRight(s, "/")
	}
	if y.Service.Timeout != "" {
		d, err := parsePositiveDuration(y.Service.Timeout)
		if err != nil {
			return domain.Config{}, invalidField(path, "service.timeout", err.Error())
		}
		svc.Timeout = d
	}

	setPath := func(field, in string, dst *string) error {
		in = strings.TrimSpace(in)
		if in == "" {
			return nil
		}
		if !strings.HasPrefix(in, "/") {
			return invalidField(path, field, "path must start with /")
		}
		*dst = in
		return nil
	}
	if err := setPath("service.paths.list_providers", y.Service.Paths.ListProviders, &svc.Paths.ListProviders); err != nil {
		return domain.Config{}, err
	}
	if err := setPath("service.paths.list_case_domains", y.Service.Paths.ListCaseDomains, &svc.Paths.ListCaseDomains); err != nil {
		return domain.Config{}, err
	}
	if err := setPath("service.paths.query_by_case_domain", y.Service.Paths.QueryByCaseDomain, &svc.Paths.QueryByCaseDomain); err != nil {
		return domain.Config{}, err
	}

	setExpr := func(field, in string, dst *string) error {
		in = strings.TrimSpace(in)
		if in == "" {
			return nil
		}
		if !strings.HasPrefix(in, "$") {
			return invalidField(path, field, "jsonpath must start with $")
		}
		*dst = in
		return nil
	}
	if err := setExpr("service.envelope.message", y.Service.Envelope.Message, &svc.Envelope.Message); err != nil {
		return domain.Config{}, err
	}
	if err := setExpr("service.envelope.providers", y.Service.Envelope.Providers, &svc.Envelope.Providers); err != nil {
		return domain.Config{}, err
	}
	if err := setExpr("service.envelope.case_domains", y.Service.Envelope.CaseDomains, &svc.Envelope.CaseDomains); err != nil {
		return domain.Config{}, err
	}

	b := y.Service.Breaker
	if b.Enabled != nil {
		svc.Breaker.Enabled = *b.Enabled
	}
	if b.MinRequests != nil {
		svc.Breaker.MinRequests = *b.MinRequests
	}
	if b.FailureRatio != nil {
		if *b.FailureRatio <= 0 || *b.FailureRatio > 1 {
			return domain.Config{}, invalidField(path, "service.breaker.failure_ratio", "must be in (0, 1]")
		}
		svc.Breaker.FailureRatio = *b.FailureRatio
	}
	if b.OpenTimeout != "" {
		d, err := parsePositiveDuration(b.OpenTimeout)
		if err != nil {
			return domain.Config{}, invalidField(path, "service.breaker.open_timeout", err.Error())
		}
		svc.Breaker.OpenTimeout = d
	}
	if b.Interval != "" {
		d, err := parsePositiveDuration(b.Interval)
		if err != nil {
			return domain.Config{}, invalidField(path, "service.breaker.interval", err.Error())
		}
		svc.Breaker.Interval = d
	}

	if y.Session.Token != "" {
		cfg.Session.Token = strings.TrimSpace(y.Session.Token)
	}
	if y.Session.TokenEnv != "" {
		cfg.Session.TokenEnv = y.Session.TokenEnv
	}
	if y.Session.SigningKeyEnv != "" {
		cfg.Session.SigningKeyEnv = y.Session.SigningKeyEnv
	}
	if y.Session.File != "" {
		cfg.Session.File = y.Session.File
	}

	cfg.Metrics.Addr = strings.TrimSpace(y.Metrics.Addr)

	if y.Log.Debug != nil {
		cfg.Log.Debug = *y.Log.Debug
	}

	return cfg, nil
}

func checkBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
