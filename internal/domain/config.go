package domain

import "time"

// Config represents the onlawthink configuration loaded from onlawthink.yaml.
type Config struct {
	Service ServiceConfig
	Session SessionConfig
	Metrics MetricsConfig
	Log     LogConfig
}

type ServiceConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Paths    EndpointPaths
	Envelope EnvelopeConfig
	Breaker  BreakerConfig
}

// EndpointPaths are resolved against ServiceConfig.BaseURL.
type EndpointPaths struct {
	ListProviders     string
	ListCaseDomains   string
	QueryByCaseDomain string
}

// EnvelopeConfig holds the JSONPath of each field read from a service response.
type EnvelopeConfig struct {
	Message     string
	Providers   string
	CaseDomains string
}

// BreakerConfig is opt-in. While open, the breaker answers calls without sending
// them, so a recovered service is not seen until OpenTimeout passes.
type BreakerConfig struct {
	Enabled      bool
	MinRequests  uint32
	FailureRatio float64
	OpenTimeout  time.Duration
	Interval     time.Duration // closed-state window after which failure counts reset
}

type SessionConfig struct {
	Token         string
	TokenEnv      string
	SigningKeyEnv string
	File          string
}

type MetricsConfig struct {
	Addr string
}

type LogConfig struct {
	Debug bool
}

// DefaultConfig provides sane defaults if onlawthink.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 30 * time.Second,
			Paths: EndpointPaths{
				ListProviders:     "/api/lawyer/getAllLawyers",
				ListCaseDomains:   "/api/user/getCaseDomain",
				QueryByCaseDomain: "/api/user/getLawyerByCaseDomain",
			},
			Envelope: EnvelopeConfig{
				Message:     "$.message",
				Providers:   "$.lawyers",
				CaseDomains: "$.caseDomains",
			},
			Breaker: BreakerConfig{
				Enabled:      false,
				MinRequests:  5,
				FailureRatio: 0.8,
				OpenTimeout:  60 * time.Second,
				Interval:     30 * time.Second,
			},
		},
		Session: SessionConfig{
			TokenEnv:      "ONLAWTHINK_TOKEN",
			SigningKeyEnv: "ONLAWTHINK_SIGNING_KEY",
			File:          ".onlawthink/session",
		},
	}
}
