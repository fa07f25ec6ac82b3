package config

// YAMLConfig mirrors onlawthink.yaml. Pointer and empty-string fields mean
// "keep the default".
type YAMLConfig struct {
	Service YAMLService `yaml:"service"`
	Session YAMLSession `yaml:"session"`
	Metrics YAMLMetrics `yaml:"metrics"`
	Log     YAMLLog     `yaml:"log"`
}

type YAMLService struct {
	BaseURL  string       `yaml:"base_url"`
	Timeout  string       `yaml:"timeout"`
	Paths    YAMLPaths    `yaml:"paths"`
	Envelope YAMLEnvelope `yaml:"envelope"`
	Breaker  YAMLBreaker  `yaml:"breaker"`
}

type YAMLPaths struct {
	ListProviders     string `yaml:"list_providers"`
	ListCaseDomains   string `yaml:"list_case_domains"`
	QueryByCaseDomain string `yaml:"query_by_case_domain"`
}

type YAMLEnvelope struct {
	Message     string `yaml:"message"`
	Providers   string `yaml:"providers"`
	CaseDomains string `yaml:"case_domains"`
}

type YAMLBreaker struct {
	Enabled      *bool    `yaml:"enabled"`
	MinRequests  *uint32  `yaml:"min_requests"`
	FailureRatio *float64 `yaml:"failure_ratio"`
	OpenTimeout  string   `yaml:"open_timeout"`
	Interval     string   `yaml:"interval"`
}

type YAMLSession struct {
	Token         string `yaml:"token"`
	TokenEnv      string `yaml:"token_env"`
	SigningKeyEnv string `yaml:"signing_key_env"`
	File          string `yaml:"file"`
}

type YAMLMetrics struct {
	Addr string `yaml:"addr"`
}

type YAMLLog struct {
	Debug *bool `yaml:"debug"`
}
