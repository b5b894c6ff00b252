package config

import "time"

const (
	defaultPushlogTimeout = 30 * time.Second
	defaultLookupCacheTTL = 5 * time.Minute
	minPushlogTimeout     = time.Second
	maxPushlogTimeout     = 5 * time.Minute
)

// PushlogConfig contains configuration for the upstream pushlog lookup service.
type PushlogConfig struct {
	// BaseURL is the root of the revision-lookup API, without a trailing slash.
	BaseURL string `env:"PUSHLOG_BASE_URL" envDefault:"http://localhost:8000/api/revision-lookup"`

	// Timeout bounds each pushlog HTTP request. There are no automatic retries;
	// a timeout is a hard error for that call.
	Timeout time.Duration `env:"PUSHLOG_TIMEOUT" envDefault:"30s"`

	// LookupCacheTTL is how long successful revision lookups are cached in Redis.
	LookupCacheTTL time.Duration `env:"PUSHLOG_LOOKUP_CACHE_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to pushlog configuration values.
func (p *PushlogConfig) Sanitize() {
	if p.Timeout <= 0 {
		p.Timeout = defaultPushlogTimeout
	}
	if p.Timeout < minPushlogTimeout {
		p.Timeout = minPushlogTimeout
	}
	if p.Timeout > maxPushlogTimeout {
		p.Timeout = maxPushlogTimeout
	}
	if p.LookupCacheTTL <= 0 {
		p.LookupCacheTTL = defaultLookupCacheTTL
	}
}
