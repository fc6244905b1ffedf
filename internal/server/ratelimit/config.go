package ratelimit

import "time"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (a trailing "/" matches by prefix)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromSettings builds the limiter configuration from the per-minute default
// limit and burst. A zero limit disables rate limiting.
func FromSettings(requestsPerMinute, burst int) *Config {
	if requestsPerMinute <= 0 {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    requestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    burst,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: digest generation rewrites stored state
		{Path: "/digest", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},

		// Tier 2: other writes
		{Path: "/preferences", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/status/", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/saved/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: scoring and reads use the default limit
		// Tier 4: health check is unlimited, see MatchEndpoint
	}
}
