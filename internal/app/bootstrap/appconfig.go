// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and other framework-level settings; everything
// specific to the engagement dashboard lives here.
type AppConfig struct {
	// Membership platform API
	WhopAPIKey  string // Server-side API key; empty means no live member data
	WhopAPIBase string // REST API root (e.g., https://api.whop.com/api/v5)

	// OAuth client registration
	WhopClientID     string
	WhopClientSecret string
	WhopAuthorizeURL string
	WhopTokenURL     string
	OAuthScopes      string // space separated
	AppURL           string // Public origin used to build the OAuth redirect URI

	// Member data and scoring
	MemberSource       string // auto | live | mock
	EngagementStrategy string // score | category
	WeightLogin        float64
	WeightRecency      float64
	WeightAge          float64
	RankingSize        int // members in top_engaged and at_risk

	// Session management configuration
	SessionKey         string        // Secret key for signing session cookies (must be strong in production)
	SessionName        string        // Cookie name for sessions (default: whop_access_token)
	SessionDomain      string        // Cookie domain (blank means current host)
	SessionMaxAge      time.Duration // Lifetime of a new session
	SessionRenewWithin time.Duration // Re-issue sessions with less than this remaining

	// Access control
	RequireLogin  bool // Put the engagement API behind sign-in
	AuthRateLimit int  // Requests per minute per client on /auth/*
	AuthRateBurst int

	// Outbound call budgets
	TimeoutShort  time.Duration // Token exchange, profile and access checks
	TimeoutMedium time.Duration // Full member listing
}

// OAuthConfigured reports whether sign-in with Whop is possible.
func (c AppConfig) OAuthConfigured() bool {
	return c.WhopClientID != "" && c.WhopClientSecret != ""
}
