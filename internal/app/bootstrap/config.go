// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/whopinsights/internal/app/store/members"
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/app/system/whop"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// devSessionKey is only acceptable outside production.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for Whop Insights.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: whop_api_key, session_name, etc.
//   - Environment variables: WHOPINSIGHTS_WHOP_API_KEY, WHOPINSIGHTS_SESSION_NAME, etc.
//   - Command-line flags: --whop_api_key, --session_name, etc.
var appConfigKeys = []config.AppKey{
	// Membership platform
	{Name: "whop_api_key", Default: "", Desc: "Whop API key for listing members (blank serves mock data)"},
	{Name: "whop_api_base", Default: whop.DefaultAPIBase, Desc: "Whop REST API base URL"},

	// OAuth
	{Name: "whop_client_id", Default: "", Desc: "Whop OAuth client ID"},
	{Name: "whop_client_secret", Default: "", Desc: "Whop OAuth client secret"},
	{Name: "whop_authorize_url", Default: whop.DefaultAuthorizeURL, Desc: "Whop OAuth authorize URL"},
	{Name: "whop_token_url", Default: whop.DefaultTokenURL, Desc: "Whop OAuth token URL"},
	{Name: "oauth_scopes", Default: whop.DefaultScopes, Desc: "OAuth scopes requested at sign-in (space separated)"},
	{Name: "app_url", Default: "http://localhost:3000", Desc: "Public base URL of this app, used for the OAuth redirect URI"},

	// Member data and scoring
	{Name: "member_source", Default: string(members.ModeAuto), Desc: "Member data source: 'auto', 'live' or 'mock'"},
	{Name: "engagement_strategy", Default: string(eng.StrategyScore), Desc: "Default engagement strategy: 'score' or 'category'"},
	{Name: "engagement_weight_login", Default: "0.4", Desc: "Weight of the login component of the engagement score"},
	{Name: "engagement_weight_recency", Default: "0.4", Desc: "Weight of the recency component of the engagement score"},
	{Name: "engagement_weight_age", Default: "0.2", Desc: "Weight of the account-age component of the engagement score"},
	{Name: "ranking_size", Default: eng.DefaultRankingSize, Desc: "Members listed in top_engaged and at_risk"},

	// Sessions
	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: auth.DefaultCookieName, Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "168h", Desc: "Session lifetime (e.g., 168h)"},
	{Name: "session_renew_within", Default: "24h", Desc: "Renew sessions with less than this lifetime left (0 disables)"},

	// Access control
	{Name: "require_login", Default: false, Desc: "Require sign-in for the engagement API"},
	{Name: "auth_rate_limit", Default: 30, Desc: "Requests per minute per client on /auth routes"},
	{Name: "auth_rate_burst", Default: 10, Desc: "Burst size for /auth rate limiting"},

	// Timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for token exchange, profile and access checks"},
	{Name: "timeout_medium", Default: "20s", Desc: "Timeout for listing all members"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, WHOPINSIGHTS_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WHOPINSIGHTS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	weights := map[string]float64{}
	for _, k := range []string{"engagement_weight_login", "engagement_weight_recency", "engagement_weight_age"} {
		v, err := parseWeight(appValues.String(k))
		if err != nil {
			return nil, AppConfig{}, fmt.Errorf("%s: %w", k, err)
		}
		weights[k] = v
	}

	appCfg := AppConfig{
		WhopAPIKey:  appValues.String("whop_api_key"),
		WhopAPIBase: appValues.String("whop_api_base"),

		WhopClientID:     appValues.String("whop_client_id"),
		WhopClientSecret: appValues.String("whop_client_secret"),
		WhopAuthorizeURL: appValues.String("whop_authorize_url"),
		WhopTokenURL:     appValues.String("whop_token_url"),
		OAuthScopes:      appValues.String("oauth_scopes"),
		AppURL:           strings.TrimRight(appValues.String("app_url"), "/"),

		MemberSource:       appValues.String("member_source"),
		EngagementStrategy: appValues.String("engagement_strategy"),
		WeightLogin:        weights["engagement_weight_login"],
		WeightRecency:      weights["engagement_weight_recency"],
		WeightAge:          weights["engagement_weight_age"],
		RankingSize:        appValues.Int("ranking_size"),

		SessionKey:         appValues.String("session_key"),
		SessionName:        appValues.String("session_name"),
		SessionDomain:      appValues.String("session_domain"),
		SessionMaxAge:      appValues.Duration("session_max_age", auth.DefaultMaxAge),
		SessionRenewWithin: appValues.Duration("session_renew_within", auth.DefaultRenewWithin),

		RequireLogin:  appValues.Bool("require_login"),
		AuthRateLimit: appValues.Int("auth_rate_limit"),
		AuthRateBurst: appValues.Int("auth_rate_burst"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 20*time.Second),
	}

	return coreCfg, appCfg, nil
}

func parseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return v, nil
}

// weights returns the configured scoring weights.
func (c AppConfig) weights() eng.Weights {
	return eng.Weights{Login: c.WeightLogin, Recency: c.WeightRecency, Age: c.WeightAge}
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Missing API credentials are not an error: the member source falls back to
// mock data and sign-in reports itself as not configured.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if _, err := members.ParseMode(appCfg.MemberSource); err != nil {
		return err
	}
	if _, err := eng.ParseStrategy(appCfg.EngagementStrategy); err != nil {
		return fmt.Errorf("engagement_strategy: %w", err)
	}
	if err := appCfg.weights().Validate(); err != nil {
		return fmt.Errorf("engagement weights: %w", err)
	}
	if appCfg.RankingSize <= 0 {
		return fmt.Errorf("ranking_size must be positive, got %d", appCfg.RankingSize)
	}

	if err := validateURL("whop_api_base", appCfg.WhopAPIBase); err != nil {
		return err
	}
	if appCfg.OAuthConfigured() {
		for name, v := range map[string]string{
			"app_url":            appCfg.AppURL,
			"whop_authorize_url": appCfg.WhopAuthorizeURL,
			"whop_token_url":     appCfg.WhopTokenURL,
		} {
			if err := validateURL(name, v); err != nil {
				return err
			}
		}
	} else {
		logger.Warn("Whop OAuth client is not configured; sign-in is disabled")
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must be set")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}
	if appCfg.SessionMaxAge <= 0 {
		return fmt.Errorf("session_max_age must be positive")
	}
	if appCfg.SessionRenewWithin < 0 || appCfg.SessionRenewWithin >= appCfg.SessionMaxAge {
		return fmt.Errorf("session_renew_within must be between 0 and session_max_age")
	}

	if appCfg.AuthRateLimit <= 0 || appCfg.AuthRateBurst <= 0 {
		return fmt.Errorf("auth_rate_limit and auth_rate_burst must be positive")
	}
	if appCfg.TimeoutShort <= 0 || appCfg.TimeoutMedium <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
