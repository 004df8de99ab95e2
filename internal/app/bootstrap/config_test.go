package bootstrap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/whopinsights/internal/app/store/members"
	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		WhopAPIBase:        "https://api.whop.com/api/v5",
		WhopClientID:       "client",
		WhopClientSecret:   "secret",
		WhopAuthorizeURL:   "https://whop.com/oauth/authorize",
		WhopTokenURL:       "https://api.whop.com/api/v5/oauth/token",
		OAuthScopes:        "user:read companies:read",
		AppURL:             "http://localhost:3000",
		MemberSource:       "auto",
		EngagementStrategy: "score",
		WeightLogin:        0.4,
		WeightRecency:      0.4,
		WeightAge:          0.2,
		RankingSize:        10,
		SessionKey:         "test-session-key-0123456789",
		SessionName:        "whop_access_token",
		SessionMaxAge:      7 * 24 * time.Hour,
		SessionRenewWithin: 24 * time.Hour,
		AuthRateLimit:      30,
		AuthRateBurst:      10,
		TimeoutShort:       5 * time.Second,
		TimeoutMedium:      20 * time.Second,
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	core := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(core, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_AcceptsMissingCredentials(t *testing.T) {
	cfg := validAppConfig()
	cfg.WhopClientID = ""
	cfg.WhopClientSecret = ""
	cfg.AppURL = "not a url"
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, zap.NewNop()); err != nil {
		t.Fatalf("missing OAuth credentials should not fail startup: %v", err)
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantSub string
	}{
		{"bad mode", "dev", func(c *AppConfig) { c.MemberSource = "cache" }, "member source"},
		{"bad strategy", "dev", func(c *AppConfig) { c.EngagementStrategy = "magic" }, "engagement_strategy"},
		{"negative weight", "dev", func(c *AppConfig) { c.WeightAge = -1 }, "weights"},
		{"zero ranking", "dev", func(c *AppConfig) { c.RankingSize = 0 }, "ranking_size"},
		{"relative api base", "dev", func(c *AppConfig) { c.WhopAPIBase = "/api" }, "whop_api_base"},
		{"bad app url", "dev", func(c *AppConfig) { c.AppURL = "localhost:3000" }, "app_url"},
		{"empty session key", "dev", func(c *AppConfig) { c.SessionKey = "" }, "session_key"},
		{"dev key in prod", "prod", func(c *AppConfig) { c.SessionKey = devSessionKey }, "production"},
		{"renew beyond lifetime", "dev", func(c *AppConfig) { c.SessionRenewWithin = 8 * 24 * time.Hour }, "session_renew_within"},
		{"zero rate", "dev", func(c *AppConfig) { c.AuthRateLimit = 0 }, "auth_rate_limit"},
		{"zero timeout", "dev", func(c *AppConfig) { c.TimeoutMedium = 0 }, "timeouts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, zap.NewNop())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseWeight(t *testing.T) {
	v, err := parseWeight(" 0.25 ")
	if err != nil || v != 0.25 {
		t.Fatalf("parseWeight = %v, %v", v, err)
	}
	if _, err := parseWeight("heavy"); err == nil {
		t.Fatal("expected error for non-numeric weight")
	}
}

func TestConnectDB_ResolvesMode(t *testing.T) {
	tests := []struct {
		name   string
		source string
		apiKey string
		want   members.Mode
	}{
		{"auto without key", "auto", "", members.ModeMock},
		{"auto with key", "auto", "key", members.ModeLive},
		{"forced mock", "mock", "key", members.ModeMock},
		{"live without key", "live", "", members.ModeLive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			cfg.MemberSource = tt.source
			cfg.WhopAPIKey = tt.apiKey

			deps, err := ConnectDB(context.Background(), &config.CoreConfig{Env: "dev"}, cfg, zap.NewNop())
			if err != nil {
				t.Fatalf("ConnectDB: %v", err)
			}
			if deps.MemberMode != tt.want {
				t.Errorf("MemberMode = %q, want %q", deps.MemberMode, tt.want)
			}
			if deps.Members == nil || deps.Evaluator == nil || deps.Whop == nil {
				t.Fatal("dependencies not built")
			}
			if deps.Strategy != eng.StrategyScore {
				t.Errorf("Strategy = %q", deps.Strategy)
			}
		})
	}
}

func TestConnectDB_MockSourceServesTwentyMembers(t *testing.T) {
	deps, err := ConnectDB(context.Background(), &config.CoreConfig{Env: "dev"}, validAppConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	list, err := deps.Members.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(list) != members.MockSize {
		t.Errorf("got %d members, want %d", len(list), members.MockSize)
	}
}

func TestShutdown_NoDeps(t *testing.T) {
	if err := Shutdown(context.Background(), nil, AppConfig{}, DBDeps{}, zap.NewNop()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
