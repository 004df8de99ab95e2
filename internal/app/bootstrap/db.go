// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/whopinsights/internal/app/store/members"
	"github.com/dalemusser/whopinsights/internal/app/system/clock"
	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/app/system/whop"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the upstream Whop client and the member source.
//
// The data mode is resolved exactly once here: "auto" becomes "live" when an
// API key is configured and "mock" otherwise. Request paths never look at the
// key again.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	mode, err := members.ParseMode(appCfg.MemberSource)
	if err != nil {
		return DBDeps{}, err
	}
	strategy, err := eng.ParseStrategy(appCfg.EngagementStrategy)
	if err != nil {
		return DBDeps{}, fmt.Errorf("engagement_strategy: %w", err)
	}

	client := whop.NewClient(appCfg.WhopAPIBase, appCfg.WhopAPIKey, nil)
	resolved := mode.Resolve(client.HasAPIKey())
	logger.Info("member source resolved",
		zap.String("configured", string(mode)),
		zap.String("mode", string(resolved)),
		zap.String("api_base", appCfg.WhopAPIBase),
	)

	clk := clock.System{}
	return DBDeps{
		Whop:       client,
		Members:    members.New(resolved, client, clk, logger),
		MemberMode: resolved,
		Evaluator:  eng.NewEvaluator(appCfg.weights(), appCfg.RankingSize, clk),
		Strategy:   strategy,
	}, nil
}

// EnsureSchema is a no-op; nothing is persisted.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
