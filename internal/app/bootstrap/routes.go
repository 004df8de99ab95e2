// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	authwhopfeature "github.com/dalemusser/whopinsights/internal/app/features/authwhop"
	dashboardfeature "github.com/dalemusser/whopinsights/internal/app/features/dashboard"
	_ "github.com/dalemusser/whopinsights/internal/app/features/dashboard/views"
	engagementfeature "github.com/dalemusser/whopinsights/internal/app/features/engagement"
	errorsfeature "github.com/dalemusser/whopinsights/internal/app/features/errors"
	healthfeature "github.com/dalemusser/whopinsights/internal/app/features/health"
	homefeature "github.com/dalemusser/whopinsights/internal/app/features/home"
	_ "github.com/dalemusser/whopinsights/internal/app/features/home/views"
	logoutfeature "github.com/dalemusser/whopinsights/internal/app/features/logout"
	userinfofeature "github.com/dalemusser/whopinsights/internal/app/features/userinfo"
	"github.com/dalemusser/whopinsights/internal/app/store/oauthstate"
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/dalemusser/whopinsights/internal/app/system/ratelimit"
	"github.com/dalemusser/whopinsights/internal/app/system/whop"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the upstream clients, and the
// Startup hook have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the Whop client, member source and evaluator in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// Whop Insights initializes the template engine, applies session middleware,
// and mounts the landing page, Whop sign-in, the dashboard pages and the
// JSON engagement API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	sessionMgr.SetRenewWithin(appCfg.SessionRenewWithin)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	// Set before mounting so subrouters inherit it.
	r.NotFound(errorsHandler.NotFound)

	// Loads the Session into context if signed in.
	r.Use(sessionMgr.LoadSession)

	healthHandler := healthfeature.NewHandler(deps.MemberMode, appCfg.OAuthConfigured(), logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(appCfg.OAuthConfigured(), logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Whop OAuth, rate limited per client.
	stateKey := sha256.Sum256([]byte("oauth-state:" + appCfg.SessionKey))
	authHandler := authwhopfeature.NewHandler(
		sessionMgr,
		oauthstate.New(stateKey[:], secure),
		deps.Whop,
		authwhopfeature.Config{
			ClientID:     appCfg.WhopClientID,
			ClientSecret: appCfg.WhopClientSecret,
			AppURL:       appCfg.AppURL,
			Scopes:       appCfg.OAuthScopes,
			Endpoint:     whop.Endpoint(appCfg.WhopAuthorizeURL, appCfg.WhopTokenURL),
		},
		logger,
	)
	limiter := ratelimit.New(appCfg.AuthRateLimit, appCfg.AuthRateBurst)
	r.Mount("/auth", authwhopfeature.Routes(authHandler, limiter.Middleware(logger)))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	r.Mount("/forbidden", errorsfeature.Routes(errorsHandler))

	dashboardHandler := dashboardfeature.NewHandler(deps.Members, deps.Evaluator, deps.Whop, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// JSON API
	engagementHandler := engagementfeature.NewHandler(deps.Members, deps.Evaluator, deps.Strategy, logger)
	r.Route("/api/members", func(api chi.Router) {
		if appCfg.RequireLogin {
			api.Use(sessionMgr.RequireSignedIn)
		}
		api.Mount("/", engagementfeature.Routes(engagementHandler))
	})
	userinfofeature.MountRoutes(r, userinfofeature.NewHandler(), sessionMgr)

	return r, nil
}
