// internal/app/features/authwhop/handler.go
package authwhop

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/whopinsights/internal/app/store/oauthstate"
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/dalemusser/whopinsights/internal/app/system/navigation"
	"github.com/dalemusser/whopinsights/internal/app/system/timeouts"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ProfileFetcher loads the signed-in operator's profile with their token.
type ProfileFetcher interface {
	Me(ctx context.Context, accessToken string) (models.Operator, error)
}

// Config is the OAuth client registration.
type Config struct {
	ClientID     string
	ClientSecret string
	AppURL       string // e.g., "https://insights.example.com"
	Scopes       string // space separated
	Endpoint     oauth2.Endpoint
}

// Handler handles Whop OAuth authentication.
type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	StateStore *oauthstate.Store
	Profiles   ProfileFetcher

	ClientID     string
	ClientSecret string
	RedirectURL  string // AppURL + "/auth/callback"
	Scopes       []string
	Endpoint     oauth2.Endpoint

	// HTTPClient, when set, is used for the token exchange.
	HTTPClient *http.Client
}

// NewHandler creates a new Whop OAuth handler.
func NewHandler(
	sessionMgr *auth.SessionManager,
	stateStore *oauthstate.Store,
	profiles ProfileFetcher,
	cfg Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:          logger,
		SessionMgr:   sessionMgr,
		StateStore:   stateStore,
		Profiles:     profiles,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  strings.TrimRight(cfg.AppURL, "/") + "/auth/callback",
		Scopes:       strings.Fields(cfg.Scopes),
		Endpoint:     cfg.Endpoint,
	}
}

// oauth2Config returns the Whop OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes:       h.Scopes,
		Endpoint:     h.Endpoint,
	}
}

// IsConfigured returns true if Whop OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/login                                                              |
| Starts the OAuth flow by redirecting to Whop's consent screen.               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Whop OAuth not configured")
		http.Redirect(w, r, "/?error=oauth_not_configured", http.StatusSeeOther)
		return
	}

	state, err := oauthstate.NewState()
	if err != nil {
		h.Log.Error("failed to generate OAuth state", zap.Error(err))
		http.Redirect(w, r, "/?error=internal", http.StatusSeeOther)
		return
	}

	returnURL := navigation.SafeBackURL(r, navigation.DashboardReturn)
	if err := h.StateStore.Save(w, state, returnURL); err != nil {
		h.Log.Error("failed to save OAuth state", zap.Error(err))
		http.Redirect(w, r, "/?error=internal", http.StatusSeeOther)
		return
	}

	url := h.oauth2Config().AuthCodeURL(state)

	h.Log.Debug("initiating Whop OAuth flow",
		zap.String("redirect_url", url),
		zap.String("return_url", returnURL))

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/callback                                                           |
| Exchanges the authorization code for an access token, fetches the operator  |
| profile and starts a session.                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if errParam := q.Get("error"); errParam != "" {
		h.Log.Warn("Whop OAuth error",
			zap.String("error", errParam),
			zap.String("description", q.Get("error_description")))
		http.Redirect(w, r, "/?error=oauth_failed", http.StatusSeeOther)
		return
	}

	code := q.Get("code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		http.Redirect(w, r, "/?error=no_code", http.StatusSeeOther)
		return
	}

	// A state is only enforced when this browser was issued one by /auth/login.
	returnURL, issued, valid := h.StateStore.Validate(w, r, q.Get("state"))
	if issued && !valid {
		h.Log.Warn("invalid or expired OAuth state")
		http.Redirect(w, r, "/?error=invalid_state", http.StatusSeeOther)
		return
	}
	returnURL = navigation.SafeReturn(returnURL, navigation.DashboardReturn)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	if h.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, h.HTTPClient)
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange OAuth code", zap.Error(err))
		http.Redirect(w, r, "/?error=token_exchange_failed", http.StatusSeeOther)
		return
	}

	// Sign-in still succeeds without a profile; the session just carries the token.
	var op models.Operator
	if h.Profiles != nil {
		op, err = h.Profiles.Me(ctx, token.AccessToken)
		if err != nil {
			h.Log.Warn("failed to fetch Whop profile", zap.Error(err))
			op = models.Operator{}
		}
	}

	sess, err := h.SessionMgr.Begin(w, r, token.AccessToken, op)
	if err != nil {
		h.Log.Error("save session failed", zap.Error(err))
		http.Redirect(w, r, "/?error=session_failed", http.StatusSeeOther)
		return
	}

	h.Log.Info("operator signed in via Whop OAuth",
		zap.String("session_id", sess.ID),
		zap.String("user_id", op.ID))

	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}
