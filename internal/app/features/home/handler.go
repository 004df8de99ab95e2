package home

import (
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	OAuthConfigured bool
	Log             *zap.Logger
}

func NewHandler(oauthConfigured bool, logger *zap.Logger) *Handler {
	return &Handler{
		OAuthConfigured: oauthConfigured,
		Log:             logger,
	}
}

// errorMessages maps the ?error= codes set by the sign-in flow to text.
var errorMessages = map[string]string{
	"oauth_failed":          "Sign-in was cancelled or rejected by Whop. Please try again.",
	"no_code":               "Whop did not return an authorization code. Please try again.",
	"token_exchange_failed": "We could not complete sign-in with Whop. Please try again.",
	"invalid_state":         "Your sign-in link expired or was already used. Please start again.",
	"oauth_not_configured":  "Sign-in with Whop is not configured on this server.",
	"session_failed":        "We could not start your session. Please try again.",
	"rate_limited":          "Too many sign-in attempts. Please wait a minute and try again.",
	"internal":              "Something went wrong. Please try again.",
}

// ErrorMessage returns the friendly message for a landing-page error code.
// Unknown codes get a generic message; an empty code gets none.
func ErrorMessage(code string) string {
	if code == "" {
		return ""
	}
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return errorMessages["internal"]
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Error           string
		OAuthConfigured bool
	}{
		BaseVM:          viewdata.NewBaseVM(r, "Welcome", "/"),
		Error:           ErrorMessage(query.Get(r, "error")),
		OAuthConfigured: h.OAuthConfigured,
	}

	templates.Render(w, r, "home", data)
}
