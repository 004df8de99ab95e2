package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/store/members"
	"go.uber.org/zap"
)

// Handler holds what the health endpoint reports.
type Handler struct {
	Source          members.Mode
	OAuthConfigured bool
	Log             *zap.Logger
}

// NewHandler constructs a health Handler with the resolved member source.
func NewHandler(source members.Mode, oauthConfigured bool, logger *zap.Logger) *Handler {
	return &Handler{
		Source:          source,
		OAuthConfigured: oauthConfigured,
		Log:             logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status          string `json:"status"`
	MemberSource    string `json:"member_source"`
	OAuthConfigured bool   `json:"oauth_configured"`
}

// Serve handles GET /health.
//
//	{ "status":"ok", "member_source":"mock", "oauth_configured":false }
//
// The upstream platform is not probed; live failures degrade to mock data
// and never make the service unhealthy.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:          "ok",
		MemberSource:    string(h.Source),
		OAuthConfigured: h.OAuthConfigured,
	})
}
