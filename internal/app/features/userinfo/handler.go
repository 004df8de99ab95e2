// internal/app/features/userinfo/handler.go
package userinfo

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/whopinsights/internal/app/system/auth"
)

// Handler serves the signed-in operator's identity.
type Handler struct{}

// NewHandler creates a new userinfo handler.
func NewHandler() *Handler {
	return &Handler{}
}

type userResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          user   `json:"user"`
	ExpiresAt     string `json:"expires_at"`
}

type user struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ServeMe returns the current session's operator. It sits behind
// RequireSignedIn, which answers 401 for anonymous callers.
//
// Response format:
//
//	{ "authenticated": true, "user": { "id": "...", "name": "...", "email": "..." }, "expires_at": "..." }
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	s, ok := auth.CurrentSession(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":         "Authentication required",
			"authenticated": false,
		})
		return
	}

	_ = json.NewEncoder(w).Encode(userResponse{
		Authenticated: true,
		User: user{
			ID:    s.UserID,
			Name:  s.UserName,
			Email: s.UserEmail,
		},
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
