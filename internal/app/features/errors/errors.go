// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
	ErrorID string
}

// Handler is the errors feature handler.
// It has no dependencies; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns a subrouter mounted under /forbidden.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Forbidden)
	return r
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderForbidden(w, r, "You don't have permission to view this page.", "/")
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "The page you were looking for does not exist.", "/")
}
