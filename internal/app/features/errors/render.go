// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL, errorID string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, "/"),
		Status:  status,
		Message: msg,
		ErrorID: errorID,
	}
	if backURL != "" {
		data.BackURL = backURL
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusForbidden, "Access denied", msg, backURL, "")
}

// RenderNotFound shows a 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL, "")
}

// RenderServerError shows a 500 page. errorID lets the operator quote the
// failure to support; it may be empty.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL, errorID string) {
	if msg == "" {
		msg = "Something went wrong."
	}
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL, errorID)
}
