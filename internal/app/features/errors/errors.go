// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/activitymap/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Heading string
	Message string
	Detail  string
}

// Handler is the errors feature handler.
// No backends needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the friendly 404 page. Used as the router's NotFound
// handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "", "")
}

// RenderNotFound shows a 404 page with an optional message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "La página que buscas no existe."
	}
	render(w, r, http.StatusNotFound, "No encontrado", msg, "", backURL)
}

// Forbidden renders the 403 page. Used for rejected CSRF tokens.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusForbidden, "Acceso denegado",
		"La solicitud no pudo verificarse. Recarga la página e inténtalo de nuevo.", "", "/")
}

// RenderTooManyRequests shows a 429 page.
func RenderTooManyRequests(w http.ResponseWriter, r *http.Request, msg string) {
	render(w, r, http.StatusTooManyRequests, "Demasiadas solicitudes", msg, "", "/")
}

// RenderUnavailable shows a 503 page, used while the catalog cannot be
// served. detail is shown verbatim (escaped) under the message.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, heading, msg, detail string) {
	render(w, r, http.StatusServiceUnavailable, heading, msg, detail, "/")
}

func render(w http.ResponseWriter, r *http.Request, status int, heading, msg, detail, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, heading, backURL),
		Status:  status,
		Heading: heading,
		Message: msg,
		Detail:  detail,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
