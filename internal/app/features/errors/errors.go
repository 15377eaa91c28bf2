// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for error pages.
type pageData struct {
	Title       string
	Status      int
	Message     string
	BackURL     string
	CurrentPath string
}

// ErrorLogger logs handler failures and renders the matching error page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err with msg and renders a 500 page showing userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderBadRequest(w, r, userMsg, backURL)
}

// RenderNotFound renders a 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest renders a 400 page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError renders a 500 page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/dashboard")
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", pageData{
		Title:       title,
		Status:      status,
		Message:     msg,
		BackURL:     backURL,
		CurrentPath: httpnav.CurrentPath(r),
	})
}
