// internal/app/features/notes/handler.go
package notes

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/timeouts"
	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Notes  *Service
	Owners *Owners
	Log    *zap.Logger
}

func NewHandler(svc *Service, owners *Owners, logger *zap.Logger) *Handler {
	return &Handler{Notes: svc, Owners: owners, Log: logger}
}

type widgetVM struct {
	Notes     []models.Note
	Error     string
	Remaining int
	MaxLength int
	CSRFField template.HTML
}

// ServeList renders the notes widget.
// GET /notes
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.Owners.Lookup(r), http.StatusOK, "")
}

// ServeAdd adds a note from the "text" form field.
// POST /notes
func (h *Handler) ServeAdd(w http.ResponseWriter, r *http.Request) {
	owner, err := h.Owners.Ensure(w, r)
	if err != nil {
		h.Log.Error("issue notes owner failed", zap.Error(err))
		h.render(w, r, "", http.StatusInternalServerError, "Unable to save the note.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	_, err = h.Notes.Add(ctx, owner, r.PostFormValue("text"))
	switch {
	case err == nil:
		h.render(w, r, owner, http.StatusOK, "")
	case errors.Is(err, ErrEmptyNote):
		h.render(w, r, owner, http.StatusBadRequest, "Write something first.")
	case errors.Is(err, ErrTooLong):
		h.render(w, r, owner, http.StatusBadRequest, "Notes are limited to 280 characters.")
	case errors.Is(err, ErrTooMany):
		h.render(w, r, owner, http.StatusBadRequest, "You have reached the note limit. Delete one first.")
	default:
		h.Log.Error("save note failed", zap.Error(err))
		h.render(w, r, owner, http.StatusInternalServerError, "Unable to save the note.")
	}
}

// ServeToggle marks a note done or not done.
// POST /notes/{id}/toggle
func (h *Handler) ServeToggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Notes.Toggle)
}

// ServeDelete removes a note.
// POST /notes/{id}/delete
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Notes.Delete)
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, ownerID, id string) error) {
	owner := h.Owners.Lookup(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := op(ctx, owner, chi.URLParam(r, "id"))
	switch {
	case err == nil:
		h.render(w, r, owner, http.StatusOK, "")
	case errors.Is(err, ErrNotFound):
		h.render(w, r, owner, http.StatusNotFound, "That note no longer exists.")
	default:
		h.Log.Error("update note failed", zap.Error(err))
		h.render(w, r, owner, http.StatusInternalServerError, "Unable to update the note.")
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, owner string, status int, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Notes.List(ctx, owner)
	if err != nil {
		h.Log.Error("list notes failed", zap.Error(err))
		if status == http.StatusOK {
			status = http.StatusInternalServerError
			msg = "Unable to load notes."
		}
	}

	data := widgetVM{
		Notes:     list,
		Error:     msg,
		Remaining: MaxNotes - len(list),
		MaxLength: MaxNoteLength,
		CSRFField: csrf.TemplateField(r),
	}
	w.WriteHeader(status)
	templates.RenderSnippet(w, "notes_widget", data)
}
