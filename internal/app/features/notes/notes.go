// internal/app/features/notes/notes.go
package notes

import (
	"context"
	"errors"
	"html"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	notestore "github.com/keerthivardhanm/cms-V2/internal/app/store/notes"
	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	MaxNoteLength = 280
	MaxNotes      = 20

	ownerKey = "notes_owner"
)

var (
	ErrEmptyNote = errors.New("note is empty")
	ErrTooLong   = errors.New("note is too long")
	ErrTooMany   = errors.New("too many notes")
	ErrNotFound  = notestore.ErrNotFound
)

// Repo is the persistence the notes widget needs.
// *notestore.Store satisfies it.
type Repo interface {
	List(ctx context.Context, ownerID string) ([]models.Note, error)
	Count(ctx context.Context, ownerID string) (int64, error)
	Insert(ctx context.Context, n models.Note) error
	Toggle(ctx context.Context, ownerID, id string) error
	Delete(ctx context.Context, ownerID, id string) error
}

// Owners maps a browser to an anonymous owner id kept in a signed cookie.
type Owners struct {
	sessions sessions.Store
	name     string
	log      *zap.Logger
}

// NewOwners returns Owners storing the id in the session called name.
func NewOwners(ss sessions.Store, name string, logger *zap.Logger) *Owners {
	return &Owners{sessions: ss, name: name, log: logger}
}

// Lookup returns the owner id of the request, or "" if it has none.
func (o *Owners) Lookup(r *http.Request) string {
	sess := o.session(r)
	id, _ := sess.Values[ownerKey].(string)
	return id
}

// Ensure returns the owner id of the request, issuing a new one when the
// browser has none. An unreadable cookie (rotated key) is replaced.
func (o *Owners) Ensure(w http.ResponseWriter, r *http.Request) (string, error) {
	sess := o.session(r)
	if id, ok := sess.Values[ownerKey].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values[ownerKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

func (o *Owners) session(r *http.Request) *sessions.Session {
	sess, err := o.sessions.Get(r, o.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			o.log.Warn("notes cookie invalid, using fresh session", zap.Error(err))
		} else {
			o.log.Error("notes session store error, using fresh session", zap.Error(err))
		}
	}
	if sess == nil {
		sess = sessions.NewSession(o.sessions, o.name)
	}
	return sess
}

// Clean strips markup and surrounding space from text and checks its length.
// The result is plain text; templates escape it on output.
func Clean(policy *bluemonday.Policy, text string) (string, error) {
	text = strings.TrimSpace(html.UnescapeString(policy.Sanitize(text)))
	if text == "" {
		return "", ErrEmptyNote
	}
	if utf8.RuneCountInString(text) > MaxNoteLength {
		return "", ErrTooLong
	}
	return text, nil
}

// Service applies the widget rules on top of a Repo.
type Service struct {
	Repo   Repo
	policy *bluemonday.Policy
	now    func() time.Time

	// addMu makes the count check and insert in Add one step, so parallel
	// posts cannot go past MaxNotes within this process.
	addMu sync.Mutex
}

// NewService returns a Service using a strict sanitizing policy.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, policy: bluemonday.StrictPolicy(), now: time.Now}
}

// List returns the owner's notes. An empty owner has none.
func (s *Service) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	if ownerID == "" {
		return nil, nil
	}
	return s.Repo.List(ctx, ownerID)
}

// Add cleans text and stores it as a new note for the owner.
func (s *Service) Add(ctx context.Context, ownerID, text string) (models.Note, error) {
	text, err := Clean(s.policy, text)
	if err != nil {
		return models.Note{}, err
	}

	s.addMu.Lock()
	defer s.addMu.Unlock()

	n, err := s.Repo.Count(ctx, ownerID)
	if err != nil {
		return models.Note{}, err
	}
	if n >= MaxNotes {
		return models.Note{}, ErrTooMany
	}

	note := models.Note{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	return note, s.Repo.Insert(ctx, note)
}

// Toggle flips the done flag of a note.
func (s *Service) Toggle(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return ErrNotFound
	}
	return s.Repo.Toggle(ctx, ownerID, id)
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, ownerID, id)
}
