// internal/app/features/auditlog/handler.go
package auditlog

import (
	"context"
	"time"

	uierrors "github.com/keerthivardhanm/cms-V2/internal/app/features/errors"
	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	"go.uber.org/zap"
)

// Lister is the audit log read surface. *auditlogs.Store satisfies it.
type Lister interface {
	List(ctx context.Context, offset, limit int64) ([]docstore.Record, error)
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	Store    Lister
	Location *time.Location
	Now      func() time.Time
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs an Audit Log feature handler. Timestamps are shown
// in loc.
func NewHandler(store Lister, loc *time.Location, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		Store:    store,
		Location: loc,
		Now:      time.Now,
		Log:      logger,
		ErrLog:   errLog,
	}
}
