package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type noteRepo interface {
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	GetByIDForUpdate(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, note domain.Note) (*domain.Note, error)
	UpdateContent(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteContentParams, updatedAt time.Time) (*domain.Note, error)
	SetPinned(ctx context.Context, userID, noteID uuid.UUID, pinned bool, updatedAt time.Time) (*domain.Note, error)
	SetArchivedAt(ctx context.Context, userID, noteID uuid.UUID, at *time.Time, updatedAt time.Time) (*domain.Note, error)
	SetTrashedAt(ctx context.Context, userID, noteID uuid.UUID, at *time.Time, updatedAt time.Time) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

type revisionStore interface {
	SnapshotIfBodyChanged(ctx context.Context, note *domain.Note, previousBody string, actorID uuid.UUID) (*domain.Revision, error)
	Restore(ctx context.Context, noteID, revisionID, actorID uuid.UUID) (*domain.Note, error)
	ListRevisions(ctx context.Context, noteID uuid.UUID, page, perPage int) (domain.Page[domain.Revision], error)
	GetRevision(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Revision, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength = 200
	MaxBodyLength  = 100_000
)

// Service provides note operations. Body changes are versioned through the
// revision store.
type Service struct {
	notes     noteRepo
	revisions revisionStore
	tx        txManager
	clock     clockwork.Clock
	log       *slog.Logger
}

// NewService creates a new note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	revisions revisionStore,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		notes:     notes,
		revisions: revisions,
		tx:        tx,
		clock:     clock,
		log:       log.With("service", "note"),
	}
}
