package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	GetByIDForUpdate(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	ListByTarget(ctx context.Context, target domain.CommentTarget, limit, offset int) ([]domain.Comment, error)
	CountByTarget(ctx context.Context, target domain.CommentTarget) (int, error)
	UpdateContent(ctx context.Context, commentID uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error)
	SoftDelete(ctx context.Context, commentID uuid.UUID, deletedAt time.Time) error
}

type todoRepo interface {
	GetByID(ctx context.Context, userID, todoID uuid.UUID) (*domain.Todo, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const MaxContentLength = 10_000

// Service provides comment operations. Comments can be changed only by their
// author and only within the edit window.
type Service struct {
	comments   commentRepo
	todos      todoRepo
	tx         txManager
	clock      clockwork.Clock
	editWindow time.Duration
	log        *slog.Logger
}

// NewService creates a new comment service. A non-positive editWindow falls
// back to domain.DefaultEditWindow.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	todos todoRepo,
	tx txManager,
	clock clockwork.Clock,
	editWindow time.Duration,
) *Service {
	if editWindow <= 0 {
		editWindow = domain.DefaultEditWindow
	}
	return &Service{
		comments:   comments,
		todos:      todos,
		tx:         tx,
		clock:      clock,
		editWindow: editWindow,
		log:        log.With("service", "comment"),
	}
}
