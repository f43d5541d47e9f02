package todo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type todoRepo interface {
	GetByID(ctx context.Context, userID, todoID uuid.UUID) (*domain.Todo, error)
	GetByIDForUpdate(ctx context.Context, userID, todoID uuid.UUID) (*domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, userID, todoID uuid.UUID, params domain.TodoUpdateParams, updatedAt time.Time) (*domain.Todo, error)
	SoftDelete(ctx context.Context, userID, todoID uuid.UUID, deletedAt time.Time) error
}

type changeRecorder interface {
	RecordChange(ctx context.Context, todoID uuid.UUID, before, after *domain.TodoSnapshot, actorID uuid.UUID, action domain.ChangeAction) (*domain.ChangeRecord, error)
	ListChangeRecords(ctx context.Context, todoID uuid.UUID, page, perPage int) (domain.Page[domain.ChangeRecord], error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxTagsPerTodo       = 20
)

// Service provides todo operations. Every mutation and its change record are
// written in one transaction.
type Service struct {
	todos   todoRepo
	changes changeRecorder
	tx      txManager
	clock   clockwork.Clock
	log     *slog.Logger
}

// NewService creates a new todo service.
func NewService(
	log *slog.Logger,
	todos todoRepo,
	changes changeRecorder,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		todos:   todos,
		changes: changes,
		tx:      tx,
		clock:   clock,
		log:     log.With("service", "todo"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// alignCompletion keeps the completed flag and the completed status in step.
// current is the stored todo the params will be applied to.
func alignCompletion(current *domain.Todo, params *domain.TodoUpdateParams) {
	switch {
	case params.Status != nil && params.Completed == nil:
		done := *params.Status == domain.TodoStatusCompleted
		params.Completed = &done
	case params.Completed != nil && params.Status == nil:
		var status domain.TodoStatus
		switch {
		case *params.Completed:
			status = domain.TodoStatusCompleted
		case current.Status == domain.TodoStatusCompleted:
			status = domain.TodoStatusPending
		default:
			return
		}
		params.Status = &status
	}
}
