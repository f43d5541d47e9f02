package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// CreateTodo creates a todo for the authenticated user and records a
// created change holding its initial fields.
func (s *Service) CreateTodo(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate todo id: %w", err)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TodoPriorityMedium
	}
	status := input.Status
	if status == "" {
		status = domain.TodoStatusPending
	}

	now := s.clock.Now().UTC()
	todo := domain.Todo{
		ID:          id,
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Completed:   status == domain.TodoStatusCompleted,
		Priority:    priority,
		Status:      status,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		TagIDs:      input.TagIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Todo
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.todos.Create(txCtx, todo)
		if createErr != nil {
			return fmt.Errorf("create todo: %w", createErr)
		}

		after := created.Snapshot()
		if _, recErr := s.changes.RecordChange(txCtx, created.ID, nil, &after, userID, domain.ChangeActionCreated); recErr != nil {
			return fmt.Errorf("record change: %w", recErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", created.ID.String()),
	)

	return created, nil
}
