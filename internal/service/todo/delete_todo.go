package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// DeleteTodo soft-deletes a todo and records a deleted change holding its
// last fields. The row is purged later by the cleanup job.
func (s *Service) DeleteTodo(ctx context.Context, todoID uuid.UUID) error {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if todoID == uuid.Nil {
		return domain.NewValidationError("todo_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.todos.GetByIDForUpdate(txCtx, userID, todoID)
		if getErr != nil {
			return fmt.Errorf("get todo: %w", getErr)
		}
		before := current.Snapshot()

		if delErr := s.todos.SoftDelete(txCtx, userID, todoID, s.clock.Now().UTC()); delErr != nil {
			return fmt.Errorf("delete todo: %w", delErr)
		}

		if _, recErr := s.changes.RecordChange(txCtx, todoID, &before, nil, userID, domain.ChangeActionDeleted); recErr != nil {
			return fmt.Errorf("record change: %w", recErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", todoID.String()),
	)
	return nil
}
