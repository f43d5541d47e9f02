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

// UpdateTodo applies a partial update. The change record action is derived
// from what actually changed: a lone status or priority change is recorded
// as such, anything else as updated. An update that changes nothing writes
// no record.
func (s *Service) UpdateTodo(ctx context.Context, input UpdateTodoInput) (*domain.Todo, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TodoUpdateParams{
		Completed:     input.Completed,
		Priority:      input.Priority,
		Status:        input.Status,
		DueDate:       input.DueDate,
		ClearDueDate:  input.ClearDueDate,
		CategoryID:    input.CategoryID,
		ClearCategory: input.ClearCategory,
		TagIDs:        input.TagIDs,
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}
	if input.Description != nil {
		if desc := trimOrNil(input.Description); desc != nil {
			params.Description = desc
		} else {
			params.ClearDescription = true
		}
	}

	return s.mutate(ctx, userID, input.TodoID, params, nil)
}

// SetStatus moves a todo to another status. It is recorded as a status change
// unless completed flips with it.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.Todo, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	action := domain.ChangeActionStatusChanged
	return s.mutate(ctx, userID, input.TodoID, domain.TodoUpdateParams{Status: &input.Status}, &action)
}

// SetPriority changes the priority of a todo and records a priority change.
func (s *Service) SetPriority(ctx context.Context, input SetPriorityInput) (*domain.Todo, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	action := domain.ChangeActionPriorityChanged
	return s.mutate(ctx, userID, input.TodoID, domain.TodoUpdateParams{Priority: &input.Priority}, &action)
}

// mutate locks the todo, writes params and records the change in one
// transaction. The recorded action is classified from the diff; a non-nil
// action only confirms it.
func (s *Service) mutate(
	ctx context.Context,
	userID, todoID uuid.UUID,
	params domain.TodoUpdateParams,
	action *domain.ChangeAction,
) (*domain.Todo, error) {
	var (
		updated *domain.Todo
		record  *domain.ChangeRecord
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.todos.GetByIDForUpdate(txCtx, userID, todoID)
		if getErr != nil {
			return fmt.Errorf("get todo: %w", getErr)
		}
		before := current.Snapshot()

		alignCompletion(current, &params)

		var updateErr error
		updated, updateErr = s.todos.Update(txCtx, userID, todoID, params, s.clock.Now().UTC())
		if updateErr != nil {
			return fmt.Errorf("update todo: %w", updateErr)
		}
		after := updated.Snapshot()

		// A forced action stands only when the diff agrees: a status change
		// that also flips completed is recorded as updated.
		act := domain.ClassifyUpdate(domain.DiffTodo(before, after))
		if action != nil && *action == act {
			act = *action
		}

		var recErr error
		record, recErr = s.changes.RecordChange(txCtx, todoID, &before, &after, userID, act)
		if recErr != nil {
			return fmt.Errorf("record change: %w", recErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("todo_id", todoID.String()),
	}
	if record != nil {
		attrs = append(attrs, slog.String("action", record.Action.String()), slog.Int("fields", record.FieldChanges.Len()))
		s.log.InfoContext(ctx, "todo updated", attrs...)
	} else {
		s.log.DebugContext(ctx, "todo update changed nothing", attrs...)
	}

	return updated, nil
}
