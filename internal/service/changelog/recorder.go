// Package changelog records the audit trail of todo mutations. Only fields
// whose values actually changed are persisted, and a no-op update writes
// nothing.
package changelog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

type changeRepo interface {
	Create(ctx context.Context, rec domain.ChangeRecord) (*domain.ChangeRecord, error)
	ListByEntity(ctx context.Context, entityID uuid.UUID, limit, offset int) ([]domain.ChangeRecord, error)
	CountByEntity(ctx context.Context, entityID uuid.UUID) (int, error)
}

// Recorder computes and persists change records. It writes through the
// transaction carried by ctx, so a failed insert aborts the caller's mutation.
type Recorder struct {
	records changeRepo
	clock   clockwork.Clock
}

func NewRecorder(records changeRepo, clock clockwork.Clock) *Recorder {
	return &Recorder{records: records, clock: clock}
}

// RecordChange persists the change of todoID from before to after.
//
// Created records list every non-null field of after; Deleted records list
// every non-null field of before. Update actions (Updated, StatusChanged,
// PriorityChanged) store only the differing fields and return (nil, nil)
// without writing when nothing differs.
func (r *Recorder) RecordChange(
	ctx context.Context,
	todoID uuid.UUID,
	before, after *domain.TodoSnapshot,
	actorID uuid.UUID,
	action domain.ChangeAction,
) (*domain.ChangeRecord, error) {
	if err := validate(todoID, before, after, actorID, action); err != nil {
		return nil, err
	}

	var changes domain.FieldChanges
	switch {
	case action == domain.ChangeActionCreated:
		changes = domain.SnapshotFields(*after)
	case action == domain.ChangeActionDeleted:
		changes = domain.SnapshotFields(*before)
	default:
		changes = domain.DiffTodo(*before, *after)
		if changes.Len() == 0 {
			noopSuppressed.WithLabelValues(string(action)).Inc()
			return nil, nil
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate change record id: %w", err)
	}

	rec, err := r.records.Create(ctx, domain.ChangeRecord{
		ID:           id,
		EntityID:     todoID,
		ActorID:      actorID,
		Action:       action,
		FieldChanges: changes,
		CreatedAt:    r.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create change record: %w", err)
	}

	ctxutil.AfterCommit(ctx, func() { recordsWritten.WithLabelValues(string(action)).Inc() })
	return rec, nil
}

// ListChangeRecords returns a page of a todo's change records, newest first.
func (r *Recorder) ListChangeRecords(ctx context.Context, todoID uuid.UUID, page, perPage int) (domain.Page[domain.ChangeRecord], error) {
	if page < 1 {
		page = 1
	}

	items, err := r.records.ListByEntity(ctx, todoID, perPage, domain.Offset(page, perPage))
	if err != nil {
		return domain.Page[domain.ChangeRecord]{}, fmt.Errorf("list change records: %w", err)
	}

	total, err := r.records.CountByEntity(ctx, todoID)
	if err != nil {
		return domain.Page[domain.ChangeRecord]{}, fmt.Errorf("count change records: %w", err)
	}

	return domain.Page[domain.ChangeRecord]{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func validate(todoID uuid.UUID, before, after *domain.TodoSnapshot, actorID uuid.UUID, action domain.ChangeAction) error {
	var errs []domain.FieldError

	if todoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "todo_id", Message: "required"})
	}
	if actorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}

	switch {
	case !action.IsValid():
		errs = append(errs, domain.FieldError{Field: "action", Message: "invalid value"})
	case action == domain.ChangeActionCreated && after == nil:
		errs = append(errs, domain.FieldError{Field: "after", Message: "required for created"})
	case action == domain.ChangeActionDeleted && before == nil:
		errs = append(errs, domain.FieldError{Field: "before", Message: "required for deleted"})
	case action.IsUpdate() && (before == nil || after == nil):
		errs = append(errs, domain.FieldError{Field: "snapshot", Message: "before and after required for updates"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
