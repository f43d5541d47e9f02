package todo

import (
	"context"
	"fmt"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// ListHistory returns a page of a todo's change records, newest first. Only
// the owner of a live todo can read its history.
func (s *Service) ListHistory(ctx context.Context, input ListHistoryInput) (domain.Page[domain.ChangeRecord], error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.ChangeRecord]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Page[domain.ChangeRecord]{}, err
	}

	if _, err := s.todos.GetByID(ctx, userID, input.TodoID); err != nil {
		return domain.Page[domain.ChangeRecord]{}, fmt.Errorf("get todo: %w", err)
	}

	page, err := s.changes.ListChangeRecords(ctx, input.TodoID, input.Page, input.PerPage)
	if err != nil {
		return domain.Page[domain.ChangeRecord]{}, fmt.Errorf("list history: %w", err)
	}
	return page, nil
}
