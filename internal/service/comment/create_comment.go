package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// CreateComment attaches a comment to a live todo owned by the author.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.todos.GetByID(ctx, userID, input.TodoID); err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate comment id: %w", err)
	}

	now := s.clock.Now().UTC()
	created, err := s.comments.Create(ctx, domain.Comment{
		ID:        id,
		Target:    domain.TodoTarget{TodoID: input.TodoID},
		AuthorID:  userID,
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", created.ID.String()),
		slog.String("todo_id", input.TodoID.String()),
	)
	return created, nil
}

// ListComments returns a page of a todo's live comments, oldest first.
func (s *Service) ListComments(ctx context.Context, input ListCommentsInput) (domain.Page[domain.Comment], error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Comment]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	if _, err := s.todos.GetByID(ctx, userID, input.TodoID); err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("get todo: %w", err)
	}

	target := domain.TodoTarget{TodoID: input.TodoID}
	items, err := s.comments.ListByTarget(ctx, target, input.PerPage, domain.Offset(input.Page, input.PerPage))
	if err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("list comments: %w", err)
	}
	total, err := s.comments.CountByTarget(ctx, target)
	if err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("count comments: %w", err)
	}

	return domain.Page[domain.Comment]{Items: items, Total: total, Page: input.Page, PerPage: input.PerPage}, nil
}
