package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// UpdateComment replaces the content of a comment.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Comment
	err := s.guarded(ctx, userID, input.CommentID, func(txCtx context.Context, now time.Time) error {
		var updateErr error
		updated, updateErr = s.comments.UpdateContent(txCtx, input.CommentID, strings.TrimSpace(input.Content), now)
		if updateErr != nil {
			return fmt.Errorf("update comment: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)
	return updated, nil
}

// DeleteComment soft-deletes a comment.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if commentID == uuid.Nil {
		return domain.NewValidationError("comment_id", "required")
	}

	err := s.guarded(ctx, userID, commentID, func(txCtx context.Context, now time.Time) error {
		if delErr := s.comments.SoftDelete(txCtx, commentID, now); delErr != nil {
			return fmt.Errorf("delete comment: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", commentID.String()),
	)
	return nil
}

// guarded locks the comment and runs write only when userID is the author
// (ErrForbidden otherwise) and the comment is still inside the edit window
// (ErrEditWindowExpired otherwise).
func (s *Service) guarded(
	ctx context.Context,
	userID, commentID uuid.UUID,
	write func(txCtx context.Context, now time.Time) error,
) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}

		if c.AuthorID != userID {
			return fmt.Errorf("comment %s: %w", commentID, domain.ErrForbidden)
		}

		now := s.clock.Now().UTC()
		if !c.CanMutate(now, s.editWindow) {
			return fmt.Errorf("comment %s: %w", commentID, domain.ErrEditWindowExpired)
		}

		return write(txCtx, now)
	})
}
