package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// CreateNote creates a note. A non-empty initial body is the note's first
// revision.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate note id: %w", err)
	}

	now := s.clock.Now().UTC()
	note := domain.Note{
		ID:           id,
		UserID:       userID,
		Title:        strings.TrimSpace(input.Title),
		Body:         input.Body,
		LastEditedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *domain.Note
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.notes.Create(txCtx, note)
		if createErr != nil {
			return fmt.Errorf("create note: %w", createErr)
		}

		if _, revErr := s.revisions.SnapshotIfBodyChanged(txCtx, created, "", userID); revErr != nil {
			return fmt.Errorf("snapshot note: %w", revErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()),
	)

	return created, nil
}
