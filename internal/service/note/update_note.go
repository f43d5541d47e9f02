package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// UpdateNote writes a new title and/or body. Only a body change advances
// last_edited_at and produces a revision.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated  *domain.Note
		revision *domain.Revision
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The row lock serialises concurrent writers of the same note.
		current, getErr := s.notes.GetByIDForUpdate(txCtx, userID, input.NoteID)
		if getErr != nil {
			return fmt.Errorf("get note: %w", getErr)
		}

		params := domain.NoteContentParams{Title: current.Title, Body: current.Body}
		if input.Title != nil {
			params.Title = strings.TrimSpace(*input.Title)
		}
		if input.Body != nil {
			params.Body = *input.Body
		}

		now := s.clock.Now().UTC()
		if params.Body != current.Body {
			params.LastEditedAt = &now
		}

		var updateErr error
		updated, updateErr = s.notes.UpdateContent(txCtx, userID, input.NoteID, params, now)
		if updateErr != nil {
			return fmt.Errorf("update note: %w", updateErr)
		}

		var revErr error
		revision, revErr = s.revisions.SnapshotIfBodyChanged(txCtx, updated, current.Body, userID)
		if revErr != nil {
			return fmt.Errorf("snapshot note: %w", revErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
		slog.Bool("revision_written", revision != nil),
	)

	return updated, nil
}
