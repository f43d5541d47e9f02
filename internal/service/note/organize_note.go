package note

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// SetPinned pins or unpins a note.
func (s *Service) SetPinned(ctx context.Context, noteID uuid.UUID, pinned bool) (*domain.Note, error) {
	return s.organize(ctx, noteID, "pin", func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Note, error) {
		return s.notes.SetPinned(ctx, userID, noteID, pinned, now)
	})
}

// Archive moves a note to the archive.
func (s *Service) Archive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.organize(ctx, noteID, "archive", func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Note, error) {
		return s.notes.SetArchivedAt(ctx, userID, noteID, &now, now)
	})
}

// Unarchive brings a note back from the archive.
func (s *Service) Unarchive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.organize(ctx, noteID, "unarchive", func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Note, error) {
		return s.notes.SetArchivedAt(ctx, userID, noteID, nil, now)
	})
}

// Trash moves a note to the trash. Trashed notes keep their revisions.
func (s *Service) Trash(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.organize(ctx, noteID, "trash", func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Note, error) {
		return s.notes.SetTrashedAt(ctx, userID, noteID, &now, now)
	})
}

// Untrash restores a note from the trash.
func (s *Service) Untrash(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.organize(ctx, noteID, "untrash", func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Note, error) {
		return s.notes.SetTrashedAt(ctx, userID, noteID, nil, now)
	})
}

// organize runs a flag change. None of them touch content, so
// last_edited_at stays and no revision is written.
func (s *Service) organize(
	ctx context.Context,
	noteID uuid.UUID,
	op string,
	write func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Note, error),
) (*domain.Note, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if noteID == uuid.Nil {
		return nil, domain.NewValidationError("note_id", "required")
	}

	note, err := write(ctx, userID, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s note: %w", op, err)
	}

	s.log.InfoContext(ctx, "note organized",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
		slog.String("op", op),
	)
	return note, nil
}

// DeleteNote permanently deletes a note. Its revisions go with it.
func (s *Service) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if noteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}

	if err := s.notes.Delete(ctx, userID, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
	)
	return nil
}
