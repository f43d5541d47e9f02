package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// ListRevisions returns a page of the note's revisions, newest first.
func (s *Service) ListRevisions(ctx context.Context, input ListRevisionsInput) (domain.Page[domain.Revision], error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Revision]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Page[domain.Revision]{}, err
	}

	if _, err := s.notes.GetByID(ctx, userID, input.NoteID); err != nil {
		return domain.Page[domain.Revision]{}, fmt.Errorf("get note: %w", err)
	}

	return s.revisions.ListRevisions(ctx, input.NoteID, input.Page, input.PerPage)
}

// GetRevision returns one revision of a note owned by the authenticated user.
func (s *Service) GetRevision(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Revision, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.notes.GetByID(ctx, userID, noteID); err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	return s.revisions.GetRevision(ctx, noteID, revisionID)
}

// RestoreRevision puts a past revision's content back onto the note. The
// content it replaces is kept as a new revision.
func (s *Service) RestoreRevision(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if noteID == uuid.Nil || revisionID == uuid.Nil {
		return nil, domain.NewValidationError("revision_id", "required")
	}

	note, err := s.revisions.Restore(ctx, noteID, revisionID, userID)
	if err != nil {
		return nil, fmt.Errorf("restore revision: %w", err)
	}

	s.log.InfoContext(ctx, "note restored",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
		slog.String("revision_id", revisionID.String()),
	)
	return note, nil
}
