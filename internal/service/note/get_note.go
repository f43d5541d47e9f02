package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// GetNote returns a note owned by the authenticated user.
func (s *Service) GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}
