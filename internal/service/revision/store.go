// Package revision keeps a capped history of note content and restores notes
// to earlier revisions.
package revision

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

type noteRepo interface {
	GetByIDForUpdate(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	UpdateContent(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteContentParams, updatedAt time.Time) (*domain.Note, error)
}

type revisionRepo interface {
	Create(ctx context.Context, rev domain.Revision) (*domain.Revision, error)
	GetByID(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Revision, error)
	ListByNote(ctx context.Context, noteID uuid.UUID, limit, offset int) ([]domain.Revision, error)
	CountByNote(ctx context.Context, noteID uuid.UUID) (int, error)
	DeleteOldest(ctx context.Context, noteID uuid.UUID, n int) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store writes revisions and enforces the per-note retention cap. Every write
// goes through the transaction carried by ctx.
type Store struct {
	notes        noteRepo
	revisions    revisionRepo
	tx           txManager
	clock        clockwork.Clock
	maxRevisions int
}

// NewStore creates a Store keeping at most maxRevisions per note
// (domain.DefaultMaxRevisions when maxRevisions < 1).
func NewStore(notes noteRepo, revisions revisionRepo, tx txManager, clock clockwork.Clock, maxRevisions int) *Store {
	if maxRevisions < 1 {
		maxRevisions = domain.DefaultMaxRevisions
	}
	return &Store{
		notes:        notes,
		revisions:    revisions,
		tx:           tx,
		clock:        clock,
		maxRevisions: maxRevisions,
	}
}

// MaxRevisions returns the retention cap.
func (s *Store) MaxRevisions() int { return s.maxRevisions }

// SnapshotIfBodyChanged writes a revision holding the note's new title and
// body when the body differs from previousBody, then trims the history to the
// cap. An unchanged body returns (nil, nil). Call it inside the transaction
// that wrote the note.
func (s *Store) SnapshotIfBodyChanged(ctx context.Context, note *domain.Note, previousBody string, actorID uuid.UUID) (*domain.Revision, error) {
	if note.Body == previousBody {
		return nil, nil
	}

	rev, err := s.write(ctx, note.ID, note.Title, note.Body, actorID)
	if err != nil {
		return nil, err
	}
	ctxutil.AfterCommit(ctx, func() { revisionsWritten.WithLabelValues(reasonEdit).Inc() })

	if err := s.enforceCap(ctx, note.ID); err != nil {
		return nil, err
	}
	return rev, nil
}

// Restore puts the content of revisionID back onto the note in one
// transaction: the current content is kept as a new revision first, so a
// restore can itself be undone. The revision must belong to the note.
//
// The restored-from revision gets no protection from eviction.
func (s *Store) Restore(ctx context.Context, noteID, revisionID, actorID uuid.UUID) (*domain.Note, error) {
	var restored *domain.Note

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.notes.GetByIDForUpdate(ctx, actorID, noteID)
		if err != nil {
			return fmt.Errorf("lock note: %w", err)
		}

		target, err := s.revisions.GetByID(ctx, noteID, revisionID)
		if err != nil {
			return fmt.Errorf("get revision: %w", err)
		}

		if _, err := s.write(ctx, noteID, current.Title, current.Body, actorID); err != nil {
			return err
		}
		ctxutil.AfterCommit(ctx, func() { revisionsWritten.WithLabelValues(reasonRestore).Inc() })

		now := s.clock.Now().UTC()
		restored, err = s.notes.UpdateContent(ctx, actorID, noteID, domain.NoteContentParams{
			Title:        target.Title,
			Body:         target.Body,
			LastEditedAt: &now,
		}, now)
		if err != nil {
			return fmt.Errorf("apply revision: %w", err)
		}

		return s.enforceCap(ctx, noteID)
	})
	if err != nil {
		return nil, err
	}

	restoresTotal.Inc()
	return restored, nil
}

// ListRevisions returns a page of a note's revisions, newest first.
func (s *Store) ListRevisions(ctx context.Context, noteID uuid.UUID, page, perPage int) (domain.Page[domain.Revision], error) {
	if page < 1 {
		page = 1
	}

	items, err := s.revisions.ListByNote(ctx, noteID, perPage, domain.Offset(page, perPage))
	if err != nil {
		return domain.Page[domain.Revision]{}, fmt.Errorf("list revisions: %w", err)
	}

	total, err := s.revisions.CountByNote(ctx, noteID)
	if err != nil {
		return domain.Page[domain.Revision]{}, fmt.Errorf("count revisions: %w", err)
	}

	return domain.Page[domain.Revision]{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// GetRevision returns one revision of a note.
func (s *Store) GetRevision(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Revision, error) {
	rev, err := s.revisions.GetByID(ctx, noteID, revisionID)
	if err != nil {
		return nil, fmt.Errorf("get revision: %w", err)
	}
	return rev, nil
}

func (s *Store) write(ctx context.Context, noteID uuid.UUID, title, body string, actorID uuid.UUID) (*domain.Revision, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate revision id: %w", err)
	}

	rev, err := s.revisions.Create(ctx, domain.Revision{
		ID:        id,
		NoteID:    noteID,
		ActorID:   actorID,
		Title:     title,
		Body:      body,
		CreatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create revision: %w", err)
	}
	return rev, nil
}

// enforceCap deletes the oldest revisions beyond maxRevisions.
func (s *Store) enforceCap(ctx context.Context, noteID uuid.UUID) error {
	count, err := s.revisions.CountByNote(ctx, noteID)
	if err != nil {
		return fmt.Errorf("count revisions: %w", err)
	}

	excess := count - s.maxRevisions
	if excess <= 0 {
		return nil
	}

	evicted, err := s.revisions.DeleteOldest(ctx, noteID, excess)
	if err != nil {
		return fmt.Errorf("evict revisions: %w", err)
	}
	ctxutil.AfterCommit(ctx, func() { revisionsEvicted.Add(float64(evicted)) })
	return nil
}
