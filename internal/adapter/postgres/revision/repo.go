// Package revision persists note revisions. Rows are immutable; the only
// deletions are cap eviction and the cascade from their note.
package revision

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const table = "note_revisions"

var columns = []string{"id", "note_id", "actor_id", "title", "body", "created_at"}

// Repo provides revision persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	NoteID    uuid.UUID `db:"note_id"`
	ActorID   uuid.UUID `db:"actor_id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts a revision.
func (r *Repo) Create(ctx context.Context, rev domain.Revision) (*domain.Revision, error) {
	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(rev.ID, rev.NoteID, rev.ActorID, rev.Title, rev.Body, rev.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "revision", rev.ID)
	}
	out := toDomain(rw)
	return &out, nil
}

// GetByID returns a revision only if it belongs to noteID.
func (r *Repo) GetByID(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Revision, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": revisionID, "note_id": noteID})

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "revision", revisionID)
	}
	out := toDomain(rw)
	return &out, nil
}

// ListByNote returns a page of revisions, newest first.
func (r *Repo) ListByNote(ctx context.Context, noteID uuid.UUID, limit, offset int) ([]domain.Revision, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	out := make([]domain.Revision, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// CountByNote returns the number of stored revisions of a note.
func (r *Repo) CountByNote(ctx context.Context, noteID uuid.UUID) (int, error) {
	stmt := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"note_id": noteID})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, fmt.Errorf("count revisions: %w", err)
	}
	return n, nil
}

// DeleteOldest removes the n oldest revisions of a note, ordered by
// (created_at, id) ascending, and returns how many were removed.
func (r *Repo) DeleteOldest(ctx context.Context, noteID uuid.UUID, n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	// Built with "?" placeholders; the outer statement rewrites them.
	oldest := sq.
		Select("id").
		From(table).
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(n))

	sub, args, err := oldest.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	stmt := postgres.Builder.
		Delete(table).
		Where("id IN ("+sub+")", args...)

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, fmt.Errorf("delete oldest revisions of note %s: %w", noteID, err)
	}
	return tag.RowsAffected(), nil
}

func toDomain(rw row) domain.Revision {
	return domain.Revision{
		ID:        rw.ID,
		NoteID:    rw.NoteID,
		ActorID:   rw.ActorID,
		Title:     rw.Title,
		Body:      rw.Body,
		CreatedAt: rw.CreatedAt,
	}
}
