// Package note implements note persistence. Every call is scoped by owner.
package note

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

var columns = []string{
	"id", "user_id", "title", "body", "pinned", "archived_at", "trashed_at",
	"last_edited_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Title        string     `db:"title"`
	Body         string     `db:"body"`
	Pinned       bool       `db:"pinned"`
	ArchivedAt   *time.Time `db:"archived_at"`
	TrashedAt    *time.Time `db:"trashed_at"`
	LastEditedAt time.Time  `db:"last_edited_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// GetByID returns a note owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID})
	return r.one(ctx, noteID, stmt)
}

// GetByIDForUpdate is GetByID holding the row lock until the transaction
// ends. Revision writes for a note are serialised on this lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix("FOR UPDATE")
	return r.one(ctx, noteID, stmt)
}

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, n domain.Note) (*domain.Note, error) {
	stmt := postgres.Builder.
		Insert("notes").
		Columns(columns...).
		Values(n.ID, n.UserID, n.Title, n.Body, n.Pinned, n.ArchivedAt, n.TrashedAt,
			n.LastEditedAt, n.CreatedAt, n.UpdatedAt).
		Suffix(returning)
	return r.one(ctx, n.ID, stmt)
}

// UpdateContent writes title and body. last_edited_at moves only when
// params.LastEditedAt is set.
func (r *Repo) UpdateContent(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteContentParams, updatedAt time.Time) (*domain.Note, error) {
	stmt := postgres.Builder.
		Update("notes").
		Set("title", params.Title).
		Set("body", params.Body).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix(returning)
	if params.LastEditedAt != nil {
		stmt = stmt.Set("last_edited_at", *params.LastEditedAt)
	}
	return r.one(ctx, noteID, stmt)
}

// SetPinned sets the pinned flag.
func (r *Repo) SetPinned(ctx context.Context, userID, noteID uuid.UUID, pinned bool, updatedAt time.Time) (*domain.Note, error) {
	return r.set(ctx, userID, noteID, "pinned", pinned, updatedAt)
}

// SetArchivedAt archives (non-nil) or unarchives (nil) a note.
func (r *Repo) SetArchivedAt(ctx context.Context, userID, noteID uuid.UUID, at *time.Time, updatedAt time.Time) (*domain.Note, error) {
	return r.set(ctx, userID, noteID, "archived_at", at, updatedAt)
}

// SetTrashedAt trashes (non-nil) or restores (nil) a note.
func (r *Repo) SetTrashedAt(ctx context.Context, userID, noteID uuid.UUID, at *time.Time, updatedAt time.Time) (*domain.Note, error) {
	return r.set(ctx, userID, noteID, "trashed_at", at, updatedAt)
}

// Delete permanently removes a note. Its revisions cascade.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	stmt := postgres.Builder.
		Delete("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "note", noteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) set(ctx context.Context, userID, noteID uuid.UUID, column string, value any, updatedAt time.Time) (*domain.Note, error) {
	stmt := postgres.Builder.
		Update("notes").
		Set(column, value).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix(returning)
	return r.one(ctx, noteID, stmt)
}

func (r *Repo) one(ctx context.Context, noteID uuid.UUID, stmt sq.Sqlizer) (*domain.Note, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}
	n := toDomain(rw)
	return &n, nil
}

func toDomain(rw row) domain.Note {
	return domain.Note{
		ID:           rw.ID,
		UserID:       rw.UserID,
		Title:        rw.Title,
		Body:         rw.Body,
		Pinned:       rw.Pinned,
		ArchivedAt:   rw.ArchivedAt,
		TrashedAt:    rw.TrashedAt,
		LastEditedAt: rw.LastEditedAt,
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
}
