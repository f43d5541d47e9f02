// Package comment implements comment persistence. The commentable target is
// stored as a (commentable_type, commentable_id) pair.
package comment

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

const table = "comments"

var columns = []string{
	"id", "commentable_type", "commentable_id", "author_id", "content",
	"created_at", "updated_at", "deleted_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              uuid.UUID  `db:"id"`
	CommentableType string     `db:"commentable_type"`
	CommentableID   uuid.UUID  `db:"commentable_id"`
	AuthorID        uuid.UUID  `db:"author_id"`
	Content         string     `db:"content"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, string(c.Target.TargetType()), c.Target.TargetID(), c.AuthorID, c.Content,
			c.CreatedAt, c.UpdatedAt, c.DeletedAt).
		Suffix(returning)
	return r.one(ctx, c.ID, stmt)
}

// GetByIDForUpdate returns a comment, soft-deleted ones included, and locks
// the row until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": commentID}).
		Suffix("FOR UPDATE")
	return r.one(ctx, commentID, stmt)
}

// ListByTarget returns live comments on a target, oldest first.
func (r *Repo) ListByTarget(ctx context.Context, target domain.CommentTarget, limit, offset int) ([]domain.Comment, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From(table).
		Where(targetFilter(target)).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, 0, len(rows))
	for _, rw := range rows {
		c, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CountByTarget returns the number of live comments on a target.
func (r *Repo) CountByTarget(ctx context.Context, target domain.CommentTarget) (int, error) {
	stmt := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(targetFilter(target))

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

// UpdateContent replaces the content of a live comment.
func (r *Repo) UpdateContent(ctx context.Context, commentID uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error) {
	stmt := postgres.Builder.
		Update(table).
		Set("content", content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": commentID, "deleted_at": nil}).
		Suffix(returning)
	return r.one(ctx, commentID, stmt)
}

// SoftDelete marks a live comment as deleted.
func (r *Repo) SoftDelete(ctx context.Context, commentID uuid.UUID, deletedAt time.Time) error {
	stmt := postgres.Builder.
		Update(table).
		Set("deleted_at", deletedAt).
		Set("updated_at", deletedAt).
		Where(sq.Eq{"id": commentID, "deleted_at": nil})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) one(ctx context.Context, commentID uuid.UUID, stmt sq.Sqlizer) (*domain.Comment, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}
	c, err := toDomain(rw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func targetFilter(target domain.CommentTarget) sq.Eq {
	return sq.Eq{
		"commentable_type": string(target.TargetType()),
		"commentable_id":   target.TargetID(),
		"deleted_at":       nil,
	}
}

func toDomain(rw row) (domain.Comment, error) {
	target, err := domain.NewCommentTarget(domain.CommentTargetType(rw.CommentableType), rw.CommentableID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("comment %s: %w", rw.ID, err)
	}
	return domain.Comment{
		ID:        rw.ID,
		Target:    target,
		AuthorID:  rw.AuthorID,
		Content:   rw.Content,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
		DeletedAt: rw.DeletedAt,
	}, nil
}
