// Package todo implements todo persistence, including the todo_tags join
// table. Soft-deleted todos are invisible to every read except PurgeDeleted.
package todo

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "title", "description", "completed", "priority", "status",
	"due_date", "category_id", "created_at", "updated_at", "deleted_at",
}

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Completed   bool       `db:"completed"`
	Priority    string     `db:"priority"`
	Status      string     `db:"status"`
	DueDate     *time.Time `db:"due_date"`
	CategoryID  *uuid.UUID `db:"category_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a live todo owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, todoID uuid.UUID) (*domain.Todo, error) {
	return r.get(ctx, userID, todoID, false)
}

// GetByIDForUpdate is GetByID with a row lock held until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, todoID uuid.UUID) (*domain.Todo, error) {
	return r.get(ctx, userID, todoID, true)
}

func (r *Repo) get(ctx context.Context, userID, todoID uuid.UUID, lock bool) (*domain.Todo, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.
		Select(columns...).
		From("todos").
		Where(sq.Eq{"id": todoID, "user_id": userID, "deleted_at": nil})
	if lock {
		stmt = stmt.Suffix("FOR UPDATE")
	}

	var rw row
	if err := postgres.Get(ctx, q, &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "todo", todoID)
	}

	tagIDs, err := r.tagIDs(ctx, q, todoID)
	if err != nil {
		return nil, err
	}

	t := toDomain(rw)
	t.TagIDs = tagIDs
	return &t, nil
}

func (r *Repo) tagIDs(ctx context.Context, q postgres.Querier, todoID uuid.UUID) ([]uuid.UUID, error) {
	stmt := postgres.Builder.
		Select("tag_id").
		From("todo_tags").
		Where(sq.Eq{"todo_id": todoID}).
		OrderBy("tag_id")

	var ids []uuid.UUID
	if err := postgres.Select(ctx, q, &ids, stmt); err != nil {
		return nil, fmt.Errorf("todo %s tags: %w", todoID, err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a todo and its tag links. Call within a transaction when tags
// are present.
func (r *Repo) Create(ctx context.Context, t domain.Todo) (*domain.Todo, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.
		Insert("todos").
		Columns(columns[:11]...).
		Values(t.ID, t.UserID, t.Title, t.Description, t.Completed, string(t.Priority), string(t.Status),
			t.DueDate, t.CategoryID, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, q, &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "todo", t.ID)
	}

	if err := r.insertTags(ctx, q, t.ID, t.TagIDs); err != nil {
		return nil, err
	}

	created := toDomain(rw)
	created.TagIDs = sortedTags(t.TagIDs)
	return &created, nil
}

// Update writes the columns set in params and returns the updated todo.
// A non-nil params.TagIDs replaces the tag links.
func (r *Repo) Update(ctx context.Context, userID, todoID uuid.UUID, params domain.TodoUpdateParams, updatedAt time.Time) (*domain.Todo, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.
		Update("todos").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": todoID, "user_id": userID, "deleted_at": nil}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if params.Title != nil {
		stmt = stmt.Set("title", *params.Title)
	}
	switch {
	case params.ClearDescription:
		stmt = stmt.Set("description", nil)
	case params.Description != nil:
		stmt = stmt.Set("description", *params.Description)
	}
	if params.Completed != nil {
		stmt = stmt.Set("completed", *params.Completed)
	}
	if params.Priority != nil {
		stmt = stmt.Set("priority", string(*params.Priority))
	}
	if params.Status != nil {
		stmt = stmt.Set("status", string(*params.Status))
	}
	switch {
	case params.ClearDueDate:
		stmt = stmt.Set("due_date", nil)
	case params.DueDate != nil:
		stmt = stmt.Set("due_date", *params.DueDate)
	}
	switch {
	case params.ClearCategory:
		stmt = stmt.Set("category_id", nil)
	case params.CategoryID != nil:
		stmt = stmt.Set("category_id", *params.CategoryID)
	}

	var rw row
	if err := postgres.Get(ctx, q, &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "todo", todoID)
	}

	var tagIDs []uuid.UUID
	if params.TagIDs != nil {
		del := postgres.Builder.Delete("todo_tags").Where(sq.Eq{"todo_id": todoID})
		if _, err := postgres.Exec(ctx, q, del); err != nil {
			return nil, postgres.MapError(err, "todo", todoID)
		}
		if err := r.insertTags(ctx, q, todoID, *params.TagIDs); err != nil {
			return nil, err
		}
		tagIDs = sortedTags(*params.TagIDs)
	} else {
		var err error
		if tagIDs, err = r.tagIDs(ctx, q, todoID); err != nil {
			return nil, err
		}
	}

	updated := toDomain(rw)
	updated.TagIDs = tagIDs
	return &updated, nil
}

// SoftDelete marks a live todo as deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, todoID uuid.UUID, deletedAt time.Time) error {
	stmt := postgres.Builder.
		Update("todos").
		Set("deleted_at", deletedAt).
		Set("updated_at", deletedAt).
		Where(sq.Eq{"id": todoID, "user_id": userID, "deleted_at": nil})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "todo", todoID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", todoID, domain.ErrNotFound)
	}
	return nil
}

// purgeDeletedSQL hard-deletes soft-deleted todos older than $1 together with
// their comments. Tag links and change records cascade through foreign keys.
const purgeDeletedSQL = `
WITH purged AS (
    DELETE FROM todos
    WHERE deleted_at IS NOT NULL AND deleted_at < $1
    RETURNING id
), dropped_comments AS (
    DELETE FROM comments
    WHERE commentable_type = 'todo' AND commentable_id IN (SELECT id FROM purged)
)
SELECT count(*) FROM purged`

// PurgeDeleted permanently removes todos soft-deleted before the threshold
// and returns how many were removed.
func (r *Repo) PurgeDeleted(ctx context.Context, threshold time.Time) (int64, error) {
	var n int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, purgeDeletedSQL, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("purge deleted todos: %w", err)
	}
	return n, nil
}

func (r *Repo) insertTags(ctx context.Context, q postgres.Querier, todoID uuid.UUID, tagIDs []uuid.UUID) error {
	tags := sortedTags(tagIDs)
	if len(tags) == 0 {
		return nil
	}

	stmt := postgres.Builder.Insert("todo_tags").Columns("todo_id", "tag_id")
	for _, id := range tags {
		stmt = stmt.Values(todoID, id)
	}
	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		return postgres.MapError(err, "todo", todoID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) domain.Todo {
	return domain.Todo{
		ID:          rw.ID,
		UserID:      rw.UserID,
		Title:       rw.Title,
		Description: rw.Description,
		Completed:   rw.Completed,
		Priority:    domain.TodoPriority(rw.Priority),
		Status:      domain.TodoStatus(rw.Status),
		DueDate:     rw.DueDate,
		CategoryID:  rw.CategoryID,
		CreatedAt:   rw.CreatedAt,
		UpdatedAt:   rw.UpdatedAt,
		DeletedAt:   rw.DeletedAt,
	}
}

// sortedTags returns the distinct tag ids in byte order, or nil.
func sortedTags(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return out
}
