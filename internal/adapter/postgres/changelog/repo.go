// Package changelog persists todo change records. The table is append-only:
// the repository exposes inserts and reads only.
package changelog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const table = "todo_change_records"

var columns = []string{"id", "entity_id", "actor_id", "action", "field_changes", "created_at"}

// Repo provides change record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	EntityID     uuid.UUID `db:"entity_id"`
	ActorID      uuid.UUID `db:"actor_id"`
	Action       string    `db:"action"`
	FieldChanges []byte    `db:"field_changes"`
	CreatedAt    time.Time `db:"created_at"`
}

// Create inserts a change record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec domain.ChangeRecord) (*domain.ChangeRecord, error) {
	changes, err := json.Marshal(rec.FieldChanges)
	if err != nil {
		return nil, fmt.Errorf("change_record %s marshal field changes: %w", rec.ID, err)
	}

	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.EntityID, rec.ActorID, string(rec.Action), changes, rec.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "change_record", rec.ID)
	}

	return toDomain(out)
}

// ListByEntity returns a page of records for a todo, newest first. Records
// created in the same instant are ordered by id, which is time-ordered.
func (r *Repo) ListByEntity(ctx context.Context, entityID uuid.UUID, limit, offset int) ([]domain.ChangeRecord, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"entity_id": entityID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, fmt.Errorf("list change_records: %w", err)
	}

	records := make([]domain.ChangeRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// CountByEntity returns the number of records for a todo.
func (r *Repo) CountByEntity(ctx context.Context, entityID uuid.UUID) (int, error) {
	stmt := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"entity_id": entityID})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, fmt.Errorf("count change_records: %w", err)
	}
	return n, nil
}

func toDomain(rw row) (*domain.ChangeRecord, error) {
	rec := &domain.ChangeRecord{
		ID:        rw.ID,
		EntityID:  rw.EntityID,
		ActorID:   rw.ActorID,
		Action:    domain.ChangeAction(rw.Action),
		CreatedAt: rw.CreatedAt,
	}
	if err := json.Unmarshal(rw.FieldChanges, &rec.FieldChanges); err != nil {
		return nil, fmt.Errorf("change_record %s unmarshal field changes: %w", rw.ID, err)
	}
	return rec, nil
}
