// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

var columns = []string{"id", "email", "name", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From("users").
		Where(sq.Eq{"id": id})
	return r.one(ctx, id, stmt)
}

// GetByEmail returns a user by email address. Emails compare case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	stmt := postgres.Builder.
		Select(columns...).
		From("users").
		Where(sq.Eq{"email": strings.ToLower(email)})
	return r.one(ctx, uuid.Nil, stmt)
}

// Create inserts a new user. A duplicate email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	stmt := postgres.Builder.
		Insert("users").
		Columns(columns...).
		Values(u.ID, strings.ToLower(u.Email), u.Name, u.CreatedAt, u.UpdatedAt).
		Suffix(returning)
	return r.one(ctx, u.ID, stmt)
}

func (r *Repo) one(ctx context.Context, id uuid.UUID, stmt sq.Sqlizer) (*domain.User, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &domain.User{
		ID:        rw.ID,
		Email:     rw.Email,
		Name:      rw.Name,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}, nil
}
