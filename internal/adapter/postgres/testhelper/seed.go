package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedTag inserts a tag owned by userID and returns its id.
func SeedTag(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, user_id, name) VALUES ($1, $2, $3)`,
		id, userID, "tag-"+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return id
}

// SeedCategory inserts a category owned by userID and returns its id.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, user_id, name) VALUES ($1, $2, $3)`,
		id, userID, "category-"+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return id
}

// SeedTodo inserts a pending, medium-priority todo.
func SeedTodo(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Todo {
	t.Helper()

	ts := now()
	todo := domain.Todo{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Todo " + uniqueSuffix(),
		Priority:  domain.TodoPriorityMedium,
		Status:    domain.TodoStatusPending,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO todos (id, user_id, title, priority, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		todo.ID, todo.UserID, todo.Title, string(todo.Priority), string(todo.Status), todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTodo: %v", err)
	}
	return todo
}

// SeedNote inserts a note with the given body.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, body string) domain.Note {
	t.Helper()

	ts := now()
	note := domain.Note{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        "Note " + uniqueSuffix(),
		Body:         body,
		LastEditedAt: ts,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, user_id, title, body, last_edited_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		note.ID, note.UserID, note.Title, note.Body, note.LastEditedAt, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}
	return note
}
