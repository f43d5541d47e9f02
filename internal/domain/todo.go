package domain

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a user's task.
type Todo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Completed   bool
	Priority    TodoPriority
	Status      TodoStatus
	DueDate     *time.Time
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted returns true if the todo has been soft-deleted.
func (t *Todo) IsDeleted() bool {
	return t.DeletedAt != nil
}

// Snapshot captures the tracked fields of the todo.
func (t *Todo) Snapshot() TodoSnapshot {
	s := TodoSnapshot{
		Title:       t.Title,
		Completed:   t.Completed,
		Priority:    t.Priority,
		Status:      t.Status,
		Description: t.Description,
		DueDate:     t.DueDate,
		CategoryID:  t.CategoryID,
	}
	if len(t.TagIDs) > 0 {
		s.TagIDs = append([]uuid.UUID(nil), t.TagIDs...)
	}
	return s
}

// TodoSnapshot is the version of a todo that change records are computed from.
type TodoSnapshot struct {
	Title       string
	Completed   bool
	Priority    TodoPriority
	Status      TodoStatus
	Description *string
	DueDate     *time.Time
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
}

// TodoUpdateParams holds the columns written by a todo update.
// Nil pointers leave the column unchanged; ClearX flags write NULL.
type TodoUpdateParams struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Completed        *bool
	Priority         *TodoPriority
	Status           *TodoStatus
	DueDate          *time.Time
	ClearDueDate     bool
	CategoryID       *uuid.UUID
	ClearCategory    bool
	TagIDs           *[]uuid.UUID
}

// IsEmpty reports whether the params change nothing.
func (p TodoUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && !p.ClearDescription &&
		p.Completed == nil && p.Priority == nil && p.Status == nil &&
		p.DueDate == nil && !p.ClearDueDate &&
		p.CategoryID == nil && !p.ClearCategory && p.TagIDs == nil
}
