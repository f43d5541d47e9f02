package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// CreateTodoInput holds the parameters for creating a todo.
// Empty Priority and Status fall back to medium and pending.
type CreateTodoInput struct {
	Title       string
	Description *string
	Priority    domain.TodoPriority
	Status      domain.TodoStatus
	DueDate     *time.Time
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTodoInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = validateTags(errs, i.TagIDs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTodoInput holds a partial todo update. Nil fields are left unchanged.
type UpdateTodoInput struct {
	TodoID        uuid.UUID
	Title         *string
	Description   *string // ptr("") = clear
	Completed     *bool
	Priority      *domain.TodoPriority
	Status        *domain.TodoStatus
	DueDate       *time.Time
	ClearDueDate  bool
	CategoryID    *uuid.UUID
	ClearCategory bool
	TagIDs        *[]uuid.UUID // ptr(empty) = remove all tags
}

// Validate checks all fields and collects all errors.
func (i UpdateTodoInput) Validate() error {
	var errs []domain.FieldError

	if i.TodoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "todo_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Completed == nil &&
		i.Priority == nil && i.Status == nil && i.DueDate == nil && !i.ClearDueDate &&
		i.CategoryID == nil && !i.ClearCategory && i.TagIDs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateDescription(errs, i.Description)
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Status != nil && i.Completed != nil && (*i.Status == domain.TodoStatusCompleted) != *i.Completed {
		errs = append(errs, domain.FieldError{Field: "completed", Message: "contradicts status"})
	}
	if i.DueDate != nil && i.ClearDueDate {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "cannot set and clear at once"})
	}
	if i.CategoryID != nil && i.ClearCategory {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "cannot set and clear at once"})
	}
	if i.TagIDs != nil {
		errs = validateTags(errs, *i.TagIDs)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetStatusInput moves a todo to another workflow state.
type SetStatusInput struct {
	TodoID uuid.UUID
	Status domain.TodoStatus
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.TodoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "todo_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetPriorityInput changes the priority of a todo.
type SetPriorityInput struct {
	TodoID   uuid.UUID
	Priority domain.TodoPriority
}

// Validate checks all fields and collects all errors.
func (i SetPriorityInput) Validate() error {
	var errs []domain.FieldError
	if i.TodoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "todo_id", Message: "required"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListHistoryInput selects a page of a todo's change records.
type ListHistoryInput struct {
	TodoID  uuid.UUID
	Page    int
	PerPage int
}

// Validate checks all fields and collects all errors.
func (i ListHistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.TodoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "todo_id", Message: "required"})
	}
	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if i.PerPage < 1 {
		errs = append(errs, domain.FieldError{Field: "per_page", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, desc *string) []domain.FieldError {
	if desc != nil && utf8.RuneCountInString(strings.TrimSpace(*desc)) > MaxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}

func validateTags(errs []domain.FieldError, tagIDs []uuid.UUID) []domain.FieldError {
	if len(tagIDs) > MaxTagsPerTodo {
		errs = append(errs, domain.FieldError{Field: "tag_ids", Message: "max 20 tags"})
	}
	for _, id := range tagIDs {
		if id == uuid.Nil {
			return append(errs, domain.FieldError{Field: "tag_ids", Message: "must not contain empty ids"})
		}
	}
	return errs
}
