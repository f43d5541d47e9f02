package comment

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// CreateCommentInput holds the parameters for commenting on a todo.
type CreateCommentInput struct {
	TodoID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.TodoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "todo_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCommentInput holds new content for a comment.
type UpdateCommentInput struct {
	CommentID uuid.UUID
	Content   string
}

// Validate checks all fields and collects all errors.
func (i UpdateCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCommentsInput selects a page of a todo's comments.
type ListCommentsInput struct {
	TodoID  uuid.UUID
	Page    int
	PerPage int
}

// Validate checks all fields and collects all errors.
func (i ListCommentsInput) Validate() error {
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

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	c := strings.TrimSpace(content)
	if c == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(c) > MaxContentLength {
		return append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}
	return errs
}
