package note

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title string
	Body  string
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	var errs []domain.FieldError
	errs = validateContent(errs, &i.Title, &i.Body)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput holds a note content update. Nil fields are left unchanged.
type UpdateNoteInput struct {
	NoteID uuid.UUID
	Title  *string
	Body   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Title == nil && i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = validateContent(errs, i.Title, i.Body)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRevisionsInput selects a page of a note's revisions.
type ListRevisionsInput struct {
	NoteID  uuid.UUID
	Page    int
	PerPage int
}

// Validate checks all fields and collects all errors.
func (i ListRevisionsInput) Validate() error {
	var errs []domain.FieldError
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
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

func validateContent(errs []domain.FieldError, title, body *string) []domain.FieldError {
	if title != nil && utf8.RuneCountInString(strings.TrimSpace(*title)) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if body != nil && utf8.RuneCountInString(*body) > MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 100000 characters"})
	}
	return errs
}
