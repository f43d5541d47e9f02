package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultEditWindow is how long a comment stays editable after creation.
const DefaultEditWindow = 15 * time.Minute

// CommentTarget is the entity a comment is attached to. TodoTarget is the
// only variant today.
type CommentTarget interface {
	TargetType() CommentTargetType
	TargetID() uuid.UUID
}

// TodoTarget attaches a comment to a todo.
type TodoTarget struct {
	TodoID uuid.UUID
}

func (t TodoTarget) TargetType() CommentTargetType { return CommentTargetTodo }
func (t TodoTarget) TargetID() uuid.UUID           { return t.TodoID }

// NewCommentTarget rebuilds a target from its persisted discriminator and id.
func NewCommentTarget(kind CommentTargetType, id uuid.UUID) (CommentTarget, error) {
	switch kind {
	case CommentTargetTodo:
		return TodoTarget{TodoID: id}, nil
	}
	return nil, fmt.Errorf("unknown comment target type %q", kind)
}

// Comment is a user comment attached to a CommentTarget.
type Comment struct {
	ID        uuid.UUID
	Target    CommentTarget
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted returns true if the comment has been soft-deleted.
func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}

// CanMutate reports whether the comment may still be edited or deleted at now.
func (c *Comment) CanMutate(now time.Time, window time.Duration) bool {
	return CanMutate(c.CreatedAt, c.DeletedAt, now, window)
}
