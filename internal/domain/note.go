package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxRevisions is the per-note revision retention cap used when none is configured.
const DefaultMaxRevisions = 50

// Note is a user's markdown note.
type Note struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Body         string
	Pinned       bool
	ArchivedAt   *time.Time
	TrashedAt    *time.Time
	LastEditedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsArchived returns true if the note has been archived.
func (n *Note) IsArchived() bool { return n.ArchivedAt != nil }

// IsTrashed returns true if the note is in the trash.
func (n *Note) IsTrashed() bool { return n.TrashedAt != nil }

// Revision is an immutable full-content snapshot of a note.
type Revision struct {
	ID        uuid.UUID
	NoteID    uuid.UUID
	ActorID   uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
}

// NoteContentParams holds a note title/body write. LastEditedAt is set only
// when the body changes.
type NoteContentParams struct {
	Title        string
	Body         string
	LastEditedAt *time.Time
}
