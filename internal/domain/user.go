package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns todos and notes and authors comments.
// Accounts are provisioned out of band with taskflowctl.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
