package domain

import "time"

// CanMutate is the time-boxed edit policy: a record may change only while it
// is not soft-deleted and now-createdAt is strictly less than window.
func CanMutate(createdAt time.Time, deletedAt *time.Time, now time.Time, window time.Duration) bool {
	if deletedAt != nil {
		return false
	}
	return now.Sub(createdAt) < window
}
