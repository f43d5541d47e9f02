package domain

import (
	"slices"
	"time"
)

// DiffTodo returns the tracked fields whose values differ between before and
// after, as Changed entries in canonical order. Tag IDs are compared as a set.
// An empty result means the update was a no-op.
func DiffTodo(before, after TodoSnapshot) FieldChanges {
	var changes FieldChanges
	for _, field := range TrackedFields {
		oldValue := before.value(field)
		newValue := after.value(field)
		if valuesEqual(oldValue, newValue) {
			continue
		}
		changes = append(changes, FieldDelta{
			Field:  field,
			Change: Changed{Old: oldValue, New: newValue},
		})
	}
	return changes
}

// SnapshotFields returns every non-null tracked field of s as a Single entry.
// It describes the initial state of a created todo or the final state of a
// deleted one. An empty tag set counts as null.
func SnapshotFields(s TodoSnapshot) FieldChanges {
	var changes FieldChanges
	for _, field := range TrackedFields {
		value := s.value(field)
		if value == nil {
			continue
		}
		changes = append(changes, FieldDelta{Field: field, Change: Single{Value: value}})
	}
	return changes
}

// ClassifyUpdate picks the action for a computed update diff: a diff that
// touches only status or only priority is specialised, anything else is a
// plain update.
func ClassifyUpdate(changes FieldChanges) ChangeAction {
	if len(changes) == 1 {
		switch changes[0].Field {
		case FieldStatus:
			return ChangeActionStatusChanged
		case FieldPriority:
			return ChangeActionPriorityChanged
		}
	}
	return ChangeActionUpdated
}

// value returns the JSON-native form of a tracked field, or nil when unset.
func (s TodoSnapshot) value(field TrackedField) any {
	switch field {
	case FieldTitle:
		return s.Title
	case FieldCompleted:
		return s.Completed
	case FieldPriority:
		if s.Priority == "" {
			return nil
		}
		return s.Priority.String()
	case FieldStatus:
		if s.Status == "" {
			return nil
		}
		return s.Status.String()
	case FieldDescription:
		if s.Description == nil {
			return nil
		}
		return *s.Description
	case FieldDueDate:
		if s.DueDate == nil {
			return nil
		}
		return s.DueDate.UTC().Format(time.RFC3339Nano)
	case FieldCategoryID:
		if s.CategoryID == nil {
			return nil
		}
		return s.CategoryID.String()
	case FieldTagIDs:
		if ids := tagSet(s); ids != nil {
			return ids
		}
		return nil
	}
	return nil
}

// tagSet returns the sorted, de-duplicated tag IDs, or nil when there are none.
func tagSet(s TodoSnapshot) []string {
	if len(s.TagIDs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.TagIDs))
	for _, id := range s.TagIDs {
		ids = append(ids, id.String())
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func valuesEqual(a, b any) bool {
	as, aIsSlice := a.([]string)
	bs, bIsSlice := b.([]string)
	if aIsSlice || bIsSlice {
		return slices.Equal(as, bs)
	}
	return a == b
}
