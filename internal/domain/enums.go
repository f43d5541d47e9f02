package domain

// TodoStatus is the workflow state of a todo.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
	TodoStatusCancelled  TodoStatus = "cancelled"
)

func (s TodoStatus) String() string { return string(s) }

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted, TodoStatusCancelled:
		return true
	}
	return false
}

// TodoPriority is the urgency of a todo.
type TodoPriority string

const (
	TodoPriorityLow    TodoPriority = "low"
	TodoPriorityMedium TodoPriority = "medium"
	TodoPriorityHigh   TodoPriority = "high"
	TodoPriorityUrgent TodoPriority = "urgent"
)

func (p TodoPriority) String() string { return string(p) }

func (p TodoPriority) IsValid() bool {
	switch p {
	case TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh, TodoPriorityUrgent:
		return true
	}
	return false
}

// ChangeAction classifies a todo change record.
type ChangeAction string

const (
	ChangeActionCreated         ChangeAction = "created"
	ChangeActionUpdated         ChangeAction = "updated"
	ChangeActionDeleted         ChangeAction = "deleted"
	ChangeActionStatusChanged   ChangeAction = "status_changed"
	ChangeActionPriorityChanged ChangeAction = "priority_changed"
)

func (a ChangeAction) String() string { return string(a) }

func (a ChangeAction) IsValid() bool {
	switch a {
	case ChangeActionCreated, ChangeActionUpdated, ChangeActionDeleted,
		ChangeActionStatusChanged, ChangeActionPriorityChanged:
		return true
	}
	return false
}

// IsUpdate reports whether the action compares two versions of a todo
// and is therefore subject to no-op suppression.
func (a ChangeAction) IsUpdate() bool {
	switch a {
	case ChangeActionUpdated, ChangeActionStatusChanged, ChangeActionPriorityChanged:
		return true
	}
	return false
}

// TrackedField names a todo field recorded in change records.
type TrackedField string

const (
	FieldTitle       TrackedField = "title"
	FieldCompleted   TrackedField = "completed"
	FieldPriority    TrackedField = "priority"
	FieldStatus      TrackedField = "status"
	FieldDescription TrackedField = "description"
	FieldDueDate     TrackedField = "dueDate"
	FieldCategoryID  TrackedField = "categoryId"
	FieldTagIDs      TrackedField = "tagIds"
)

// TrackedFields lists every tracked field in canonical order.
// FieldChanges are always kept in this order.
var TrackedFields = []TrackedField{
	FieldTitle,
	FieldCompleted,
	FieldPriority,
	FieldStatus,
	FieldDescription,
	FieldDueDate,
	FieldCategoryID,
	FieldTagIDs,
}

func (f TrackedField) String() string { return string(f) }

func (f TrackedField) IsValid() bool {
	return f.position() >= 0
}

func (f TrackedField) position() int {
	for i, tf := range TrackedFields {
		if tf == f {
			return i
		}
	}
	return -1
}

// CommentTargetType is the persisted discriminator of a CommentTarget.
type CommentTargetType string

const (
	CommentTargetTodo CommentTargetType = "todo"
)

func (c CommentTargetType) String() string { return string(c) }

func (c CommentTargetType) IsValid() bool {
	return c == CommentTargetTodo
}
