package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChangeRecord is an immutable audit entry describing one todo mutation.
type ChangeRecord struct {
	ID           uuid.UUID
	EntityID     uuid.UUID
	ActorID      uuid.UUID
	Action       ChangeAction
	FieldChanges FieldChanges
	CreatedAt    time.Time
}

// FieldChange is the recorded delta of a single field. It is either Single
// (created/deleted records) or Changed (update records).
type FieldChange interface {
	isFieldChange()
}

// Single carries one side of a field: the initial value of a created todo or
// the final value of a deleted one.
type Single struct {
	Value any
}

// Changed carries the value of a field before and after an update.
type Changed struct {
	Old any
	New any
}

func (Single) isFieldChange()  {}
func (Changed) isFieldChange() {}

// FieldDelta pairs a tracked field with its change.
type FieldDelta struct {
	Field  TrackedField
	Change FieldChange
}

// FieldChanges is an ordered mapping from tracked field to change, kept in
// TrackedFields order. Values are JSON-native: string, bool, []string or nil.
type FieldChanges []FieldDelta

// Len returns the number of changed fields.
func (fc FieldChanges) Len() int { return len(fc) }

// Get returns the change recorded for field.
func (fc FieldChanges) Get(field TrackedField) (FieldChange, bool) {
	for _, d := range fc {
		if d.Field == field {
			return d.Change, true
		}
	}
	return nil, false
}

// Fields returns the changed field names in canonical order.
func (fc FieldChanges) Fields() []TrackedField {
	fields := make([]TrackedField, len(fc))
	for i, d := range fc {
		fields[i] = d.Field
	}
	return fields
}

type singleJSON struct {
	Value any `json:"value"`
}

type changedJSON struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// MarshalJSON encodes the changes as an object whose keys keep canonical order.
func (fc FieldChanges) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range fc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(d.Field))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var payload any
		switch c := d.Change.(type) {
		case Single:
			payload = singleJSON{Value: c.Value}
		case Changed:
			payload = changedJSON{Old: c.Old, New: c.New}
		default:
			return nil, fmt.Errorf("field %s: unsupported change type %T", d.Field, d.Change)
		}
		value, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Field, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the object form produced by MarshalJSON.
// Unknown field names are rejected.
func (fc *FieldChanges) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for name := range raw {
		if !TrackedField(name).IsValid() {
			return fmt.Errorf("unknown tracked field %q", name)
		}
	}

	out := make(FieldChanges, 0, len(raw))
	for _, field := range TrackedFields {
		entry, ok := raw[string(field)]
		if !ok {
			continue
		}

		if v, ok := entry["value"]; ok {
			value, err := decodeFieldValue(field, v)
			if err != nil {
				return err
			}
			out = append(out, FieldDelta{Field: field, Change: Single{Value: value}})
			continue
		}

		oldRaw, hasOld := entry["old"]
		newRaw, hasNew := entry["new"]
		if !hasOld && !hasNew {
			return fmt.Errorf("field %s: expected value or old/new", field)
		}
		oldValue, err := decodeFieldValue(field, oldRaw)
		if err != nil {
			return err
		}
		newValue, err := decodeFieldValue(field, newRaw)
		if err != nil {
			return err
		}
		out = append(out, FieldDelta{Field: field, Change: Changed{Old: oldValue, New: newValue}})
	}

	*fc = out
	return nil
}

func decodeFieldValue(field TrackedField, raw json.RawMessage) (any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var value any
	switch field {
	case FieldCompleted:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		value = b
	case FieldTagIDs:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		value = ids
	default:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		value = s
	}
	return value, nil
}
