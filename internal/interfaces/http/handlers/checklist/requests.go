package checklist

import "encoding/json"

// OptionalString distinguishes an absent JSON field from an explicit null.
// Present carries whether the field appeared in the payload at all; a present
// field with a nil Value means "clear".
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field is present in the payload.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type createChecklistItemRequest struct {
	Name        string   `json:"name" validate:"required,max=500"`
	IsCompleted bool     `json:"is_completed"`
	AssigneeID  *string  `json:"assignee_id"`
	SortOrder   *float64 `json:"sort_order" validate:"omitempty,gte=0"`
}

type updateChecklistItemRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=500"`
	IsCompleted *bool          `json:"is_completed"`
	AssigneeID  OptionalString `json:"assignee_id"`
	SortOrder   *float64       `json:"sort_order" validate:"omitempty,gte=0"`
}
