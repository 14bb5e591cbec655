package rabbitmq

import "time"

// RecordChangedEvent mirrors the record_changed contract published by the
// admin CRUD surface.
type RecordChangedEvent struct {
	Kind       string     `json:"kind"`
	RecordID   string     `json:"record_id"`
	Action     string     `json:"action"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}
