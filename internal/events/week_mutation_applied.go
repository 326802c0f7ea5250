package events

import "time"

const WeekMutationTopic = "schedule.week.mutations.v1"

// WeekMutationAppliedEvent is published after a validated shift mutation
// is committed. Consumers use it to evict derived weekly summaries; the
// payload is idempotent by shift id, so redelivery is harmless.
type WeekMutationAppliedEvent struct {
	EventType    string    `json:"event_type"` // shift_created, shift_updated, shift_deleted
	RequestID    string    `json:"request_id,omitempty"`
	RestaurantID string    `json:"restaurant_id"`
	EmployeeID   string    `json:"employee_id"`
	WeekStart    string    `json:"week_start"` // YYYY-MM-DD, Monday
	ShiftID      string    `json:"shift_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
