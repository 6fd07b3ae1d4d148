package models

// Task priority and status values, as stored by the backend.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending   = "pending"
	StatusInProcess = "in_process"
	StatusCompleted = "completed"
)

// Task mirrors the backend's task shape.
type Task struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Priority            string `json:"priority"`
	Status              string `json:"status"`
	CompletedPercentage *int   `json:"completedPercentage"`
	CreatedAt           string `json:"createdAt"`
}

// TaskInput carries the fields a create or update mutation writes. Zero
// values are sent as-is: an update that omits a field overwrites it with
// the default, it does not preserve the stored value.
type TaskInput struct {
	Title               string
	Priority            string
	Status              string
	CompletedPercentage int
	TaskListID          string
}

// ApplyDefaults fills unset priority and status; the percentage's zero
// value is already the default.
func (in *TaskInput) ApplyDefaults() {
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if in.Status == "" {
		in.Status = StatusPending
	}
}
