package task

import "fmt"

// Task is the unit of scheduling. ID and ArrivalTime are fixed at creation;
// Priority changes only through the queue's IncreaseKey/DecreaseKey so that
// heap order is restored together with the write. Deadline is informational
// and never affects ordering.
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Priority    int    `json:"priority" yaml:"priority"`
	ArrivalTime int    `json:"arrivalTime,omitempty" yaml:"arrivalTime,omitempty"`
	Deadline    *int   `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Payload     string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// New creates a task with the supplied identity, priority and arrival time.
func New(id string, priority, arrivalTime int) Task {
	return Task{ID: id, Priority: priority, ArrivalTime: arrivalTime}
}

// WithDeadline sets the informational deadline.
func (t Task) WithDeadline(deadline int) Task {
	t.Deadline = &deadline
	return t
}

// WithPayload sets the opaque payload.
func (t Task) WithPayload(payload string) Task {
	t.Payload = payload
	return t
}

// Equals reports identity equality.
func (t Task) Equals(other Task) bool {
	return t.ID == other.ID
}

func (t Task) String() string {
	deadline := "-"
	if t.Deadline != nil {
		deadline = fmt.Sprintf("%d", *t.Deadline)
	}
	return fmt.Sprintf("Task(id=%s, pr=%d, at=%d, dl=%s)", t.ID, t.Priority, t.ArrivalTime, deadline)
}
