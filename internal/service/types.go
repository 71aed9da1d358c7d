package service

// Task statuses.
const (
	StatusOpen      = "needsAction"
	StatusCompleted = "completed"
)

// Task represents a single remote task item.
type Task struct {
	ID     string
	Title  string
	Status string // StatusOpen or StatusCompleted
}

// Completed reports whether the task is marked completed.
func (t Task) Completed() bool { return t.Status == StatusCompleted }

// TaskList represents a remote task list.
type TaskList struct {
	ID    string
	Title string
}

// StatusFor maps a done flag to a task status.
func StatusFor(done bool) string {
	if done {
		return StatusCompleted
	}
	return StatusOpen
}
