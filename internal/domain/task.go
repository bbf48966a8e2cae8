package domain

// Task is the operation a single invocation performs
type Task int

const (
	TaskRead Task = iota
	TaskNew
	TaskEdit
	TaskDelete
	TaskList
	TaskHelp
)

// String returns a human-readable name for the task
func (t Task) String() string {
	switch t {
	case TaskRead:
		return "read"
	case TaskNew:
		return "new"
	case TaskEdit:
		return "edit"
	case TaskDelete:
		return "delete"
	case TaskList:
		return "list"
	case TaskHelp:
		return "help"
	default:
		return "unknown"
	}
}

// MinSegments returns how many path segments the task needs
func (t Task) MinSegments() int {
	switch t {
	case TaskHelp, TaskList:
		return 0
	default:
		return 1
	}
}

// Mutates reports whether the task changes the store
func (t Task) Mutates() bool {
	return t == TaskNew || t == TaskEdit || t == TaskDelete
}
