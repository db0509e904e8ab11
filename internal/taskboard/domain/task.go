package domain

import (
	"fmt"
	"time"
)

// TaskStatus is one of four literal values. Anything else is a validation
// failure, never silently coerced.
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "NEW"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// ParseTaskStatus validates a status string. The empty string maps to
// TaskStatusNew, matching the create/update default.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case "":
		return TaskStatusNew, nil
	case TaskStatusNew, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return TaskStatus(s), nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

func (s TaskStatus) String() string { return string(s) }

type Task struct {
	ID        string
	UserID    string // owning user; every store operation filters on this
	Title     string
	Content   string // rich-text markup, may be empty
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
