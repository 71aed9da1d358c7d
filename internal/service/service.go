// Package service defines the backend-agnostic interface for remote task
// list operations used by sync.
package service

import (
	"context"
	"errors"
)

// ErrListNotFound is returned by ResolveList when no list has the name.
var ErrListNotFound = errors.New("list not found")

// Service defines the interface for the remote task backend.
// All Google Tasks API calls go through this interface.
// Commands never import the Google SDK directly.
type Service interface {
	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns an error wrapping ErrListNotFound if no list matches,
	// or an error if the name is ambiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateList creates a new task list and returns it.
	CreateList(ctx context.Context, name string) (TaskList, error)

	// ListTasks returns every task in a list, open and completed, in API order.
	ListTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask creates a new task in the specified list.
	CreateTask(ctx context.Context, listID, title string, completed bool) error

	// SetCompleted marks a task as completed or open.
	SetCompleted(ctx context.Context, listID, taskID string, completed bool) error
}
