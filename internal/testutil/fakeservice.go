// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"itdash/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when multiple matches are found.
var ErrAmbiguous = errors.New("ambiguous")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]service.Task // listID -> tasks
	next  int

	// Error injection for testing
	ResolveListErr  error
	CreateListErr   error
	ListTasksErr    map[string]error // listID -> error
	CreateTaskErr   error
	SetCompletedErr error

	// Calls counts mutating calls by method name.
	Calls map[string]int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:        make(map[string][]service.Task),
		ListTasksErr: make(map[string]error),
		Calls:        make(map[string]int),
	}
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// AddTask adds a task to a list.
func (f *FakeService) AddTask(listID, taskID, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], service.Task{
		ID:     taskID,
		Title:  title,
		Status: service.StatusFor(completed),
	})
}

// Tasks returns a copy of the tasks in a list.
func (f *FakeService) Tasks(listID string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.Task(nil), f.tasks[listID]...)
}

// Lists returns a copy of the lists.
func (f *FakeService) Lists() []service.TaskList {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.TaskList(nil), f.lists...)
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, ErrAmbiguous
	}
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, name string) (service.TaskList, error) {
	if f.CreateListErr != nil {
		return service.TaskList{}, f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["CreateList"]++

	// Generate a simple ID
	id := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	list := service.TaskList{ID: id, Title: name}
	f.lists = append(f.lists, list)
	f.tasks[id] = nil
	return list, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, listID string) ([]service.Task, error) {
	if err, ok := f.ListTasksErr[listID]; ok && err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]service.Task(nil), tasks...), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID, title string, completed bool) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[listID]; !ok {
		return ErrNotFound
	}
	f.Calls["CreateTask"]++
	f.next++
	f.tasks[listID] = append(f.tasks[listID], service.Task{
		ID:     fmt.Sprintf("t%d", f.next),
		Title:  title,
		Status: service.StatusFor(completed),
	})
	return nil
}

// SetCompleted implements service.Service.
func (f *FakeService) SetCompleted(ctx context.Context, listID, taskID string, completed bool) error {
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return ErrNotFound
	}
	for i, t := range tasks {
		if t.ID == taskID {
			f.Calls["SetCompleted"]++
			f.tasks[listID][i].Status = service.StatusFor(completed)
			return nil
		}
	}
	return ErrNotFound
}
