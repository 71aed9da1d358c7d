// Package tasksync pushes the local task list to a remote task list.
package tasksync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"itdash/internal/service"
	"itdash/internal/task"
)

// Result summarizes a push.
type Result struct {
	List        service.TaskList
	ListCreated bool
	Created     int
	Updated     int
	Unchanged   int
}

// String renders the result the way the sync command prints it.
func (r Result) String() string {
	var b strings.Builder
	if r.ListCreated {
		fmt.Fprintf(&b, "created list %q\n", r.List.Title)
	}
	fmt.Fprintf(&b, "%d created, %d updated, %d unchanged", r.Created, r.Updated, r.Unchanged)
	return b.String()
}

// Push makes the list named listName mirror records: missing titles are
// created, and matching titles get their completion status aligned. Remote
// tasks with no local counterpart are left alone. The list is created if
// it does not exist.
func Push(ctx context.Context, svc service.Service, listName string, records []task.Record, log *slog.Logger) (Result, error) {
	var res Result
	list, err := svc.ResolveList(ctx, listName)
	switch {
	case errors.Is(err, service.ErrListNotFound):
		list, err = svc.CreateList(ctx, listName)
		if err != nil {
			return res, fmt.Errorf("create list %q: %w", listName, err)
		}
		res.ListCreated = true
		log.Debug("remote list created", "list", list.ID)
	case err != nil:
		return res, err
	}
	res.List = list

	remote, err := svc.ListTasks(ctx, list.ID)
	if err != nil {
		return res, err
	}

	// Titles can repeat on both sides; each local record claims one remote task.
	byTitle := make(map[string][]service.Task)
	for _, t := range remote {
		key := strings.TrimSpace(t.Title)
		byTitle[key] = append(byTitle[key], t)
	}

	for _, rec := range records {
		key := strings.TrimSpace(rec.Text)
		matches := byTitle[key]
		if len(matches) == 0 {
			if err := svc.CreateTask(ctx, list.ID, rec.Text, rec.Done); err != nil {
				return res, fmt.Errorf("create %q: %w", rec.Text, err)
			}
			res.Created++
			continue
		}
		remoteTask := matches[0]
		byTitle[key] = matches[1:]
		if remoteTask.Completed() == rec.Done {
			res.Unchanged++
			continue
		}
		if err := svc.SetCompleted(ctx, list.ID, remoteTask.ID, rec.Done); err != nil {
			return res, fmt.Errorf("update %q: %w", rec.Text, err)
		}
		res.Updated++
	}
	log.Debug("sync finished", "list", list.ID, "created", res.Created, "updated", res.Updated)
	return res, nil
}
