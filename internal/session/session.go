// Package session owns the state of one dashboard session: the task
// registry, the history log, pending deferred work, and the store both
// collections persist to. Presentation layers drive it through explicit
// calls and observe it through the OnChange hook.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"itdash/internal/action"
	"itdash/internal/history"
	"itdash/internal/logging"
	"itdash/internal/schedule"
	"itdash/internal/store"
	"itdash/internal/task"
)

// ErrPendingRemoval is returned when deleting a task whose removal is
// already scheduled.
var ErrPendingRemoval = errors.New("task is already being deleted")

// User-facing notices.
const (
	NoticeEmptyAdd   = "Please enter a task before adding it."
	NoticeEmptyEdit  = "Task cannot be empty. Reverting to original text."
	NoticeDoneEdit   = "Action cannot be made. The task is already marked as done."
	NoticePending    = "This task is already being deleted."
	confirmDeleteFmt = "Are you sure you want to delete \"%s\"?"
)

// DeletePrompt is the confirmation question asked before deleting text.
func DeletePrompt(text string) string {
	return fmt.Sprintf(confirmDeleteFmt, text)
}

// Prompter is what the presentation layer lends the session for user
// interaction.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(message string) bool

	// Notice shows a blocking message.
	Notice(message string)
}

// Options tune a Controller. Zero values mean defaults.
type Options struct {
	Clock         schedule.Clock
	FlashDuration time.Duration
	AckDelay      time.Duration
	Logger        *slog.Logger

	// OnChange runs after every state change, including deferred ones.
	OnChange func()
}

// Controller is the session controller. Not safe for concurrent use: every
// call, including Scheduler().RunDue, must come from one goroutine.
type Controller struct {
	kv       store.KV
	prompt   Prompter
	tasks    *task.Registry
	history  *history.Log
	actions  *action.Logger
	sched    *schedule.Scheduler
	log      *slog.Logger
	ackDelay time.Duration
	onChange func()

	pending     map[string]removal // task id -> scheduled removal
	deferredErr error
}

// removal is a scheduled delete and the history entry announcing it.
type removal struct {
	token *schedule.Token
	entry uint64
}

// New creates a controller persisting to kv. Call Load before use.
func New(kv store.KV, prompt Prompter, opts Options) *Controller {
	if opts.FlashDuration <= 0 {
		opts.FlashDuration = time.Second
	}
	if opts.AckDelay <= 0 {
		opts.AckDelay = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	sched := schedule.New(opts.Clock)
	hist := history.NewLog()
	c := &Controller{
		kv:       kv,
		prompt:   prompt,
		tasks:    task.NewRegistry(),
		history:  hist,
		actions:  action.NewLogger(hist, sched, opts.FlashDuration),
		sched:    sched,
		log:      opts.Logger.With("component", "session"),
		ackDelay: opts.AckDelay,
		onChange: opts.OnChange,
		pending:  make(map[string]removal),
	}
	c.actions.OnClear = func(string) { c.changed() }
	return c
}

// Load reads both collections once. Missing or malformed data starts empty.
func (c *Controller) Load() {
	var records []task.Record
	if !store.Load(c.kv, store.Tasks, &records) {
		c.log.Debug("no usable stored tasks, starting empty")
		records = nil
	}
	c.tasks.Restore(records)

	var messages []string
	if !store.Load(c.kv, store.History, &messages) {
		c.log.Debug("no usable stored history, starting empty")
		messages = nil
	}
	c.history.Restore(messages)
	c.log.Debug("session loaded", "tasks", c.tasks.Len(), "history", c.history.Len())
	c.changed()
}

// Tasks returns the task records in order.
func (c *Controller) Tasks() []task.Record { return c.tasks.Records() }

// History returns the history entries, most recent first.
func (c *Controller) History() []history.Entry { return c.history.Entries() }

// Highlight returns the active flash class for an action target.
func (c *Controller) Highlight(target string) (string, bool) {
	return c.actions.Highlight(target)
}

// Index returns the current position of the task with id, or -1.
func (c *Controller) Index(id string) int { return c.tasks.Index(id) }

// PendingRemoval reports whether the task with id is scheduled for removal.
func (c *Controller) PendingRemoval(id string) bool {
	return c.pending[id].token.Pending()
}

// Scheduler exposes the deferred-work queue so the caller's event loop can
// run due callbacks.
func (c *Controller) Scheduler() *schedule.Scheduler { return c.sched }

// Err returns and clears the first error hit by deferred work.
func (c *Controller) Err() error {
	err := c.deferredErr
	c.deferredErr = nil
	return err
}

// Add appends a task with text.
func (c *Controller) Add(text string) (task.Record, error) {
	snap := c.tasks.Snapshot()
	rec, err := c.tasks.Add(text)
	if err != nil {
		c.prompt.Notice(NoticeEmptyAdd)
		return task.Record{}, err
	}
	if err := c.saveTasks(); err != nil {
		c.tasks.Restore(snap)
		return task.Record{}, err
	}
	c.record(history.Added, rec.Text, rec.ID)
	return rec, nil
}

// Edit replaces the text of the task at index. It reports whether the text
// changed; an unchanged text is a silent no-op.
func (c *Controller) Edit(index int, text string) (bool, error) {
	snap := c.tasks.Snapshot()
	old, changed, err := c.tasks.Edit(index, text)
	switch {
	case errors.Is(err, task.ErrTaskDone):
		c.prompt.Notice(NoticeDoneEdit)
		return false, err
	case errors.Is(err, task.ErrEmptyText):
		c.prompt.Notice(NoticeEmptyEdit)
		return false, err
	case err != nil:
		return false, err
	case !changed:
		return false, nil
	}
	if err := c.saveTasks(); err != nil {
		c.tasks.Restore(snap)
		return false, err
	}
	rec, _ := c.tasks.At(index)
	c.record(history.TaskChanged, history.ChangedText(old, rec.Text), rec.ID)
	return true, nil
}

// ToggleDone flips the done state of the task at index.
func (c *Controller) ToggleDone(index int) (task.Record, error) {
	snap := c.tasks.Snapshot()
	rec, err := c.tasks.Toggle(index)
	if err != nil {
		return task.Record{}, err
	}
	if err := c.saveTasks(); err != nil {
		c.tasks.Restore(snap)
		return task.Record{}, err
	}
	category := history.Unchecked
	if rec.Done {
		category = history.MarkedDone
	}
	c.record(category, rec.Text, rec.ID)
	return rec, nil
}

// Remove asks for confirmation and, when given, logs the deletion and
// schedules the task's removal after the acknowledgment delay. It reports
// whether a removal was scheduled; a declined confirmation returns false
// and no error.
func (c *Controller) Remove(index int) (bool, error) {
	rec, err := c.tasks.At(index)
	if err != nil {
		return false, err
	}
	if c.PendingRemoval(rec.ID) {
		c.prompt.Notice(NoticePending)
		return false, ErrPendingRemoval
	}
	if !c.prompt.Confirm(DeletePrompt(rec.Text)) {
		c.log.Debug("delete cancelled", "task", rec.ID)
		return false, nil
	}
	entry := c.record(history.Deleted, rec.Text, rec.ID)
	id := rec.ID
	c.pending[id] = removal{
		token: c.sched.After(c.ackDelay, func() { c.finishRemoval(id) }),
		entry: entry.Seq,
	}
	return true, nil
}

func (c *Controller) finishRemoval(id string) {
	r := c.pending[id]
	delete(c.pending, id)
	c.actions.Drop(action.RowTarget(id))
	snap := c.tasks.Snapshot()
	if _, err := c.tasks.RemoveID(id); err != nil {
		c.log.Debug("deferred removal target gone", "task", id)
		return
	}
	if err := c.saveTasks(); err != nil {
		c.tasks.Restore(snap)
		c.log.Warn("deferred removal not persisted", "task", id, "error", err)
		if c.deferredErr == nil {
			c.deferredErr = err
		}
		// The task is back, so its Deleted entry goes too.
		if c.history.Remove(r.entry) {
			c.actions.Drop(action.EntryTarget(r.entry))
			c.saveHistory()
		}
	}
	c.changed()
}

func (c *Controller) record(category history.Category, subject, taskID string) history.Entry {
	e := c.actions.Log(category, subject, taskID)
	c.saveHistory()
	c.changed()
	return e
}

func (c *Controller) saveHistory() {
	if err := store.Save(c.kv, store.History, c.history.Messages()); err != nil {
		c.log.Warn("history not persisted", "error", err)
	}
}

func (c *Controller) saveTasks() error {
	if err := store.Save(c.kv, store.Tasks, c.tasks.Records()); err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	return nil
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Noticed reports whether err was already shown to the user as a notice.
func Noticed(err error) bool {
	return errors.Is(err, task.ErrEmptyText) ||
		errors.Is(err, task.ErrTaskDone) ||
		errors.Is(err, ErrPendingRemoval)
}
