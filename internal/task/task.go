// Package task holds the ordered, in-memory task registry.
//
// Records are addressed by position for user-facing operations, and by a
// session-scoped id for anything deferred (removal after the acknowledgment
// delay, highlight clears), so index shifts never hit the wrong row.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrEmptyText is returned when task text is empty after trimming.
	ErrEmptyText = errors.New("task text is empty")

	// ErrTaskDone is returned when editing a task already marked as done.
	ErrTaskDone = errors.New("task is already marked as done")

	// ErrOutOfRange is returned for an index outside the registry.
	ErrOutOfRange = errors.New("task number out of range")

	// ErrNotFound is returned for an unknown id.
	ErrNotFound = errors.New("task not found")
)

// Record is one to-do item.
type Record struct {
	ID   string `json:"-"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Registry is an ordered list of records. Not safe for concurrent use.
type Registry struct {
	records []Record
	newID   func() string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{newID: uuid.NewString}
}

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.records) }

// Records returns a copy of the records in order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// At returns the record at index.
func (r *Registry) At(index int) (Record, error) {
	if index < 0 || index >= len(r.records) {
		return Record{}, fmt.Errorf("%w: %d", ErrOutOfRange, index+1)
	}
	return r.records[index], nil
}

// Index returns the current position of id, or -1.
func (r *Registry) Index(id string) int {
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new open record with the trimmed text.
func (r *Registry) Add(text string) (Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Record{}, ErrEmptyText
	}
	rec := Record{ID: r.newID(), Text: text}
	r.records = append(r.records, rec)
	return rec, nil
}

// Edit replaces the text of the record at index. It returns the previous
// text and whether anything changed; an unchanged text is not an error.
func (r *Registry) Edit(index int, text string) (old string, changed bool, err error) {
	rec, err := r.At(index)
	if err != nil {
		return "", false, err
	}
	if rec.Done {
		return rec.Text, false, ErrTaskDone
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return rec.Text, false, ErrEmptyText
	}
	if text == rec.Text {
		return rec.Text, false, nil
	}
	r.records[index].Text = text
	return rec.Text, true, nil
}

// Toggle flips the done flag of the record at index and returns the result.
func (r *Registry) Toggle(index int) (Record, error) {
	if _, err := r.At(index); err != nil {
		return Record{}, err
	}
	r.records[index].Done = !r.records[index].Done
	return r.records[index], nil
}

// RemoveID deletes the record with id.
func (r *Registry) RemoveID(id string) (Record, error) {
	i := r.Index(id)
	if i < 0 {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	rec := r.records[i]
	r.records = append(r.records[:i:i], r.records[i+1:]...)
	return rec, nil
}

// Snapshot returns a copy suitable for Restore.
func (r *Registry) Snapshot() []Record {
	return r.Records()
}

// Restore replaces the registry content. Records without an id get one;
// records with empty text are dropped so empty text is never persisted.
func (r *Registry) Restore(records []Record) {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		rec.Text = strings.TrimSpace(rec.Text)
		if rec.Text == "" {
			continue
		}
		if rec.ID == "" {
			rec.ID = r.newID()
		}
		out = append(out, rec)
	}
	r.records = out
}
