// Package action turns task mutations into history entries and drives the
// transient highlight shown on the affected row and on the new entry.
package action

import (
	"strconv"
	"time"

	"itdash/internal/history"
	"itdash/internal/schedule"
)

// RowTarget names the highlight target of a task row.
func RowTarget(taskID string) string { return "row:" + taskID }

// EntryTarget names the highlight target of a history entry.
func EntryTarget(seq uint64) string { return "entry:" + strconv.FormatUint(seq, 10) }

type highlight struct {
	class string
	token *schedule.Token
}

// Logger appends history entries and tracks active highlights.
// Highlights carry no state the data model depends on.
type Logger struct {
	log      *history.Log
	sched    *schedule.Scheduler
	duration time.Duration
	active   map[string]highlight

	// OnClear, if set, runs after a highlight is cleared by its timer.
	OnClear func(target string)
}

// NewLogger returns a Logger appending to log and clearing highlights after d.
func NewLogger(log *history.Log, sched *schedule.Scheduler, d time.Duration) *Logger {
	return &Logger{
		log:      log,
		sched:    sched,
		duration: d,
		active:   make(map[string]highlight),
	}
}

// Log appends an entry for category c about subject, timestamped now, and
// highlights the new entry and the row of taskID (when non-empty).
func (l *Logger) Log(c history.Category, subject, taskID string) history.Entry {
	e := l.log.Append(c, subject, l.sched.Now())
	class := c.Flash()
	if class == "" {
		return e
	}
	l.start(EntryTarget(e.Seq), class)
	if taskID != "" {
		l.start(RowTarget(taskID), class)
	}
	return e
}

func (l *Logger) start(target, class string) {
	if prev, ok := l.active[target]; ok {
		prev.token.Cancel()
	}
	var tok *schedule.Token
	tok = l.sched.After(l.duration, func() {
		if cur, ok := l.active[target]; !ok || cur.token != tok {
			return
		}
		delete(l.active, target)
		if l.OnClear != nil {
			l.OnClear(target)
		}
	})
	l.active[target] = highlight{class: class, token: tok}
}

// Highlight returns the active flash class for target.
func (l *Logger) Highlight(target string) (string, bool) {
	h, ok := l.active[target]
	return h.class, ok
}

// Active returns the number of active highlights.
func (l *Logger) Active() int { return len(l.active) }

// Drop clears the highlight on target and cancels its pending clear. Used
// when the target goes away before its timer fires.
func (l *Logger) Drop(target string) {
	if h, ok := l.active[target]; ok {
		h.token.Cancel()
		delete(l.active, target)
	}
}
