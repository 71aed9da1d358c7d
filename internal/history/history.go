// Package history holds the capped, most-recent-first action log.
package history

import (
	"fmt"
	"io"
	"strings"
	"time"

	xhtml "golang.org/x/net/html"
)

// MaxEntries is the history capacity; appending beyond it evicts the oldest entry.
const MaxEntries = 20

// TimestampLayout renders times like "3:04:05 PM".
const TimestampLayout = "3:04:05 PM"

// Category is the kind of action an entry records.
type Category string

// Action categories.
const (
	Added       Category = "Added"
	Deleted     Category = "Deleted"
	TaskChanged Category = "Task changed"
	MarkedDone  Category = "Marked as done"
	Unchecked   Category = "Unchecked"
)

type style struct {
	icon  string
	flash string
}

var styles = map[Category]style{
	Added:       {icon: "🟢", flash: "flash-green"},
	Deleted:     {icon: "🔴", flash: "flash-red"},
	TaskChanged: {icon: "🟣", flash: "flash-green"},
	MarkedDone:  {icon: "🟡", flash: "flash-yellow"},
	Unchecked:   {icon: "🔵", flash: "flash-gray"},
}

// Icon returns the icon for c, or "" for an unknown category.
func (c Category) Icon() string { return styles[c].icon }

// Flash returns the highlight class for c, or "" for an unknown category.
func (c Category) Flash() string { return styles[c].flash }

// Entry is one immutable log line. Category is empty for entries restored
// from storage, which keeps only the rendered message.
type Entry struct {
	Seq      uint64
	Message  string
	Category Category
}

// ChangedText builds the subject of a TaskChanged entry from the old and
// new task text.
func ChangedText(oldText, newText string) string {
	return oldText + `" to "` + newText
}

// textEscaper escapes markup characters in task text. Quotes are left alone
// since the text only ever lands in element content.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render formats the display string for an action.
func Render(c Category, subject string, ts time.Time) string {
	var b strings.Builder
	if icon := c.Icon(); icon != "" {
		b.WriteString(icon)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, `%s "%s" — <span style="color:#888; font-size:12px;">(%s)</span>`,
		c, textEscaper.Replace(subject), ts.Format(TimestampLayout))
	return b.String()
}

// Log is a bounded list of entries, most recent first. Not safe for concurrent use.
type Log struct {
	entries []Entry
	seq     uint64
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append inserts a new entry at the head and evicts from the tail while the
// log exceeds MaxEntries.
func (l *Log) Append(c Category, subject string, ts time.Time) Entry {
	l.seq++
	e := Entry{Seq: l.seq, Message: Render(c, subject, ts), Category: c}
	next := make([]Entry, 0, len(l.entries)+1)
	next = append(next, e)
	next = append(next, l.entries...)
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}
	l.entries = next
	return e
}

// Restore replaces the log with stored messages, verbatim and in stored order.
func (l *Log) Restore(messages []string) {
	if len(messages) > MaxEntries {
		messages = messages[:MaxEntries]
	}
	l.entries = make([]Entry, len(messages))
	for i, m := range messages {
		l.seq++
		l.entries[i] = Entry{Seq: l.seq, Message: m}
	}
}

// Remove drops the entry with seq. It reports false when the entry is gone,
// evicted or never present.
func (l *Log) Remove(seq uint64) bool {
	for i, e := range l.entries {
		if e.Seq == seq {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of the entries, most recent first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the rendered messages, most recent first. This is the
// persisted form of the log.
func (l *Log) Messages() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Message
	}
	return out
}

// PlainText strips markup from a rendered message for terminal output.
func PlainText(message string) string {
	z := xhtml.NewTokenizer(strings.NewReader(message))
	var b strings.Builder
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			if z.Err() == io.EOF {
				return b.String()
			}
			// Malformed markup: fall back to the raw message.
			return message
		case xhtml.TextToken:
			b.Write(z.Text())
		}
	}
}
