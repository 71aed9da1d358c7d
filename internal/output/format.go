// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"itdash/internal/history"
	"itdash/internal/task"
)

// Checkbox markers.
const (
	CheckedBox   = "[x]"
	UncheckedBox = "[ ]"
)

// FormatTask formats a task line.
// Format: "{N:>4}  {BOX} {TEXT}\n" (4-wide right-aligned number, two spaces, checkbox, text)
func FormatTask(w io.Writer, num int, rec task.Record) {
	box := UncheckedBox
	if rec.Done {
		box = CheckedBox
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, normalizeTitle(rec.Text))
}

// FormatHistory formats a history entry as plain text.
func FormatHistory(w io.Writer, e history.Entry) {
	fmt.Fprintln(w, normalizeTitle(history.PlainText(e.Message)))
}

// normalizeTitle normalizes a line for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
