package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// linePrompter asks confirmations on a line-oriented terminal.
type linePrompter struct {
	in     *bufio.Reader
	errOut io.Writer
	yes    bool
}

func newLinePrompter(in io.Reader, errOut io.Writer, yes bool) *linePrompter {
	if in == nil {
		in = strings.NewReader("")
	}
	return &linePrompter{in: bufio.NewReader(in), errOut: errOut, yes: yes}
}

// Confirm prints message with a [y/N] suffix and reads one line.
// EOF counts as no.
func (p *linePrompter) Confirm(message string) bool {
	if p.yes {
		return true
	}
	fmt.Fprintf(p.errOut, "%s [y/N] ", message)
	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Notice prints message as an error line.
func (p *linePrompter) Notice(message string) {
	fmt.Fprintf(p.errOut, "error: %s\n", message)
}
