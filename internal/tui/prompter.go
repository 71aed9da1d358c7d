package tui

// Prompter is the session prompter backing the dashboard's modals.
// Confirmation is collected by the confirm modal before the session asks,
// so Confirm only reports the answer already given. Notices queue up and
// are shown one at a time.
type Prompter struct {
	answer  bool
	notices []string
}

// NewPrompter returns an empty prompter.
func NewPrompter() *Prompter { return &Prompter{} }

// Confirm implements session.Prompter.
func (p *Prompter) Confirm(string) bool { return p.answer }

// Notice implements session.Prompter.
func (p *Prompter) Notice(message string) {
	p.notices = append(p.notices, message)
}

// Current returns the notice on screen, if any.
func (p *Prompter) Current() (string, bool) {
	if len(p.notices) == 0 {
		return "", false
	}
	return p.notices[0], true
}

// Dismiss drops the notice on screen.
func (p *Prompter) Dismiss() {
	if len(p.notices) > 0 {
		p.notices = p.notices[1:]
	}
}

// confirmed runs fn with Confirm answering yes.
func (p *Prompter) confirmed(fn func()) {
	p.answer = true
	defer func() { p.answer = false }()
	fn()
}
