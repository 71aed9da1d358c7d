package testutil

// FakePrompter records prompts and answers confirmations with Answer.
type FakePrompter struct {
	Answer   bool
	Confirms []string
	Notices  []string
}

// Confirm implements session.Prompter.
func (p *FakePrompter) Confirm(message string) bool {
	p.Confirms = append(p.Confirms, message)
	return p.Answer
}

// Notice implements session.Prompter.
func (p *FakePrompter) Notice(message string) {
	p.Notices = append(p.Notices, message)
}
