package testutil

import (
	"fmt"
	"sync"
)

// CallKind identifies which IO method was called
type CallKind string

const (
	CallWrite           CallKind = "write"
	CallAskConfirmation CallKind = "askConfirmation"
	CallAsk             CallKind = "ask"
)

// Call is one recorded IO interaction
type Call struct {
	Kind     CallKind
	Message  string
	Default  string
	Answered string
}

// FakeIO is a scripted types.IO. It records calls in order and answers from
// queues; when a queue is empty Ask echoes the default and AskConfirmation
// returns ConfirmDefault.
type FakeIO struct {
	mu sync.Mutex

	ConfirmDefault bool
	Confirmations  []bool
	Answers        []string
	AskErr         error
	ConfirmErr     error

	calls []Call
}

// NewFakeIO returns a fake that echoes defaults and confirms nothing
func NewFakeIO() *FakeIO {
	return &FakeIO{}
}

// WithConfirmations queues answers for AskConfirmation
func (f *FakeIO) WithConfirmations(answers ...bool) *FakeIO {
	f.Confirmations = append(f.Confirmations, answers...)
	return f
}

// WithAnswers queues answers for Ask
func (f *FakeIO) WithAnswers(answers ...string) *FakeIO {
	f.Answers = append(f.Answers, answers...)
	return f
}

func (f *FakeIO) Write(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Kind: CallWrite, Message: message})
}

func (f *FakeIO) AskConfirmation(question string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	answer := f.ConfirmDefault
	if len(f.Confirmations) > 0 {
		answer = f.Confirmations[0]
		f.Confirmations = f.Confirmations[1:]
	}
	f.calls = append(f.calls, Call{Kind: CallAskConfirmation, Message: question, Answered: fmt.Sprint(answer)})
	if f.ConfirmErr != nil {
		return false, f.ConfirmErr
	}
	return answer, nil
}

func (f *FakeIO) Ask(question, def string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	answer := def
	if len(f.Answers) > 0 {
		answer = f.Answers[0]
		f.Answers = f.Answers[1:]
	}
	f.calls = append(f.calls, Call{Kind: CallAsk, Message: question, Default: def, Answered: answer})
	if f.AskErr != nil {
		return "", f.AskErr
	}
	return answer, nil
}

// Calls returns every recorded call in order
func (f *FakeIO) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallsOf returns the recorded calls of one kind in order
func (f *FakeIO) CallsOf(kind CallKind) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Writes returns the messages passed to Write
func (f *FakeIO) Writes() []string {
	var out []string
	for _, c := range f.CallsOf(CallWrite) {
		out = append(out, c.Message)
	}
	return out
}

// Questions returns the prompts passed to Ask
func (f *FakeIO) Questions() []string {
	var out []string
	for _, c := range f.CallsOf(CallAsk) {
		out = append(out, c.Message)
	}
	return out
}
