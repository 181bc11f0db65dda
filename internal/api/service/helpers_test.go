package service

import (
	"context"
	"sync"
)

// fakeChat records prompts and answers them from a fixed script.
type fakeChat struct {
	mu      sync.Mutex
	prompts []string
	replies []string
	err     error
	failAt  int // 1-based call index that fails, 0 never
}

func (f *fakeChat) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	n := len(f.prompts)
	if f.err != nil && (f.failAt == 0 || f.failAt == n) {
		return "", f.err
	}
	if n <= len(f.replies) {
		return f.replies[n-1], nil
	}
	return "", nil
}

func (f *fakeChat) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type publishedEvent struct {
	subject string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{subject: subject, payload: payload})
	return p.err
}

func (p *recordingPublisher) Close() {}
