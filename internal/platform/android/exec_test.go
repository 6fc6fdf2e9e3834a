package android

import (
	"context"
	"strings"
	"sync"
)

// fakeExec records invocations and answers them through respond.
type fakeExec struct {
	mu      sync.Mutex
	calls   []string
	respond func(cmd string) ([]byte, error)
}

func (f *fakeExec) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()
	if f.respond == nil {
		return nil, nil
	}
	return f.respond(cmd)
}

func (f *fakeExec) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeExec) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}
