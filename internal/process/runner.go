package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Executor runs an external tool to completion and returns its stdout.
// Backends depend on this interface so tests can substitute canned output.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

var (
	// ErrTimeout is returned when a command exceeds the runner's timeout.
	ErrTimeout = errors.New("command timed out")
	// ErrOutputTooLarge is returned when stdout exceeds the runner's cap.
	ErrOutputTooLarge = errors.New("command output exceeded limit")
)

const stderrLimit = 64 * 1024

// ExecError describes a failed invocation. Timeouts, oversized output and
// non-zero exits are all reported through it.
type ExecError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }

// Runner executes commands synchronously with a timeout and a stdout cap.
type Runner struct {
	timeout   time.Duration
	maxOutput int
	log       *zap.Logger
}

// NewRunner creates a Runner. A zero timeout or maxOutput disables that bound.
func NewRunner(timeout time.Duration, maxOutput int, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{timeout: timeout, maxOutput: maxOutput, log: log}
}

func (r *Runner) logCommand(name string, args []string) {
	r.log.Debug("exec", zap.String("cmd", name), zap.Strings("args", args))
}

// Run executes a command and returns stdout. Stderr is included in errors.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.logCommand(name, args)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if r.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, r.timeout)
		defer cancelTimeout()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = time.Second

	stdout := &cappedBuffer{limit: r.maxOutput, onOverflow: cancel}
	stderr := &cappedBuffer{limit: stderrLimit}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	switch {
	case stdout.Overflowed():
		return nil, &ExecError{Name: name, Args: args, Stderr: stderr.String(), Err: ErrOutputTooLarge}
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, &ExecError{Name: name, Args: args, Stderr: stderr.String(), Err: ErrTimeout}
	case err != nil:
		return nil, &ExecError{Name: name, Args: args, Stderr: stderr.String(), Err: err}
	}

	return stdout.Bytes(), nil
}

// RunJSON executes a command and parses its stdout as JSON.
func RunJSON(ctx context.Context, e Executor, name string, args ...string) (gjson.Result, error) {
	output, err := e.Run(ctx, name, args...)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(output) {
		return gjson.Result{}, fmt.Errorf("%s %s: invalid JSON output", name, strings.Join(args, " "))
	}
	return gjson.ParseBytes(output), nil
}

// cappedBuffer collects output up to limit bytes. Past the limit it
// discards data, records the overflow and fires onOverflow once so the
// child can be killed instead of blocking on a full pipe.
type cappedBuffer struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	limit      int
	overflow   bool
	onOverflow func()
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.overflow {
		return len(p), nil
	}
	if b.limit > 0 && b.buf.Len()+len(p) > b.limit {
		b.overflow = true
		if b.onOverflow != nil {
			b.onOverflow()
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) Overflowed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.overflow
}

func (b *cappedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Bytes()
}

func (b *cappedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
