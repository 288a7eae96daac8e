package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// DefaultTimeout is applied when an ExecRunner is created without one.
const DefaultTimeout = time.Minute * 5

// Children of the script can hold the output pipes open after it's killed.
const waitDelay = time.Second * 2

// ExecRunner runs commands as local processes.
type ExecRunner struct {
	log     logr.Logger
	workDir string
	env     []string
	timeout time.Duration
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithWorkDir sets the directory the command runs in.
func WithWorkDir(dir string) Option {
	return func(e *ExecRunner) {
		e.workDir = dir
	}
}

// WithEnv adds "KEY=value" entries to the environment inherited from this
// process.
func WithEnv(env ...string) Option {
	return func(e *ExecRunner) {
		e.env = append(e.env, env...)
	}
}

// WithTimeout limits how long a single command can run, zero disables the
// limit.
func WithTimeout(d time.Duration) Option {
	return func(e *ExecRunner) {
		e.timeout = d
	}
}

// NewExecRunner creates and returns a new ExecRunner.
func NewExecRunner(l logr.Logger, opts ...Option) *ExecRunner {
	e := &ExecRunner{log: l, timeout: DefaultTimeout}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run is an implementation of the Runner interface.
func (e *ExecRunner) Run(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", &Failure{Kind: SpawnFailure, Err: errors.New("no command to run")}
	}
	name := args[0]
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args[1:]...)
	cmd.Dir = e.workDir
	cmd.WaitDelay = waitDelay
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.log.V(1).Info("running command", "command", strings.Join(args, " "), "dir", e.workDir)
	start := time.Now()
	err := cmd.Run()
	if err != nil {
		f := classify(ctx, name, err)
		f.Stderr = strings.TrimSpace(stderr.String())
		e.log.Error(f, "command failed", "kind", f.Kind.String(), "exitCode", f.ExitCode, "stderr", f.Stderr)
		return "", f
	}
	e.log.V(1).Info("command completed", "command", name, "elapsed", time.Since(start).String(), "bytes", stdout.Len())
	return stdout.String(), nil
}

func classify(ctx context.Context, name string, err error) *Failure {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &Failure{Kind: Timeout, Command: name, ExitCode: -1, Err: ctx.Err()}
	case errors.Is(ctx.Err(), context.Canceled):
		return &Failure{Kind: Cancelled, Command: name, ExitCode: -1, Err: ctx.Err()}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Failure{Kind: NonZeroExit, Command: name, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return &Failure{Kind: SpawnFailure, Command: name, ExitCode: -1, Err: err}
}
