package command

import (
	"context"
	"strings"
	"testing"
)

var _ Runner = (*MockRunner)(nil)

// NewMockRunner creates and returns a new mock Runner.
func NewMockRunner(t *testing.T) *MockRunner {
	return &MockRunner{responses: make(map[string]string), t: t}
}

// MockRunner is a mock Runner that returns fixed responses to commands.
type MockRunner struct {
	t         *testing.T
	responses map[string]string
	runError  error
	calls     [][]string
}

// Run is an implementation of the Runner interface.
func (m *MockRunner) Run(ctx context.Context, args []string) (string, error) {
	m.calls = append(m.calls, append([]string(nil), args...))
	if m.runError != nil {
		return "", m.runError
	}
	out, ok := m.responses[mockKey(args)]
	if !ok {
		return "", &Failure{Kind: SpawnFailure, Command: strings.Join(args, " "), ExitCode: -1}
	}
	return out, nil
}

// AddMockResponse sets up the output returned for a command.
func (m *MockRunner) AddMockResponse(args []string, output string) {
	m.responses[mockKey(args)] = output
}

// FailWithError configures the runner to return errors.
func (m *MockRunner) FailWithError(err error) {
	m.runError = err
}

// AssertCommandRun ensures that the command was run.
func (m *MockRunner) AssertCommandRun(args []string) {
	m.t.Helper()
	for _, c := range m.calls {
		if mockKey(c) == mockKey(args) {
			return
		}
	}
	m.t.Fatalf("command %#v was not run, got %#v", args, m.calls)
}

// RefuteCommandRun ensures that no command was run.
func (m *MockRunner) RefuteCommandRun() {
	m.t.Helper()
	if len(m.calls) > 0 {
		m.t.Fatalf("no commands should have been run, got %#v", m.calls)
	}
}

func mockKey(args []string) string {
	return strings.Join(args, "\x00")
}
