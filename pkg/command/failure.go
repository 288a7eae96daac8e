package command

import "fmt"

// FailureKind classifies why a command produced no usable output.
type FailureKind int

const (
	// SpawnFailure means the process could not be started.
	SpawnFailure FailureKind = iota
	// NonZeroExit means the process ran and reported an error.
	NonZeroExit
	// Timeout means the process was killed after the deadline passed.
	Timeout
	// Cancelled means the caller cancelled the run.
	Cancelled
)

func (k FailureKind) String() string {
	switch k {
	case SpawnFailure:
		return "spawn failure"
	case NonZeroExit:
		return "non-zero exit"
	case Timeout:
		return "timeout"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Failure is returned by Runners when the command did not succeed.
type Failure struct {
	Kind     FailureKind
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case NonZeroExit:
		return fmt.Sprintf("command %s exited with status %d", f.Command, f.ExitCode)
	case Timeout:
		return fmt.Sprintf("command %s timed out", f.Command)
	case Cancelled:
		return fmt.Sprintf("command %s was cancelled", f.Command)
	}
	return fmt.Sprintf("failed to start command %s: %v", f.Command, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
