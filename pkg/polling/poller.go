package polling

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/bigkevmcd/store-polling-operator/pkg/command"
	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

// ErrNoScript is returned when polling without a query script.
var ErrNoScript = errors.New("no store query script configured")

// Poller compares the current state of a Store repository with a baseline.
//
// A Poller holds no state between polls, the same Poller can be used for
// different repositories concurrently if the Runner allows it.
type Poller struct {
	runner command.Runner
	log    logr.Logger
}

// New creates and returns a new Poller.
func New(r command.Runner, l logr.Logger) *Poller {
	return &Poller{runner: r, log: l}
}

// Poll queries the repository with the script and compares the result with
// the baseline.
//
// A nil baseline means nothing has been built yet, and always results in
// BuildNow without running the script. Failures to run the script are logged
// and result in NoChanges, the only error returned is ErrNoScript.
func (p *Poller) Poll(ctx context.Context, spec store.RepositorySpec, baseline *revision.State, script string) (Result, error) {
	log := p.log.WithValues("repository", spec.RepositoryName)
	if baseline == nil {
		log.Info("No existing build. Scheduling a new one.")
		return Result{Change: BuildNow}, nil
	}
	if script == "" {
		return Result{}, ErrNoScript
	}

	output, err := p.runner.Run(ctx, store.PollingCommand(spec, script))
	if err != nil {
		log.Error(err, "Polling the store repository failed, assuming no changes")
		return Result{Change: NoChanges}, nil
	}

	current := revision.Parse(output)
	if current.Equal(baseline) {
		log.V(1).Info("Repository unchanged", "digest", current.Digest)
		return Result{Change: NoChanges, Baseline: baseline, Current: current}, nil
	}

	result := Result{Change: Significant, Baseline: baseline, Current: current}
	log.Info("Repository changed", "baseline", baseline.Digest, "current", current.Digest, "changes", len(result.Changes()))
	return result, nil
}

// Snapshot queries the repository and returns its current state.
//
// Unlike Poll, failures are returned to the caller.
func (p *Poller) Snapshot(ctx context.Context, spec store.RepositorySpec, script string) (*revision.State, error) {
	if script == "" {
		return nil, ErrNoScript
	}
	output, err := p.runner.Run(ctx, store.PollingCommand(spec, script))
	if err != nil {
		return nil, fmt.Errorf("failed to query repository %s: %w", spec.RepositoryName, err)
	}
	return revision.Parse(output), nil
}
