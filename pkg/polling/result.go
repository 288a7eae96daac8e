package polling

import "github.com/bigkevmcd/store-polling-operator/pkg/revision"

// Change is the verdict of a single poll.
type Change int

const (
	// NoChanges means nothing new was observed, or the query failed.
	NoChanges Change = iota
	// Significant means the repository differs from the baseline.
	Significant
	// BuildNow means there is no baseline and a build should be started.
	BuildNow
)

func (c Change) String() string {
	switch c {
	case NoChanges:
		return "NoChanges"
	case Significant:
		return "Significant"
	case BuildNow:
		return "BuildNow"
	}
	return "Unknown"
}

// Result is the outcome of a poll.
//
// Baseline and Current are only populated when the query succeeded.
type Result struct {
	Change   Change
	Baseline *revision.State
	Current  *revision.State
}

// BuildRequired returns true if the result should trigger a build.
func (r Result) BuildRequired() bool {
	return r.Change == BuildNow || r.Change == Significant
}

// Changes returns the pundles that changed between the baseline and the
// current state.
func (r Result) Changes() []revision.Change {
	if r.Change != Significant {
		return nil
	}
	return revision.Diff(r.Baseline, r.Current)
}
