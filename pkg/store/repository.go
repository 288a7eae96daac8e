package store

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	// DefaultVersionRegex matches every version.
	DefaultVersionRegex = ".+"

	// DefaultMinimumBlessingLevel is used when no minimum is configured.
	DefaultMinimumBlessingLevel = "Development"
)

// BlessingLevels are the Store blessing levels, lowest first.
var BlessingLevels = []string{
	"Broken",
	"Work In Progress",
	"Development",
	"To Review",
	"Patch",
	"Integration-Ready",
	"Integrated",
	"Ready to Merge",
	"Merged",
	"Tested",
	"Internal Release",
	"Released",
}

// PundleSpec names a package or bundle tracked in a Store repository.
type PundleSpec struct {
	Name string `json:"name" mapstructure:"name"`
}

// RepositorySpec describes what to query in a Store repository.
//
// The order of Pundles is significant, it's passed verbatim to the query
// script.
type RepositorySpec struct {
	RepositoryName       string       `json:"repositoryName" mapstructure:"repositoryName"`
	Pundles              []PundleSpec `json:"pundles,omitempty" mapstructure:"pundles"`
	VersionRegex         string       `json:"versionRegex,omitempty" mapstructure:"versionRegex"`
	MinimumBlessingLevel string       `json:"minimumBlessingLevel,omitempty" mapstructure:"minimumBlessingLevel"`
}

// NewRepositorySpec creates a RepositorySpec for the named pundles, with the
// default version pattern and blessing level.
func NewRepositorySpec(repositoryName string, pundles ...string) RepositorySpec {
	specs := []PundleSpec{}
	for _, p := range pundles {
		specs = append(specs, PundleSpec{Name: p})
	}
	return RepositorySpec{
		RepositoryName:       repositoryName,
		Pundles:              specs,
		VersionRegex:         DefaultVersionRegex,
		MinimumBlessingLevel: DefaultMinimumBlessingLevel,
	}
}

// WithDefaults returns a copy of the spec with empty optional fields filled
// in.
func (r RepositorySpec) WithDefaults() RepositorySpec {
	if r.VersionRegex == "" {
		r.VersionRegex = DefaultVersionRegex
	}
	if r.MinimumBlessingLevel == "" {
		r.MinimumBlessingLevel = DefaultMinimumBlessingLevel
	}
	return r
}

// PundleNames returns the names of the pundles in order.
func (r RepositorySpec) PundleNames() []string {
	names := make([]string, len(r.Pundles))
	for i, p := range r.Pundles {
		names[i] = p.Name
	}
	return names
}

// Validate checks the spec for configuration errors.
//
// The query script is the authority on what the values mean, this only
// catches mistakes that can't possibly work.
func (r RepositorySpec) Validate() error {
	var errs []error
	if r.RepositoryName == "" {
		errs = append(errs, errors.New("repository name is required"))
	}
	for i, p := range r.Pundles {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("pundle %d has no name", i))
		}
	}
	if _, err := regexp.Compile(r.VersionRegex); err != nil {
		errs = append(errs, fmt.Errorf("invalid version pattern %#v: %w", r.VersionRegex, err))
	}
	if _, ok := BlessingRank(r.MinimumBlessingLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown blessing level %#v", r.MinimumBlessingLevel))
	}
	return errors.Join(errs...)
}

// BlessingRank returns the position of the level in BlessingLevels.
func BlessingRank(level string) (int, bool) {
	for i, l := range BlessingLevels {
		if l == level {
			return i, true
		}
	}
	return -1, false
}
