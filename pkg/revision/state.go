package revision

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Version is a single pundle version reported by the query script.
type Version struct {
	Pundle   string `json:"pundle" yaml:"pundle"`
	Version  string `json:"version" yaml:"version"`
	Blessing string `json:"blessing,omitempty" yaml:"blessing,omitempty"`
}

// State is a snapshot of the versions visible in a Store repository.
//
// States are never modified once parsed, a new poll produces a new State.
type State struct {
	Versions []Version `json:"versions,omitempty" yaml:"versions,omitempty"`
	Digest   string    `json:"digest" yaml:"digest"`
}

// Parse creates a State from the output of the query script.
//
// Each line is "pundle<TAB>version<TAB>blessing", lines without a tab are
// split on whitespace instead. Blank lines and lines starting with '#' are
// skipped. Parse never fails, unexpected lines are kept as best it can so that
// any change in the output is still visible.
func Parse(output string) *State {
	versions := []Version{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		versions = append(versions, parseLine(line))
	}
	sortVersions(versions)
	return &State{Versions: versions, Digest: digest(versions)}
}

func sortVersions(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].less(versions[j])
	})
}

func parseLine(line string) Version {
	var fields []string
	if strings.Contains(line, "\t") {
		fields = strings.SplitN(line, "\t", 3)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	} else {
		fields = strings.Fields(line)
		if len(fields) > 3 {
			fields = append(fields[:2], strings.Join(fields[2:], " "))
		}
	}
	v := Version{Pundle: fields[0]}
	if len(fields) > 1 {
		v.Version = fields[1]
	}
	if len(fields) > 2 {
		v.Blessing = fields[2]
	}
	return v
}

func (v Version) less(o Version) bool {
	if v.Pundle != o.Pundle {
		return v.Pundle < o.Pundle
	}
	if v.Version != o.Version {
		return v.Version < o.Version
	}
	return v.Blessing < o.Blessing
}

func (v Version) String() string {
	return v.Pundle + "\t" + v.Version + "\t" + v.Blessing
}

func digest(versions []Version) string {
	h := sha256.New()
	for _, v := range versions {
		h.Write([]byte(v.String()))
		h.Write([]byte("\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Equal returns true if two States have the same versions, in any order.
//
// A nil State is only equal to another nil State.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.Versions) != len(o.Versions) {
		return false
	}
	a, b := sortedCopy(s.Versions), sortedCopy(o.Versions)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedCopy(versions []Version) []Version {
	c := make([]Version, len(versions))
	copy(c, versions)
	sortVersions(c)
	return c
}

// Pundles returns the names of the pundles in the State, without duplicates.
func (s *State) Pundles() []string {
	if s == nil {
		return nil
	}
	names := []string{}
	seen := map[string]bool{}
	for _, v := range s.Versions {
		if !seen[v.Pundle] {
			seen[v.Pundle] = true
			names = append(names, v.Pundle)
		}
	}
	return names
}

// DeepCopyInto copies the receiver into out.
func (s *State) DeepCopyInto(out *State) {
	*out = *s
	if s.Versions != nil {
		out.Versions = make([]Version, len(s.Versions))
		copy(out.Versions, s.Versions)
	}
}

// DeepCopy returns a copy of the State.
func (s *State) DeepCopy() *State {
	if s == nil {
		return nil
	}
	out := new(State)
	s.DeepCopyInto(out)
	return out
}
