package revision

import (
	"fmt"
	"sort"
	"strings"
)

// ChangeType describes how a pundle differs between two States.
type ChangeType string

const (
	Added   ChangeType = "Added"
	Removed ChangeType = "Removed"
	Updated ChangeType = "Updated"
)

// Change is a difference in the versions of a single pundle.
type Change struct {
	Type   ChangeType `json:"type"`
	Pundle string     `json:"pundle"`
	From   []Version  `json:"from,omitempty"`
	To     []Version  `json:"to,omitempty"`
}

func (c Change) String() string {
	switch c.Type {
	case Added:
		return fmt.Sprintf("+ %s %s", c.Pundle, versionList(c.To))
	case Removed:
		return fmt.Sprintf("- %s %s", c.Pundle, versionList(c.From))
	}
	return fmt.Sprintf("~ %s %s -> %s", c.Pundle, versionList(c.From), versionList(c.To))
}

// Diff returns the pundles that changed between baseline and current, sorted
// by pundle name.
//
// A nil State is treated as an empty one.
func Diff(baseline, current *State) []Change {
	from := byPundle(baseline)
	to := byPundle(current)

	names := []string{}
	for n := range from {
		names = append(names, n)
	}
	for n := range to {
		if _, ok := from[n]; !ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	changes := []Change{}
	for _, n := range names {
		f, inFrom := from[n]
		t, inTo := to[n]
		switch {
		case !inFrom:
			changes = append(changes, Change{Type: Added, Pundle: n, To: t})
		case !inTo:
			changes = append(changes, Change{Type: Removed, Pundle: n, From: f})
		case !sameVersions(f, t):
			changes = append(changes, Change{Type: Updated, Pundle: n, From: f, To: t})
		}
	}
	return changes
}

func byPundle(s *State) map[string][]Version {
	m := map[string][]Version{}
	if s == nil {
		return m
	}
	for _, v := range s.Versions {
		m[v.Pundle] = append(m[v.Pundle], v)
	}
	return m
}

func sameVersions(a, b []Version) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func versionList(vs []Version) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		if v.Blessing == "" {
			parts[i] = v.Version
			continue
		}
		parts[i] = fmt.Sprintf("%s (%s)", v.Version, v.Blessing)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
