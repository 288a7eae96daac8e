package revision

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	baseline := Parse("Glorp\t4\tIntegrated\nStore-Base\t12\tDevelopment\nOld\t1\tReleased\n")
	current := Parse("Glorp\t5\tIntegrated\nStore-Base\t12\tDevelopment\nNew\t1\tDevelopment\n")

	changes := Diff(baseline, current)

	want := []Change{
		{Type: Updated, Pundle: "Glorp",
			From: []Version{{Pundle: "Glorp", Version: "4", Blessing: "Integrated"}},
			To:   []Version{{Pundle: "Glorp", Version: "5", Blessing: "Integrated"}}},
		{Type: Added, Pundle: "New",
			To: []Version{{Pundle: "New", Version: "1", Blessing: "Development"}}},
		{Type: Removed, Pundle: "Old",
			From: []Version{{Pundle: "Old", Version: "1", Blessing: "Released"}}},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Fatalf("Diff() incorrect:\n%s", diff)
	}
}

func TestDiffWithNoChanges(t *testing.T) {
	if changes := Diff(Parse(testOutput), Parse(testOutput)); len(changes) != 0 {
		t.Fatalf("Diff() got %#v, want no changes", changes)
	}
}

func TestDiffWithNilBaseline(t *testing.T) {
	changes := Diff(nil, Parse("Glorp\t4\n"))

	want := []Change{
		{Type: Added, Pundle: "Glorp", To: []Version{{Pundle: "Glorp", Version: "4"}}},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Fatalf("Diff() incorrect:\n%s", diff)
	}
}

func TestChangeString(t *testing.T) {
	stringTests := []struct {
		change Change
		want   string
	}{
		{
			Change{Type: Added, Pundle: "Glorp", To: []Version{{Pundle: "Glorp", Version: "4", Blessing: "Released"}}},
			"+ Glorp [4 (Released)]",
		},
		{
			Change{Type: Removed, Pundle: "Glorp", From: []Version{{Pundle: "Glorp", Version: "4"}}},
			"- Glorp [4]",
		},
		{
			Change{Type: Updated, Pundle: "Glorp",
				From: []Version{{Pundle: "Glorp", Version: "4"}},
				To:   []Version{{Pundle: "Glorp", Version: "5"}, {Pundle: "Glorp", Version: "6"}}},
			"~ Glorp [4] -> [5, 6]",
		},
	}

	for _, tt := range stringTests {
		if got := tt.change.String(); got != tt.want {
			t.Errorf("String() got %#v, want %#v", got, tt.want)
		}
	}
}
