package repl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/pointset/internal/pointset"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line      string
		want      Command
		wantUsage string
	}{
		{"", EmptyCmd{}, ""},
		{"   \t ", EmptyCmd{}, ""},
		{"load a.co b.co", LoadCmd{PathA: "a.co", PathB: "b.co"}, ""},
		{"LOAD  a.co   b.co  extra", LoadCmd{PathA: "a.co", PathB: "b.co"}, ""},
		{"load a.co", LoadCmd{}, usageLoad},
		{"union out.co", QueryCmd{Query: QueryUnion, Out: "out.co"}, ""},
		{"Union", QueryCmd{Query: QueryUnion}, usageUnion},
		{"intersection out.co", QueryCmd{Query: QueryIntersection, Out: "out.co"}, ""},
		{"intersect out.co", QueryCmd{Query: QueryIntersection, Out: "out.co"}, ""},
		{"intersect", QueryCmd{Query: QueryIntersection}, usageIntersection},
		{"difference out.co", QueryCmd{Query: QueryDifference, Out: "out.co"}, ""},
		{"DIFFERENCE", QueryCmd{Query: QueryDifference}, usageDifference},
		{"info", InfoCmd{}, ""},
		{"plot p.png", PlotCmd{Out: "p.png"}, ""},
		{"plot", PlotCmd{}, usagePlot},
		{"help", HelpCmd{}, ""},
		{"?", HelpCmd{}, ""},
		{"exit", ExitCmd{}, ""},
		{"Quit", ExitCmd{}, ""},
		{"frobnicate x", UnknownCmd{Verb: "frobnicate"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
			if tt.wantUsage == "" {
				if err != nil {
					t.Errorf("Parse(%q) unexpected error: %v", tt.line, err)
				}
				return
			}
			var usage *UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("Parse(%q) error = %v, want *UsageError", tt.line, err)
			}
			if usage.Usage != tt.wantUsage {
				t.Errorf("usage = %q, want %q", usage.Usage, tt.wantUsage)
			}
		})
	}
}

func TestQueryString(t *testing.T) {
	for q, want := range map[Query]string{
		QueryUnion:        "union",
		QueryIntersection: "intersection",
		QueryDifference:   "difference",
		Query(99):         "unknown",
	} {
		if got := q.String(); got != want {
			t.Errorf("Query(%d).String() = %q, want %q", int(q), got, want)
		}
	}
}

func TestNeedsIndex(t *testing.T) {
	for _, cmd := range []Command{QueryCmd{}, InfoCmd{}, PlotCmd{}} {
		if !needsIndex(cmd) {
			t.Errorf("needsIndex(%T) = false, want true", cmd)
		}
	}
	for _, cmd := range []Command{LoadCmd{}, HelpCmd{}, ExitCmd{}, EmptyCmd{}, UnknownCmd{}} {
		if needsIndex(cmd) {
			t.Errorf("needsIndex(%T) = true, want false", cmd)
		}
	}
}

func TestQueryApplyMatchesEngine(t *testing.T) {
	idx := loadSample(t, newSampleFS())

	if diff := cmp.Diff(pointset.Union(idx), QueryUnion.Apply(idx)); diff != "" {
		t.Errorf("union mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(pointset.Intersection(idx), QueryIntersection.Apply(idx)); diff != "" {
		t.Errorf("intersection mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(pointset.Difference(idx), QueryDifference.Apply(idx)); diff != "" {
		t.Errorf("difference mismatch:\n%s", diff)
	}
}
