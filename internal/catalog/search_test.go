package catalog

import (
	"strings"
	"testing"
)

func TestLookupExactBeatsFuzzy(t *testing.T) {
	candidates := []string{"Wires", "Wire Spool", "Gear"}
	got := Lookup("wires", candidates)
	if len(got) == 0 || got[0].Name != "Wires" {
		t.Fatalf("expected Wires first, got %+v", got)
	}
	if got[0].Score != 1.0 {
		t.Fatalf("exact match score = %.2f, want 1.0", got[0].Score)
	}
}

func TestLookupTypoResolves(t *testing.T) {
	candidates := []string{"Metal Parts", "Plastic Parts"}
	best := Best("metal prats", candidates)
	if best != "Metal Parts" {
		t.Fatalf("Best(metal prats) = %q, want Metal Parts", best)
	}
}

func TestLookupDistantNamesExcluded(t *testing.T) {
	if got := Lookup("xyzzy", []string{"Gear"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestLookupEmptyQuery(t *testing.T) {
	if got := Lookup("   ", []string{"Gear"}); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestSearchableIncludesKeepFlags(t *testing.T) {
	it := Item{Name: "Battery", Category: "Topside Material", KeepQuests: true}
	s := Searchable(it)
	for _, want := range []string{"battery", "topside material", "quests"} {
		if !strings.Contains(s, want) {
			t.Fatalf("searchable %q missing %q", s, want)
		}
	}
}
