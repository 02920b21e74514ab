package recipe

import (
	"reflect"
	"testing"
)

func TestParseWorkshopTable(t *testing.T) {
	tests := []struct {
		text    string
		station string
		level   int
		ok      bool
	}{
		{text: "Gunsmith 2", station: "Gunsmith", level: 2, ok: true},
		{text: "Gear Bench 3", station: "Gear Bench", level: 3, ok: true},
		{text: "  Workbench 1  ", station: "Workbench", level: 1, ok: true},
		{text: "TBD", ok: false},
		{text: "", ok: false},
		{text: "Gunsmith", ok: false},
	}
	for _, tc := range tests {
		station, level, ok := ParseWorkshop(tc.text)
		if ok != tc.ok || station != tc.station || level != tc.level {
			t.Fatalf("ParseWorkshop(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tc.text, station, level, ok, tc.station, tc.level, tc.ok)
		}
	}
}

func TestGroupStationsDeterministicOrdering(t *testing.T) {
	store := Store{
		"Renegade":    {Name: "Renegade", Workshop: "Gunsmith 2"},
		"Bolt Pistol": {Name: "Bolt Pistol", Workshop: "Gunsmith 1"},
		"Anvil":       {Name: "Anvil", Workshop: "Gunsmith 2"},
		"Bandage":     {Name: "Bandage", Workshop: "Medical Lab 1"},
		"Mystery":     {Name: "Mystery", Workshop: "TBD"},
	}
	stations := GroupStations(store, DefaultUpgrades)

	if len(stations) != 2 {
		t.Fatalf("expected 2 stations, got %+v", stations)
	}
	if stations[0].Name != "Gunsmith" || stations[1].Name != "Medical Lab" {
		t.Fatalf("stations not sorted by name: %q, %q", stations[0].Name, stations[1].Name)
	}

	gunsmith := stations[0]
	if len(gunsmith.Levels) != 2 || gunsmith.Levels[0].Level != 1 || gunsmith.Levels[1].Level != 2 {
		t.Fatalf("levels not ascending: %+v", gunsmith.Levels)
	}
	if !reflect.DeepEqual(gunsmith.Levels[1].Recipes, []string{"Anvil", "Renegade"}) {
		t.Fatalf("level 2 recipes not sorted: %v", gunsmith.Levels[1].Recipes)
	}
	if !reflect.DeepEqual(gunsmith.Levels[0].Upgrades, DefaultUpgrades["Gunsmith"][1]) {
		t.Fatalf("level 1 upgrades = %+v", gunsmith.Levels[0].Upgrades)
	}
}

func TestGroupStationsUnknownStationGetsNoUpgrades(t *testing.T) {
	store := Store{"Thing": {Name: "Thing", Workshop: "Mystery Bench 1"}}
	stations := GroupStations(store, DefaultUpgrades)
	if len(stations) != 1 {
		t.Fatalf("expected 1 station, got %+v", stations)
	}
	if len(stations[0].Levels[0].Upgrades) != 0 {
		t.Fatalf("expected empty upgrades, got %+v", stations[0].Levels[0].Upgrades)
	}
}
