package recipe

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Requirement is a (quantity, material) pair, used both for station
// upgrade costs and for shopping-list input.
type Requirement struct {
	Qty  int
	Name string
}

// Level is one tier of a workshop station: the recipes it unlocks and
// the materials needed to upgrade to it.
type Level struct {
	Level    int
	Recipes  []string
	Upgrades []Requirement
}

// Station is a crafting location grouped out of the recipe store.
type Station struct {
	Name   string
	Levels []Level
}

var workshopRE = regexp.MustCompile(`^(.+?)\s*(\d+)$`)

// ParseWorkshop splits requirement text like "Gunsmith 2" into the
// station name and level. ok is false when the text does not end in a
// level number; such recipes are simply not grouped.
func ParseWorkshop(text string) (station string, level int, ok bool) {
	m := workshopRE.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", 0, false
	}
	level, err := strconv.Atoi(m[2])
	if err != nil || level <= 0 {
		return "", 0, false
	}
	return strings.TrimSpace(m[1]), level, true
}

// GroupStations derives the station -> level -> recipes index from the
// store. Stations sort by name, levels ascend, and each level's recipe
// list is sorted, so output is deterministic for fixed input. Upgrade
// requirements come from the static table; levels absent from it get an
// empty list.
func GroupStations(store Store, upgrades map[string]map[int][]Requirement) []Station {
	byStation := map[string]map[int][]string{}
	for name, r := range store {
		station, level, ok := ParseWorkshop(r.Workshop)
		if !ok {
			continue
		}
		if byStation[station] == nil {
			byStation[station] = map[int][]string{}
		}
		byStation[station][level] = append(byStation[station][level], name)
	}

	stations := make([]Station, 0, len(byStation))
	for name, levels := range byStation {
		st := Station{Name: name}
		for level, crafts := range levels {
			sort.Strings(crafts)
			st.Levels = append(st.Levels, Level{
				Level:    level,
				Recipes:  crafts,
				Upgrades: upgrades[name][level],
			})
		}
		sort.Slice(st.Levels, func(i, j int) bool { return st.Levels[i].Level < st.Levels[j].Level })
		stations = append(stations, st)
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].Name < stations[j].Name })
	return stations
}

// DefaultUpgrades is the static per-station per-level upgrade material
// table. It is reference data external to the scraped recipes.
var DefaultUpgrades = map[string]map[int][]Requirement{
	"Workbench": {
		1: {},
		2: {{5, "Metal Parts"}, {5, "Rubber Parts"}},
		3: {{3, "Mechanical Components"}, {5, "Wires"}},
	},
	"Gunsmith": {
		1: {{20, "Metal Parts"}, {30, "Rubber Parts"}},
		2: {{3, "Rusted Tools"}, {5, "Mechanical Components"}, {8, "Wasp Driver"}},
		3: {{3, "Rusted Gear"}, {5, "Advanced Mechanical Components"}, {4, "Sentinel Firing Core"}},
	},
	"Gear Bench": {
		1: {{15, "Plastic Parts"}, {20, "Rubber Parts"}},
		2: {{3, "Synth Fabric"}, {5, "Wires"}},
		3: {{5, "Advanced Electrical Components"}, {3, "Sensor Array"}},
	},
	"Medical Lab": {
		1: {{10, "Plastic Parts"}, {15, "Wires"}},
		2: {{3, "Medical Supplies"}, {5, "Chemicals"}},
		3: {{5, "Advanced Medical Supplies"}, {3, "Rare Chemicals"}},
	},
	"Explosives Station": {
		1: {{10, "Metal Parts"}, {10, "Chemicals"}},
		2: {{5, "Gunpowder"}, {3, "Detonators"}},
		3: {{5, "Advanced Explosives"}, {3, "Sensor Array"}},
	},
	"Utility Station": {
		1: {{10, "Wires"}, {15, "Plastic Parts"}},
		2: {{3, "Electrical Components"}, {5, "Mechanical Components"}},
		3: {{5, "Advanced Electrical Components"}, {3, "Advanced Mechanical Components"}},
	},
	"Refiner": {
		1: {{20, "Metal Parts"}, {10, "Wires"}},
		2: {{5, "Mechanical Components"}, {3, "Electrical Components"}},
		3: {{5, "Advanced Mechanical Components"}, {5, "Sensor Array"}},
	},
}
